package repositories

import (
	"context"

	"focusquote-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository struct {
	DB *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *models.Transaction) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO transactions(user_id, description, amount, type, category, date)
         VALUES($1, $2, $3, $4, $5, $6::date)
         RETURNING id, created_at`,
		t.UserID, t.Description, t.Amount, t.Type, t.Category, t.Date,
	).Scan(&t.ID, &t.CreatedAt)
}

// ListInRange returns a user's transactions with dates in the inclusive
// [start, end] window, newest first.
func (r *TransactionRepository) ListInRange(ctx context.Context, userID int, start, end string) ([]*models.Transaction, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, description, amount, type, category, date::text, created_at
         FROM transactions
         WHERE user_id=$1 AND date >= $2::date AND date <= $3::date
         ORDER BY date DESC, id DESC`, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.Amount, &t.Type,
			&t.Category, &t.Date, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, &t)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) Delete(ctx context.Context, userID, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM transactions WHERE id=$1 AND user_id=$2`, id, userID)
	return err
}
