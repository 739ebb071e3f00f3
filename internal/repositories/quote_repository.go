package repositories

import (
	"context"

	"focusquote-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QuoteRepository struct {
	DB *pgxpool.Pool
}

func NewQuoteRepository(db *pgxpool.Pool) *QuoteRepository {
	return &QuoteRepository{DB: db}
}

const quoteColumns = `id, user_id, COALESCE(client_id, 0), number, date::text, valid_until::text,
	 status, discount, extra_fees, payment_method, payment_conditions, total, created_at, updated_at`

func scanQuote(row pgx.Row) (*models.Quote, error) {
	var q models.Quote
	err := row.Scan(&q.ID, &q.UserID, &q.ClientID, &q.Number, &q.Date, &q.ValidUntil,
		&q.Status, &q.Discount, &q.ExtraFees, &q.PaymentMethod, &q.PaymentConditions,
		&q.Total, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Create inserts the quote header and its items in one transaction
func (r *QuoteRepository) Create(ctx context.Context, q *models.Quote) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO quotes(user_id, client_id, number, date, valid_until, status,
		 discount, extra_fees, payment_method, payment_conditions, total)
         VALUES($1, $2, $3, $4::date, $5::date, $6, $7, $8, $9, $10, $11)
         RETURNING id, created_at, updated_at`,
		q.UserID, q.ClientID, q.Number, q.Date, q.ValidUntil, q.Status,
		q.Discount, q.ExtraFees, q.PaymentMethod, q.PaymentConditions, q.Total,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertItems(ctx, tx, q.ID, q.Items); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update rewrites the quote header and replaces its items wholesale,
// all inside one transaction so readers never see a half-saved quote.
func (r *QuoteRepository) Update(ctx context.Context, q *models.Quote) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE quotes SET client_id=$1, date=$2::date, valid_until=$3::date, status=$4,
		 discount=$5, extra_fees=$6, payment_method=$7, payment_conditions=$8, total=$9,
		 updated_at=CURRENT_TIMESTAMP
         WHERE id=$10 AND user_id=$11`,
		q.ClientID, q.Date, q.ValidUntil, q.Status,
		q.Discount, q.ExtraFees, q.PaymentMethod, q.PaymentConditions, q.Total,
		q.ID, q.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if _, err := tx.Exec(ctx, `DELETE FROM quote_items WHERE quote_id=$1`, q.ID); err != nil {
		return err
	}
	if err := insertItems(ctx, tx, q.ID, q.Items); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertItems(ctx context.Context, tx pgx.Tx, quoteID int, items []*models.QuoteItem) error {
	for pos, item := range items {
		err := tx.QueryRow(ctx,
			`INSERT INTO quote_items(quote_id, name, description, unit_price, quantity, type, position)
             VALUES($1, $2, $3, $4, $5, $6, $7)
             RETURNING id`,
			quoteID, item.Name, item.Description, item.UnitPrice, item.Quantity, item.Type, pos,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
		item.QuoteID = quoteID
	}
	return nil
}

func (r *QuoteRepository) Get(ctx context.Context, userID, id int) (*models.Quote, error) {
	q, err := scanQuote(r.DB.QueryRow(ctx,
		`SELECT `+quoteColumns+` FROM quotes WHERE id=$1 AND user_id=$2`, id, userID))
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (r *QuoteRepository) loadItems(ctx context.Context, q *models.Quote) error {
	rows, err := r.DB.Query(ctx,
		`SELECT id, quote_id, name, description, unit_price, quantity, type
         FROM quote_items WHERE quote_id=$1 ORDER BY position, id`, q.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	q.Items = []*models.QuoteItem{}
	for rows.Next() {
		var item models.QuoteItem
		err := rows.Scan(&item.ID, &item.QuoteID, &item.Name, &item.Description,
			&item.UnitPrice, &item.Quantity, &item.Type)
		if err != nil {
			return err
		}
		q.Items = append(q.Items, &item)
	}
	return rows.Err()
}

// List returns all of a user's quotes with items, newest first
func (r *QuoteRepository) List(ctx context.Context, userID int) ([]*models.Quote, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+quoteColumns+` FROM quotes WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[int]*models.Quote)
	var quotes []*models.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		q.Items = []*models.QuoteItem{}
		byID[q.ID] = q
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One pass for all items instead of a query per quote
	itemRows, err := r.DB.Query(ctx,
		`SELECT qi.id, qi.quote_id, qi.name, qi.description, qi.unit_price, qi.quantity, qi.type
         FROM quote_items qi
         JOIN quotes q ON q.id = qi.quote_id
         WHERE q.user_id=$1 ORDER BY qi.position, qi.id`, userID)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.QuoteItem
		err := itemRows.Scan(&item.ID, &item.QuoteID, &item.Name, &item.Description,
			&item.UnitPrice, &item.Quantity, &item.Type)
		if err != nil {
			return nil, err
		}
		if q, ok := byID[item.QuoteID]; ok {
			q.Items = append(q.Items, &item)
		}
	}
	return quotes, itemRows.Err()
}

// UpdateStatus persists a status change
func (r *QuoteRepository) UpdateStatus(ctx context.Context, userID, id int, status models.QuoteStatus) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE quotes SET status=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2 AND user_id=$3`,
		status, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *QuoteRepository) Delete(ctx context.Context, userID, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM quotes WHERE id=$1 AND user_id=$2`, id, userID)
	return err
}

// ListApprovedInRange returns approved quotes whose issue date falls in the
// inclusive [start, end] window, for the cash-flow statement.
func (r *QuoteRepository) ListApprovedInRange(ctx context.Context, userID int, start, end string) ([]*models.Quote, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+quoteColumns+` FROM quotes
         WHERE user_id=$1 AND status=$2 AND date >= $3::date AND date <= $4::date
         ORDER BY date DESC`, userID, models.QuoteStatusApproved, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []*models.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// ReportRow is a quote with its client name for reports
type ReportRow struct {
	ID         int                `json:"id"`
	Number     string             `json:"number"`
	ClientName string             `json:"client_name"`
	Date       string             `json:"date"`
	Status     models.QuoteStatus `json:"status"`
	Total      float64            `json:"total"`
}

// ListReportRows returns quotes in a date range, optionally filtered by
// status, joined with the client name.
func (r *QuoteRepository) ListReportRows(ctx context.Context, userID int, start, end string, status models.QuoteStatus) ([]*ReportRow, error) {
	query := `SELECT q.id, q.number, COALESCE(c.name, 'Cliente removido'), q.date::text, q.status, q.total
         FROM quotes q
         LEFT JOIN clients c ON c.id = q.client_id
         WHERE q.user_id=$1 AND q.date >= $2::date AND q.date <= $3::date`
	args := []any{userID, start, end}
	if status != "" {
		query += ` AND q.status=$4`
		args = append(args, status)
	}
	query += ` ORDER BY q.date DESC, q.id DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []*ReportRow
	for rows.Next() {
		var row ReportRow
		if err := rows.Scan(&row.ID, &row.Number, &row.ClientName, &row.Date, &row.Status, &row.Total); err != nil {
			return nil, err
		}
		report = append(report, &row)
	}
	return report, rows.Err()
}
