package repositories

import (
	"context"

	"focusquote-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientRepository struct {
	DB *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *models.Client) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO clients(user_id, name, tax_id, phone, email, address, type, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at, updated_at`,
		c.UserID, c.Name, c.TaxID, c.Phone, c.Email, c.Address, c.Type, c.Notes,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *ClientRepository) Get(ctx context.Context, userID, id int) (*models.Client, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, user_id, name, tax_id, phone, email, address, type, notes, created_at, updated_at
         FROM clients WHERE id=$1 AND user_id=$2`, id, userID)

	var client models.Client
	err := row.Scan(&client.ID, &client.UserID, &client.Name, &client.TaxID, &client.Phone,
		&client.Email, &client.Address, &client.Type, &client.Notes,
		&client.CreatedAt, &client.UpdatedAt)
	return &client, err
}

func (r *ClientRepository) List(ctx context.Context, userID int) ([]*models.Client, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, name, tax_id, phone, email, address, type, notes, created_at, updated_at
         FROM clients WHERE user_id=$1 ORDER BY name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		var client models.Client
		err := rows.Scan(&client.ID, &client.UserID, &client.Name, &client.TaxID, &client.Phone,
			&client.Email, &client.Address, &client.Type, &client.Notes,
			&client.CreatedAt, &client.UpdatedAt)
		if err != nil {
			return nil, err
		}
		clients = append(clients, &client)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) Update(ctx context.Context, c *models.Client) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE clients SET name=$1, tax_id=$2, phone=$3, email=$4, address=$5, type=$6, notes=$7, updated_at=CURRENT_TIMESTAMP
         WHERE id=$8 AND user_id=$9`,
		c.Name, c.TaxID, c.Phone, c.Email, c.Address, c.Type, c.Notes, c.ID, c.UserID)
	return err
}

func (r *ClientRepository) Delete(ctx context.Context, userID, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM clients WHERE id=$1 AND user_id=$2`, id, userID)
	return err
}
