package repositories

import (
	"context"

	"focusquote-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRepository struct {
	DB *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{DB: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *models.Service) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO services(user_id, name, description, default_price, type)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		s.UserID, s.Name, s.Description, s.DefaultPrice, s.Type,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *ServiceRepository) List(ctx context.Context, userID int) ([]*models.Service, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, name, description, default_price, type, created_at, updated_at
         FROM services WHERE user_id=$1 ORDER BY name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*models.Service
	for rows.Next() {
		var s models.Service
		err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Description, &s.DefaultPrice,
			&s.Type, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		services = append(services, &s)
	}
	return services, rows.Err()
}

func (r *ServiceRepository) Update(ctx context.Context, s *models.Service) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE services SET name=$1, description=$2, default_price=$3, type=$4, updated_at=CURRENT_TIMESTAMP
         WHERE id=$5 AND user_id=$6`,
		s.Name, s.Description, s.DefaultPrice, s.Type, s.ID, s.UserID)
	return err
}

func (r *ServiceRepository) Delete(ctx context.Context, userID, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM services WHERE id=$1 AND user_id=$2`, id, userID)
	return err
}
