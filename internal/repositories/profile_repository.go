package repositories

import (
	"context"

	"focusquote-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	DB *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

const profileColumns = `id, user_id, name, studio_name, tax_id, phone, whatsapp, email,
	 address, website, instagram, default_terms, monthly_goal, created_at, updated_at`

func scanProfile(row interface{ Scan(...any) error }) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.StudioName, &p.TaxID, &p.Phone,
		&p.Whatsapp, &p.Email, &p.Address, &p.Website, &p.Instagram,
		&p.DefaultTerms, &p.MonthlyGoal, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int) (*models.Profile, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id=$1`, userID)
	return scanProfile(row)
}

func (r *ProfileRepository) Create(ctx context.Context, p *models.Profile) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO profiles(user_id, name, studio_name, tax_id, phone, whatsapp, email,
		 address, website, instagram, default_terms, monthly_goal)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
         RETURNING id, created_at, updated_at`,
		p.UserID, p.Name, p.StudioName, p.TaxID, p.Phone, p.Whatsapp, p.Email,
		p.Address, p.Website, p.Instagram, p.DefaultTerms, p.MonthlyGoal,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Upsert writes the full profile for a user, inserting on first save
func (r *ProfileRepository) Upsert(ctx context.Context, p *models.Profile) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO profiles(user_id, name, studio_name, tax_id, phone, whatsapp, email,
		 address, website, instagram, default_terms, monthly_goal)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
         ON CONFLICT (user_id) DO UPDATE SET
           name=EXCLUDED.name, studio_name=EXCLUDED.studio_name, tax_id=EXCLUDED.tax_id,
           phone=EXCLUDED.phone, whatsapp=EXCLUDED.whatsapp, email=EXCLUDED.email,
           address=EXCLUDED.address, website=EXCLUDED.website, instagram=EXCLUDED.instagram,
           default_terms=EXCLUDED.default_terms, monthly_goal=EXCLUDED.monthly_goal,
           updated_at=CURRENT_TIMESTAMP
         RETURNING id, created_at, updated_at`,
		p.UserID, p.Name, p.StudioName, p.TaxID, p.Phone, p.Whatsapp, p.Email,
		p.Address, p.Website, p.Instagram, p.DefaultTerms, p.MonthlyGoal,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// DeleteByUserID removes a user's studio data but keeps the login
func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM profiles WHERE user_id=$1`, userID)
	return err
}
