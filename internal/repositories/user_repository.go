package repositories

import (
	"context"

	"focusquote-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if u.Role == "" {
		u.Role = "photographer" // Default role
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO users(name, email, password_hash, role, is_blocked)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		u.Name, u.Email, u.PasswordHash, u.Role, u.IsBlocked,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) Get(ctx context.Context, id int) (*models.User, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, is_blocked, created_at, updated_at,
		 COALESCE(totp_secret, ''), COALESCE(totp_enabled, false), totp_verified_at
         FROM users WHERE id=$1`, id)

	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.IsBlocked, &user.CreatedAt, &user.UpdatedAt,
		&user.TOTPSecret, &user.TOTPEnabled, &user.TOTPVerifiedAt)
	return &user, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, is_blocked, created_at, updated_at,
		 COALESCE(totp_secret, ''), COALESCE(totp_enabled, false), totp_verified_at
         FROM users WHERE email=$1`, email)

	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.IsBlocked, &user.CreatedAt, &user.UpdatedAt,
		&user.TOTPSecret, &user.TOTPEnabled, &user.TOTPVerifiedAt)
	return &user, err
}

// ListWithProfiles returns all users joined with their profile for the
// admin panel, newest first.
func (r *UserRepository) ListWithProfiles(ctx context.Context) ([]*models.AdminUserRow, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT u.id, u.email, u.role, u.is_blocked,
		 COALESCE(p.name, u.name), COALESCE(p.studio_name, ''), u.created_at
         FROM users u
         LEFT JOIN profiles p ON p.user_id = u.id
         ORDER BY u.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.AdminUserRow
	for rows.Next() {
		var row models.AdminUserRow
		err := rows.Scan(&row.ID, &row.Email, &row.Role, &row.IsBlocked,
			&row.Name, &row.StudioName, &row.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, &row)
	}
	return users, rows.Err()
}

// SetRole changes a user's role
func (r *UserRepository) SetRole(ctx context.Context, userID int, role string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE users SET role=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		role, userID)
	return err
}

// ToggleBlocked flips the is_blocked flag and returns the new value
func (r *UserRepository) ToggleBlocked(ctx context.Context, userID int) (bool, error) {
	var blocked bool
	err := r.DB.QueryRow(ctx,
		`UPDATE users SET is_blocked = NOT is_blocked, updated_at=CURRENT_TIMESTAMP
		 WHERE id=$1 RETURNING is_blocked`, userID).Scan(&blocked)
	return blocked, err
}

// SetTOTPSecret stores the TOTP secret for a user (during setup, before verification)
func (r *UserRepository) SetTOTPSecret(ctx context.Context, userID int, secret string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE users SET totp_secret=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		secret, userID)
	return err
}

// EnableTOTP marks 2FA as enabled after verification
func (r *UserRepository) EnableTOTP(ctx context.Context, userID int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE users SET totp_enabled=true, totp_verified_at=CURRENT_TIMESTAMP, updated_at=CURRENT_TIMESTAMP WHERE id=$1`,
		userID)
	return err
}

// DisableTOTP disables 2FA and clears the secret
func (r *UserRepository) DisableTOTP(ctx context.Context, userID int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE users SET totp_enabled=false, totp_secret=NULL, totp_verified_at=NULL, updated_at=CURRENT_TIMESTAMP WHERE id=$1`,
		userID)
	return err
}
