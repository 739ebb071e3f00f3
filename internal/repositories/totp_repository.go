package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TOTPRepository struct {
	DB *pgxpool.Pool
}

func NewTOTPRepository(db *pgxpool.Pool) *TOTPRepository {
	return &TOTPRepository{DB: db}
}

// LogVerificationAttempt records a 2FA verification attempt for rate limiting
func (r *TOTPRepository) LogVerificationAttempt(ctx context.Context, userID int, ipAddress string, success bool) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO totp_verification_attempts(user_id, ip_address, success)
         VALUES($1, $2, $3)`,
		userID, ipAddress, success)
	return err
}

// GetRecentFailedAttempts counts failed attempts for a user inside the window
func (r *TOTPRepository) GetRecentFailedAttempts(ctx context.Context, userID int, window time.Duration) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM totp_verification_attempts
         WHERE user_id=$1 AND success=false AND created_at > NOW() - $2::interval`,
		userID, window.String()).Scan(&count)
	return count, err
}

// GetRecentFailedAttemptsByIP counts failed attempts from an IP inside the window
func (r *TOTPRepository) GetRecentFailedAttemptsByIP(ctx context.Context, ipAddress string, window time.Duration) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM totp_verification_attempts
         WHERE ip_address=$1 AND success=false AND created_at > NOW() - $2::interval`,
		ipAddress, window.String()).Scan(&count)
	return count, err
}
