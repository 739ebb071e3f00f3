package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/png"
	"time"

	"focusquote-backend/internal/models"
	"focusquote-backend/internal/repositories"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	totpIssuer        = "FocusQuote"
	maxFailedAttempts = 5
	rateLimitWindow   = 15 * time.Minute
)

type TOTPService struct {
	userRepo *repositories.UserRepository
	totpRepo *repositories.TOTPRepository
}

func NewTOTPService(userRepo *repositories.UserRepository, totpRepo *repositories.TOTPRepository) *TOTPService {
	return &TOTPService{
		userRepo: userRepo,
		totpRepo: totpRepo,
	}
}

// GenerateSetup creates a new TOTP secret and QR code for a user
func (s *TOTPService) GenerateSetup(ctx context.Context, user *models.User) (*models.TOTPSetupResponse, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return nil, err
	}

	// Store the secret (not yet enabled)
	if err := s.userRepo.SetTOTPSecret(ctx, user.ID, key.Secret()); err != nil {
		return nil, err
	}

	qrImage, err := key.Image(200, 200)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qrImage); err != nil {
		return nil, err
	}
	qrBase64 := base64.StdEncoding.EncodeToString(buf.Bytes())

	return &models.TOTPSetupResponse{
		Secret:      key.Secret(),
		QRCode:      "data:image/png;base64," + qrBase64,
		Issuer:      totpIssuer,
		AccountName: user.Email,
	}, nil
}

// VerifyAndEnable verifies a TOTP code and enables 2FA for the user
func (s *TOTPService) VerifyAndEnable(ctx context.Context, userID int, code string, ipAddress string) error {
	if exceeded, err := s.isRateLimited(ctx, userID, ipAddress); err != nil {
		return err
	} else if exceeded {
		return ErrTooManyAttempts
	}

	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user.TOTPSecret == "" {
		return ErrNoTOTPSecret
	}

	if !totp.Validate(code, user.TOTPSecret) {
		s.totpRepo.LogVerificationAttempt(ctx, userID, ipAddress, false)
		return ErrInvalidTOTPCode
	}
	s.totpRepo.LogVerificationAttempt(ctx, userID, ipAddress, true)

	return s.userRepo.EnableTOTP(ctx, userID)
}

// Verify validates a TOTP code during login
func (s *TOTPService) Verify(ctx context.Context, userID int, code string, ipAddress string) (bool, error) {
	if exceeded, err := s.isRateLimited(ctx, userID, ipAddress); err != nil {
		return false, err
	} else if exceeded {
		return false, ErrTooManyAttempts
	}

	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	if !user.TOTPEnabled || user.TOTPSecret == "" {
		return false, ErrTOTPNotEnabled
	}

	if totp.Validate(code, user.TOTPSecret) {
		s.totpRepo.LogVerificationAttempt(ctx, userID, ipAddress, true)
		return true, nil
	}

	s.totpRepo.LogVerificationAttempt(ctx, userID, ipAddress, false)
	return false, ErrInvalidTOTPCode
}

// Disable disables 2FA after verifying the current code
func (s *TOTPService) Disable(ctx context.Context, userID int, code string) error {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !totp.Validate(code, user.TOTPSecret) {
		return ErrInvalidTOTPCode
	}
	return s.userRepo.DisableTOTP(ctx, userID)
}

// isRateLimited checks if user/IP has exceeded failed attempt limit
func (s *TOTPService) isRateLimited(ctx context.Context, userID int, ipAddress string) (bool, error) {
	userAttempts, err := s.totpRepo.GetRecentFailedAttempts(ctx, userID, rateLimitWindow)
	if err != nil {
		return false, err
	}
	if userAttempts >= maxFailedAttempts {
		return true, nil
	}

	ipAttempts, err := s.totpRepo.GetRecentFailedAttemptsByIP(ctx, ipAddress, rateLimitWindow)
	if err != nil {
		return false, err
	}
	if ipAttempts >= maxFailedAttempts*2 { // Allow more for shared IPs
		return true, nil
	}

	return false, nil
}

// Custom errors
var (
	ErrTooManyAttempts = &TOTPError{Message: "too many failed attempts, please try again later"}
	ErrNoTOTPSecret    = &TOTPError{Message: "2FA setup not initiated"}
	ErrInvalidTOTPCode = &TOTPError{Message: "invalid verification code"}
	ErrTOTPNotEnabled  = &TOTPError{Message: "2FA is not enabled"}
)

type TOTPError struct {
	Message string
}

func (e *TOTPError) Error() string {
	return e.Message
}
