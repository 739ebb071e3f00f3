package services

import (
	"context"
	"errors"

	"focusquote-backend/internal/auth"
	"focusquote-backend/internal/cache"
	"focusquote-backend/internal/models"
	"focusquote-backend/internal/repositories"
)

var ErrAccountBlocked = errors.New("account blocked, contact administrator")

type UserService struct {
	Repo       *repositories.UserRepository
	JWTManager *auth.JWTManager
}

func NewUserService(repo *repositories.UserRepository, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		Repo:       repo,
		JWTManager: jwtManager,
	}
}

// Signup creates a new photographer account. The display name defaults to
// the email local-part; profile setup fills in the rest on first sync.
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}

	existingUser, _ := s.Repo.GetByEmail(ctx, req.Email)
	if existingUser != nil && existingUser.ID != 0 {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         DefaultProfileName(req.Email),
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         "photographer",
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

// LoginResult is either a finished login or a pending 2FA exchange
type LoginResult struct {
	Auth    *models.AuthResponse
	Pending *models.TwoFactorPendingResponse
}

// Login authenticates a user. A Redis credential cache short-circuits the
// bcrypt compare on repeat logins. Admins with 2FA enabled get a temp
// token instead of a session token.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*LoginResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}

	user, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if cachedID, ok := cache.GetCachedAuth(ctx, req.Email, req.Password); !ok || cachedID != int64(user.ID) {
		if !auth.VerifyPassword(user.PasswordHash, req.Password) {
			return nil, errors.New("invalid email or password")
		}
		cache.CacheAuth(ctx, req.Email, req.Password, int64(user.ID))
	}

	if user.IsBlocked {
		return nil, ErrAccountBlocked
	}

	if user.Role == "admin" && user.TOTPEnabled {
		tempToken, err := s.JWTManager.GenerateTempToken(user)
		if err != nil {
			return nil, err
		}
		return &LoginResult{Pending: &models.TwoFactorPendingResponse{
			Requires2FA: true,
			TempToken:   tempToken,
		}}, nil
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Auth: &models.AuthResponse{
		Token: token,
		User:  user,
	}}, nil
}

// CompleteTOTPLogin exchanges a verified temp token for a session token
func (s *UserService) CompleteTOTPLogin(ctx context.Context, userID int) (*models.AuthResponse, error) {
	user, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsBlocked {
		return nil, ErrAccountBlocked
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}
