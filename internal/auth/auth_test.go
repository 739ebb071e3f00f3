package auth

import (
	"testing"

	"focusquote-backend/internal/config"
	"focusquote-backend/internal/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "focusquote-test"
	return cfg
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("senha123")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "senha123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !VerifyPassword(hash, "senha123") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "senha124") {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testConfig())
	user := &models.User{ID: 42, Email: "ana@example.com", Role: "photographer"}

	token, err := m.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "ana@example.com" || claims.Role != "photographer" {
		t.Errorf("claims round trip mismatch: %+v", claims)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	m := NewJWTManager(testConfig())
	token, err := m.GenerateToken(&models.User{ID: 1, Email: "a@b.c"})
	if err != nil {
		t.Fatal(err)
	}

	other := testConfig()
	other.JWT.Secret = "different-secret"
	if _, err := NewJWTManager(other).ValidateToken(token); err == nil {
		t.Error("token signed with another secret should fail validation")
	}
}

func TestTempTokenIsNotASessionToken(t *testing.T) {
	m := NewJWTManager(testConfig())
	user := &models.User{ID: 7, Email: "admin@example.com", Role: "admin"}

	tempToken, err := m.GenerateTempToken(user)
	if err != nil {
		t.Fatalf("GenerateTempToken() error: %v", err)
	}

	claims, err := m.ValidateTempToken(tempToken)
	if err != nil {
		t.Fatalf("ValidateTempToken() error: %v", err)
	}
	if claims.UserID != 7 || claims.Type != "2fa_pending" {
		t.Errorf("temp claims mismatch: %+v", claims)
	}

	// A full session token must not pass temp validation
	sessionToken, err := m.GenerateToken(user)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.ValidateTempToken(sessionToken); err == nil {
		t.Error("session token accepted as temp token")
	}
}
