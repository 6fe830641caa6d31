package services

import (
	"testing"

	"github.com/endri-fradomos/local-api/internal/infrastructure/config"
)

func newTestJWTService() InterfaceJWTService {
	return NewJWTService(&config.Config{
		JWTSecretKey: "test-secret",
		JWTExpiryHour: 1,
	})
}

func TestGenerateAndExtractClaims(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateToken(42, "endri", "user")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := svc.ExtractClaims(token)
	if err != nil {
		t.Fatalf("failed to extract claims: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user ID 42, got %d", claims.UserID)
	}
	if claims.Username != "endri" {
		t.Errorf("expected username endri, got %s", claims.Username)
	}
	if claims.Role != "user" {
		t.Errorf("expected role user, got %s", claims.Role)
	}
	if claims.Issuer != "fradomos-local-api" {
		t.Errorf("unexpected issuer %s", claims.Issuer)
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateToken(1, "endri", "user")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := svc.ValidateToken(token + "x"); err == nil {
		t.Error("expected a tampered token to fail validation")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(&config.Config{JWTSecretKey: "other-secret", JWTExpiryHour: 1})

	token, err := other.GenerateToken(1, "endri", "user")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("expected a token signed with a different secret to fail")
	}
}
