package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims AccessClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestTokenVerifier_VerifyAccessToken(t *testing.T) {
	verifier := NewTokenVerifier(testSecret)
	userID := uuid.New()

	validClaims := func() AccessClaims {
		return AccessClaims{
			Email: "taro@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
		}
	}

	t.Run("accepts a valid token", func(t *testing.T) {
		claims, err := verifier.VerifyAccessToken(context.Background(), signToken(t, testSecret, validClaims()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user id %s, got %s", userID, claims.UserID)
		}
		if claims.Email != "taro@example.com" {
			t.Errorf("unexpected email %q", claims.Email)
		}
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		if _, err := verifier.VerifyAccessToken(context.Background(), signToken(t, "other-secret", validClaims())); err == nil {
			t.Error("expected an error for a wrong signature")
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

		if _, err := verifier.VerifyAccessToken(context.Background(), signToken(t, testSecret, claims)); err == nil {
			t.Error("expected an error for an expired token")
		}
	})

	t.Run("rejects a non-uuid subject", func(t *testing.T) {
		claims := validClaims()
		claims.Subject = "not-a-uuid"

		if _, err := verifier.VerifyAccessToken(context.Background(), signToken(t, testSecret, claims)); err == nil {
			t.Error("expected an error for a malformed subject")
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := verifier.VerifyAccessToken(context.Background(), "not.a.token"); err == nil {
			t.Error("expected an error for a malformed token")
		}
	})
}
