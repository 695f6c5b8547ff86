package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestParseTokenFromRequest(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "u1",
		"email":   "demo@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	r := httptest.NewRequest("GET", "/api/transactions", nil)
	r.Header.Set("Authorization", "Bearer "+tokenString)

	claims, err := ParseTokenFromRequest(r)
	if err != nil {
		t.Fatalf("ParseTokenFromRequest: %v", err)
	}
	if claims["user_id"] != "u1" {
		t.Fatalf("user_id claim = %v", claims["user_id"])
	}
}

func TestParseTokenFromRequestMissing(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := httptest.NewRequest("GET", "/api/transactions", nil)
	if _, err := ParseTokenFromRequest(r); err == nil {
		t.Fatal("expected error for missing token")
	}
}

func TestParseTokenFromRequestWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	r := httptest.NewRequest("GET", "/api/transactions", nil)
	r.Header.Set("Authorization", "Bearer "+tokenString)
	if _, err := ParseTokenFromRequest(r); err == nil {
		t.Fatal("expected error for token signed with the wrong secret")
	}
}

func TestParseTokenFromRequestExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	r := httptest.NewRequest("GET", "/api/transactions", nil)
	r.Header.Set("Authorization", "Bearer "+tokenString)
	if _, err := ParseTokenFromRequest(r); err == nil {
		t.Fatal("expected error for expired token")
	}
}
