package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessToken(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("secret", 42, "ADMIN", 15)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tok.Token == "" {
		t.Fatalf("expected a serialized token")
	}
	until := time.Until(tok.Exp)
	if until < 14*time.Minute || until > 16*time.Minute {
		t.Fatalf("expected roughly 15 minute expiry, got %v", until)
	}

	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("expected token to verify, got %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("expected map claims")
	}
	if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
		t.Fatalf("expected sub 42, got %v", claims["sub"])
	}
	if claims["role"] != "ADMIN" {
		t.Fatalf("expected role ADMIN, got %v", claims["role"])
	}
}

func TestNewRefreshToken(t *testing.T) {
	t.Parallel()

	a, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(a.Raw) != 96 {
		t.Fatalf("expected 96 hex chars, got %d", len(a.Raw))
	}
	b, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if a.Raw == b.Raw {
		t.Fatalf("expected unique tokens")
	}
}

func TestHashRefreshRaw(t *testing.T) {
	t.Parallel()

	h1 := HashRefreshRaw("raw-token")
	h2 := HashRefreshRaw("raw-token")
	if h1 != h2 {
		t.Fatalf("expected deterministic hash")
	}
	if len(h1) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(h1))
	}
	if h1 == HashRefreshRaw("other") {
		t.Fatalf("expected distinct hashes for distinct inputs")
	}
}

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Fatalf("expected password to verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatalf("expected wrong password to fail")
	}
}
