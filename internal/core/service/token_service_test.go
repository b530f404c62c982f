package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stoykov15/lifeos/internal/core/domain"
)

func TestTokenServiceRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	subject, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if subject != "alice@example.com" {
		t.Errorf("subject = %q, want %q", subject, "alice@example.com")
	}
}

func TestTokenServiceRejectsExpired(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("Validate(expired) = %v, want ErrInvalidToken", err)
	}
}

func TestTokenServiceRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("Validate(wrong secret) = %v, want ErrInvalidToken", err)
	}
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("Validate(%q) = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestTokenServiceRejectsMissingSubject(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("Validate(empty subject) = %v, want ErrInvalidToken", err)
	}
}

func TestNewTokenServiceDefaultsTTL(t *testing.T) {
	svc := NewTokenService("test-secret", 0)
	if svc.ttl != 24*time.Hour {
		t.Errorf("ttl = %v, want 24h", svc.ttl)
	}
}
