package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stoykov15/lifeos/internal/core/domain"
)

// TokenService issues and validates HS256-signed bearer tokens. Tokens are
// stateless: validity is decided entirely by signature and expiry, there is
// no server-side revocation list.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService returns a token service signing with the given secret.
// A non-positive ttl falls back to 24 hours.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token whose subject is the given identity claim.
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate returns the subject claim of a valid token. A bad signature, a
// malformed structure and an expired token all collapse into
// domain.ErrInvalidToken so callers cannot tell why a token was rejected.
func (s *TokenService) Validate(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if _, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return "", domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
