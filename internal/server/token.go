package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is how long a report unlock token stays valid. Long-lived:
// the link lands in a purchase email and should keep working.
const DefaultTokenTTL = 90 * 24 * time.Hour

// UnlockClaims are the JWT claims carried by a report unlock token.
type UnlockClaims struct {
	ReportID uuid.UUID `json:"report_id"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed report unlock tokens. A token
// grants access to exactly one paid report; there are no user accounts.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService with the given signing secret.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// IssueUnlockToken signs a token granting access to the given report.
func (s *TokenService) IssueUnlockToken(reportID uuid.UUID) (string, error) {
	now := time.Now()

	claims := &UnlockClaims{
		ReportID: reportID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   reportID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign unlock token: %w", err)
	}
	return tokenString, nil
}

// ValidateUnlockToken parses a token and returns the report it unlocks.
func (s *TokenService) ValidateUnlockToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, &ErrInvalidToken{}
	}

	claims := &UnlockClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, &ErrInvalidToken{}
	}
	if claims.ReportID == uuid.Nil {
		return uuid.Nil, &ErrInvalidToken{}
	}
	return claims.ReportID, nil
}
