package service

//go:generate mockgen -destination=../../mocks/mock_token_composer.go -package=mocks github.com/e-strategiapublica/sol-ms-auth/internal/auth/service TokenComposer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenComposer builds and merges the signed session token payload.
type TokenComposer interface {
	Issue(userID int64, method string, at time.Time) (string, error)
	Merge(existingToken string, userID int64, method string, at time.Time) (string, error)
	Verify(tokenString string) (*SessionClaims, error)
}

// SessionClaims records, per authentication method, when the subject last
// proved possession of it. NotBefore always equals the newest method
// timestamp.
type SessionClaims struct {
	jwt.RegisteredClaims
	Methods map[string]int64 `json:"methods"`
}

type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(secret string, expiryHours int) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: time.Duration(expiryHours) * time.Hour,
	}
}

func (ts *TokenService) Issue(userID int64, method string, at time.Time) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			NotBefore: jwt.NewNumericDate(at),
			IssuedAt:  jwt.NewNumericDate(at),
			ExpiresAt: jwt.NewNumericDate(at.Add(ts.expiry)),
		},
		Methods: map[string]int64{method: at.Unix()},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
}

// Merge stamps the method into an existing token's method map and re-signs
// it. A token that fails verification (malformed, expired, tampered, or
// issued to another subject) must never block an otherwise-successful
// authentication, so any such token falls back to fresh issuance.
func (ts *TokenService) Merge(existingToken string, userID int64, method string, at time.Time) (string, error) {
	claims, err := ts.Verify(existingToken)
	if err != nil || claims.Subject != strconv.FormatInt(userID, 10) {
		return ts.Issue(userID, method, at)
	}

	if claims.Methods == nil {
		claims.Methods = make(map[string]int64)
	}
	claims.Methods[method] = at.Unix()
	claims.NotBefore = jwt.NewNumericDate(at)
	claims.IssuedAt = jwt.NewNumericDate(at)
	claims.ExpiresAt = jwt.NewNumericDate(at.Add(ts.expiry))

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
}

// Verify parses and validates a session token.
func (ts *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
