package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors for token verification. The distinction is for server-side
// logging only; the HTTP layer collapses both into the same 401 response so
// clients cannot probe which check failed.
var (
	// ErrTokenInvalid is returned when a token is malformed or its signature does not verify.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned when a well-signed token is past its expiry.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	FounderID int64 `json:"founder_id"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken creates a new signed access token for the given founder.
	IssueToken(founderID int64) (string, error)

	// VerifyToken checks the signature and expiry of a token string.
	// It returns ErrTokenInvalid or ErrTokenExpired on failure.
	VerifyToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured access token lifetime.
	GetAccessTokenDuration() time.Duration
}
