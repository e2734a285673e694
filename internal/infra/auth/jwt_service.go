// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"cofoundr/config"
	"cofoundr/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Secret key for signing access tokens, fixed at startup.
	accessTTL time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.JWT == nil || cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	accessTTL := cfg.JWT.AccessTTL
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}

	return &jwtService{
		secret:    cfg.JWT.Secret,
		accessTTL: accessTTL,
	}, nil
}

// IssueToken creates a new signed access token for the given founder.
func (s *jwtService) IssueToken(founderID int64) (string, error) {
	now := time.Now()
	claims := service.Claims{
		FounderID: founderID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(founderID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// VerifyToken checks the signature and expiry of a token string.
// Signature integrity is checked before expiry; either failure maps to one of
// the service sentinel errors so callers can log the distinction without
// exposing it to clients.
func (s *jwtService) VerifyToken(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	// Fall back to the subject claim when the custom claim is absent.
	if claims.FounderID == 0 && claims.Subject != "" {
		id, parseErr := strconv.ParseInt(claims.Subject, 10, 64)
		if parseErr != nil {
			return nil, service.ErrTokenInvalid
		}
		claims.FounderID = id
	}

	if claims.FounderID <= 0 {
		return nil, service.ErrTokenInvalid
	}

	return claims, nil
}

// GetAccessTokenDuration returns the configured access token lifetime.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}
