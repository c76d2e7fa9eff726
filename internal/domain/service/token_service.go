package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claim set embedded in issued tokens: the subject's
// identity plus the registered issued-at and expiration timestamps.
type Claims struct {
	UserID uuid.UUID
	Email  string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating signed tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a compact signed token carrying the user's ID and email,
	// valid from now until now plus the configured lifetime.
	Issue(userID uuid.UUID, email string) (string, error)

	// Validate verifies the token's signature and expiration and returns the
	// embedded claims. No claim is trusted before the signature checks out.
	Validate(token string) (*Claims, error)
}
