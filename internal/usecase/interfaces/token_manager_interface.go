package interfaces

import "aquashield/internal/domain/entities"

// TokenClaims is the identity carried by a bearer token.
type TokenClaims struct {
	UserID string
	Email  string
}

// ITokenManager issues and validates the bearer tokens used by the auth
// middleware.
type ITokenManager interface {
	Generate(u entities.User) (string, error)
	Validate(token string) (TokenClaims, error)
}
