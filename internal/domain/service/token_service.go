package service

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"staffhub/internal/domain/entity"
)

// Identity is the caller identity embedded in and recovered from a session token.
type Identity struct {
	EmployeeID uint
	Name       string
	Role       entity.Role
	Email      string
}

// Claims defines the custom claims for session tokens.
type Claims struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity rebuilds the caller identity from verified claims. A subject that
// is not a decimal id yields EmployeeID 0.
func (c *Claims) Identity() Identity {
	id, _ := strconv.ParseUint(c.Subject, 10, 64)

	return Identity{
		EmployeeID: uint(id),
		Name:       c.Name,
		Role:       entity.Role(c.Role),
		Email:      c.Email,
	}
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken signs a token carrying the identity and an expiry.
	GenerateToken(identity Identity) (string, error)

	// ValidateToken verifies signature and expiry and returns the claims.
	// Any failure is reported as errors.ErrInvalidToken.
	ValidateToken(tokenString string) (*Claims, error)
}
