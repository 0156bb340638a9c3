package types

import (
	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

// TokenClaims represents the claims in an admin JWT token
type TokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}
