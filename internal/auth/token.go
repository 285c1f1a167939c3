package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/geovannedomonte/vaiart/internal/domain"
)

// Claims carry an explicit role instead of resolving it out-of-band from a
// hardcoded admin address.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) Email() string {
	return c.Subject
}

func (c *Claims) IsAdmin() bool {
	return domain.Role(c.Role).IsAdmin()
}
