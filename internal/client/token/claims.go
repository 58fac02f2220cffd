// Package token extracts claims from access tokens without verifying the
// signature. The client has no signing secret; decoded claims serve only as a
// fallback profile source when the profile fetch after login fails.
package token

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/carebook/carebook/internal/client/models"
)

// Claims is the subset of payload fields the backend puts into its tokens.
// RoleCode carries the numeric user_type claim; zero means "no role claim".
type Claims struct {
	UserID    int
	Username  string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	RoleCode  int
}

// Role maps the numeric role claim to a role name, defaulting to patient
// when the claim is absent or unknown.
func (c *Claims) Role() models.Role {
	return models.RoleFromCode(c.RoleCode)
}

// Decode parses the payload segment of a three-segment token and returns the
// claim set. Malformed input of any kind (wrong segment count, bad base64,
// bad JSON) yields nil; callers must treat that as "no claims available" and
// fall back to form-entered values.
func Decode(raw string) *Claims {
	parser := jwt.NewParser()

	mc := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, mc); err != nil {
		return nil
	}

	return &Claims{
		UserID:    intClaim(mc, "user_id"),
		Username:  stringClaim(mc, "username"),
		Email:     stringClaim(mc, "email"),
		FirstName: stringClaim(mc, "first_name"),
		LastName:  stringClaim(mc, "last_name"),
		Phone:     stringClaim(mc, "phone"),
		RoleCode:  intClaim(mc, "user_type"),
	}
}

// JSON numbers decode as float64 inside MapClaims.
func intClaim(mc jwt.MapClaims, key string) int {
	if v, ok := mc[key].(float64); ok {
		return int(v)
	}
	return 0
}

func stringClaim(mc jwt.MapClaims, key string) string {
	if v, ok := mc[key].(string); ok {
		return v
	}
	return ""
}
