package mockapi

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL  = 60 * time.Minute
	refreshTokenTTL = 24 * time.Hour
)

var errInvalidToken = errors.New("invalid token")

// issueToken mints an HS256 access token carrying the profile claims the
// client decodes when the profile endpoint is unreachable.
func (s *Server) issueToken(u *User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":    u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"user_type":  u.UserType,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}
	if u.Phone != "" {
		claims["phone"] = u.Phone
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// verifyToken checks the signature and expiry and returns the user id.
func (s *Server) verifyToken(raw string) (int, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, errInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errInvalidToken
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errInvalidToken
	}
	return int(id), nil
}
