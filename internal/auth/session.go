package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the HTTP cookie carrying the signed session token.
const CookieName = "session"

var ErrInvalidSession = errors.New("invalid or expired session")

// Sessions issues and verifies the signed tokens that identify the
// logged-in admin between requests.
type Sessions struct {
	secret []byte
	ttl    time.Duration
}

func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl}
}

// TTL is the session lifetime, also used as the cookie max age.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token identifying the user.
func (s *Sessions) Issue(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": fmt.Sprintf("%d", userID),
		"exp": time.Now().Add(s.ttl).Unix(),
		"iat": time.Now().Unix(),
	})
	return token.SignedString(s.secret)
}

// Parse verifies a token and returns the user id it identifies.
func (s *Sessions) Parse(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidSession
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, ErrInvalidSession
	}

	var userID uint
	if _, err := fmt.Sscanf(sub, "%d", &userID); err != nil || userID == 0 {
		return 0, ErrInvalidSession
	}

	return userID, nil
}
