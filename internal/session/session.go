package session

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/odyssey-travel/odyssey-console/internal/domain"
)

// Session is the logged-in identity persisted between console runs. It is
// written at login, read everywhere else, and cleared at logout.
type Session struct {
	User    domain.User `json:"user"`
	Token   string      `json:"token"`
	SavedAt time.Time   `json:"savedAt"`
}

// Expired reports whether the bearer token has an exp claim in the past.
// The token is not verified here; the backend is the authority on validity
// and will reject a forged or revoked token regardless.
func (s *Session) Expired(now time.Time) bool {
	if s == nil || s.Token == "" {
		return true
	}
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.Token, &claims); err != nil {
		// tokens the client cannot read are treated as live and left for
		// the backend to judge
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
