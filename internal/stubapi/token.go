package stubapi

import (
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/odyssey-travel/odyssey-console/internal/domain"
)

// devSecret signs stub tokens. The stub only needs tokens that carry
// realistic claims; nothing verifies them against a real authority.
var devSecret = []byte("odyssey-stub-secret")

const tokenTTL = time.Hour

// issueToken signs a short-lived HS256 token for the authenticated user.
func issueToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(user.ID, 10),
		"role": string(user.Role),
		"iat":  jwt.NewNumericDate(time.Now()),
		"exp":  jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(devSecret)
}
