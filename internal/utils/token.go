package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthTokenDuration is the signed claim's own expiry. The session cookie
// carrying it lives longer (see CookieMaxAge); an expired claim inside a
// still-valid cookie forces a re-login.
const AuthTokenDuration = 10 * time.Minute

// CookieMaxAge is the session cookie lifetime in seconds (12 hours).
const CookieMaxAge = 12 * 60 * 60

// ResetTokenDuration is the wall-clock validity of a password-reset token.
const ResetTokenDuration = 30 * time.Minute

// GenerateAuthToken signs the {user_id, nickname, exp, iat} claim used by
// both the bearer header and the session cookie.
func GenerateAuthToken(userID uint, nickname string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"nickname": nickname,
		"exp":      now.Add(AuthTokenDuration).Unix(),
		"iat":      now.Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET_KEY")))
}

// GenerateResetToken returns an opaque single-use token for the password
// reset flow.
func GenerateResetToken() string {
	return uuid.NewString()
}
