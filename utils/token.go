package utils

import (
	"errors"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "salon_session"

var sessionSecret []byte

func init() {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		// Default for development only, same as .env.example
		secret = "SalonDevSecret2024"
	}
	sessionSecret = []byte(secret)
}

// SessionClaims wraps the opaque session token in a signed JWT. The cookie
// value is tamper-evident, but the session itself lives in the database:
// deleting the row logs the user out regardless of the cookie.
type SessionClaims struct {
	SessionToken string `json:"session_token"`
	jwt.RegisteredClaims
}

func SignSessionToken(sessionToken string) (string, error) {
	claims := &SessionClaims{
		SessionToken: sessionToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "salon-booking",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret)
}

func ParseSessionToken(cookieValue string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(cookieValue, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return sessionSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid session token")
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.SessionToken == "" {
		return nil, errors.New("invalid session claims")
	}

	return claims, nil
}
