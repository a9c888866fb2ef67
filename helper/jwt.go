package helper

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type DevClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateDevToken mints an HS256 token carrying an email claim. Only used
// when running without Firebase credentials (local development and tests).
func GenerateDevToken(email, secret string) (string, error) {
	claims := DevClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// DevVerifier validates HS256 dev tokens. It satisfies
// middleware.TokenVerifier so it can stand in for the Firebase verifier.
type DevVerifier struct {
	Secret string
}

func (v DevVerifier) Verify(_ context.Context, idToken string) (string, error) {
	token, err := jwt.ParseWithClaims(idToken, &DevClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(v.Secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*DevClaims)
	if !ok || !token.Valid || claims.Email == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Email, nil
}
