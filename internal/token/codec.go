package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// contextLabel binds tokens to their purpose; a token signed for another
// context does not verify here even with the same secret.
const contextLabel = "user-auth"

// ErrInvalidToken is the single failure value for every way verification can
// fail. Callers must not learn why a token was rejected.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the token payload: exactly one claim, the username in Subject.
// No expiry is set; a token stays valid until the secret changes.
type Claims struct {
	jwt.RegisteredClaims
}

// Codec issues and verifies the signed username tokens both services share.
// The secret is loaded once at startup and never changes at runtime.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue signs a token asserting the given username.
func (c *Codec) Issue(username string) (string, error) {
	if username == "" {
		return "", ErrInvalidToken
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  username,
			Audience: jwt.ClaimStrings{contextLabel},
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify returns the embedded username if and only if the token was produced
// by Issue with the currently configured secret. Garbage input is a normal
// failure, never a panic.
func (c *Codec) Verify(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithAudience(contextLabel))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
