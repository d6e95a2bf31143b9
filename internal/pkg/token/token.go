// Package token issues and verifies the HS256 bearer tokens that carry
// a caller's identity and role between login and the gated routes.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenIsInvalid = errors.New("token is invalid")
)

// Claims extends the registered JWT claims with the authenticated
// user's identifier and role. The role claim is what the route gates
// check; services never re-derive it.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
}

// Signer issues and verifies tokens with a shared HMAC secret.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner creates a Signer from the shared secret and token lifetime.
func NewSigner(secret []byte, ttl time.Duration) Signer {
	return Signer{secret: secret, ttl: ttl}
}

// Issue signs a token for the given user id and role, valid for the
// configured lifetime.
func (s Signer) Issue(userID uint, role string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
		Role:   role,
	})

	return t.SignedString(s.secret)
}

// Verify parses and validates a token string, returning its claims.
// Expired, malformed, or foreign-signed tokens yield ErrTokenIsInvalid.
func (s Signer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenIsInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Join(ErrTokenIsInvalid, err)
	}

	if !parsed.Valid {
		return nil, ErrTokenIsInvalid
	}

	return claims, nil
}
