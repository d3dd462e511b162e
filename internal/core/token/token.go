// Package token owns the session token contract: the claims shape, how a
// token is minted, and how one is verified. Both the login service and the
// auth middleware go through this package so the two sides can never drift.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

// Claims is the signed payload carried by a session token. UserID, Username
// and Role are required; Station is optional. Tokens are validated against
// this shape on decode rather than treated as an untyped bag.
type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Station  string `json:"station,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a shared HS256 secret.
// The secret and TTL are fixed at construction and never mutated.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec builds a Codec. A non-positive ttl falls back to 24 hours.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue mints a signed token for the given user. Expiry is issued-at plus
// the configured TTL, always strictly in the future.
func (c *Codec) Issue(user *domain.User, now time.Time) (string, error) {
	now = now.UTC()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Station:  user.Station,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature, expiry and shape, and returns the embedded
// claims. Failures collapse to domain.ErrExpiredToken for an out-of-date
// token and domain.ErrInvalidToken for everything else; callers never see
// library-level error detail.
func (c *Codec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.UserID == "" || claims.Username == "" || claims.Role == "" {
		return nil, domain.ErrInvalidToken
	}
	if claims.ExpiresAt == nil {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
