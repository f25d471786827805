// Package auth implements the stateless token codec: it turns a verified
// account id into a signed, time-limited bearer token and back. The token
// carries only the subject id. Role and active-state are deliberately NOT
// embedded; the authentication middleware re-reads them from the store on
// every request so privilege changes take effect on the next request, not
// the next token expiry.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stackmart/catalog-api/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Config holds the signing material for the codec. Injected at startup;
// never read from globals (tests use distinct secrets per codec).
type Config struct {
	Secret string
	TTL    time.Duration
}

// Codec issues and verifies HS256 bearer tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(cfg Config) *Codec {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(cfg.Secret), ttl: ttl}
}

// Issue produces a signed token with subject=accountID, issued-at=now and
// expiry=now+TTL. Stateless; nothing is stored.
func (c *Codec) Issue(accountID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify returns the subject account id of a valid token.
// A forged or malformed token fails with domain.ErrInvalidToken; a correctly
// signed but expired token fails with domain.ErrExpiredToken. Signature and
// structure are rejected before expiry is considered, so a forged token can
// never be reported as merely expired.
func (c *Codec) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return "", domain.ErrExpiredToken
		}
		return "", domain.ErrInvalidToken
	}
	if !tkn.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
