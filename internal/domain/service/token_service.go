package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity payload embedded in an issued token. The email is a
// copy of the account's login identifier, not a reference to the stored record.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenService defines the interface for issuing and verifying access tokens.
// Tokens are self-contained: validity is determined purely by signature and
// expiry, so no server-side session state exists.
type TokenService interface {
	// Issue creates a signed token carrying the email claim, expiring after
	// the configured TTL.
	Issue(email string) (string, error)

	// Verify checks signature and expiry and recovers the claims.
	// An expired token yields domain ErrExpiredToken; a token with a bad
	// signature or unparseable structure yields ErrInvalidToken. The two are
	// distinct so callers can respond differently to staleness and tampering.
	Verify(token string) (*Claims, error)

	// Decode recovers the claims without verifying the signature. Diagnostics
	// only; never use the result for authorization decisions.
	Decode(token string) (*Claims, bool)

	// AccessTokenTTL returns the configured token lifetime, used by the
	// boundary layer to align cookie expiry with token expiry.
	AccessTokenTTL() time.Duration
}
