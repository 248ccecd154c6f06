package service

import "time"

// Claims is the decoded payload of an issued token.
type Claims struct {
	Subject   string    // Principal identifier the token was issued for.
	IssuedAt  time.Time // When the token was minted.
	ExpiresAt time.Time // When the token stops validating.
}

// TokenService defines the interface for issuing and validating bearer tokens.
// Tokens are self-contained: validity is computed from the signed payload and
// wall-clock time only, never from stored state. A subject whose user record
// was deleted after issuance therefore still validates until expiry.
type TokenService interface {
	// Issue produces a signed token binding the subject, valid for the
	// configured lifetime.
	Issue(subject string) (string, error)

	// Validate verifies signature and expiry and returns the decoded claims.
	// Failures are domainerrors.ErrTokenMalformed, ErrTokenInvalidSignature
	// or ErrTokenExpired.
	Validate(tokenString string) (*Claims, error)

	// ValidateForSubject is Validate plus a check that the embedded subject
	// equals expectedSubject, failing with domainerrors.ErrTokenSubjectMismatch.
	ValidateForSubject(tokenString, expectedSubject string) (*Claims, error)

	// Lifetime returns the configured token lifetime.
	Lifetime() time.Duration
}
