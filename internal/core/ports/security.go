package ports

import "context"

// PasswordHasher is a salted, adaptive one-way hash over plaintext passwords.
// Verify must be constant-time with respect to the secret comparison and
// implementations must never log the plaintext.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer signs access tokens embedding the subject id and the role the
// user held at issuance time. Verification is the consumer's concern.
type TokenIssuer interface {
	Sign(userID, role string) (string, error)
}

// LoginThrottle limits failed login attempts per email. Allowed reports
// whether another attempt may proceed; RecordFailure registers a failed
// attempt and Reset clears the counter after a successful login.
type LoginThrottle interface {
	Allowed(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
