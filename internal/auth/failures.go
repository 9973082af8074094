package auth

import "errors"

// FailureKind tags an expected authentication or authorization outcome.
// These are returned as values to the boundary layer, which maps them onto
// HTTP statuses; they are never allowed to crash the process.
type FailureKind string

const (
	KindInvalidCredentials FailureKind = "INVALID_CREDENTIALS"
	KindDuplicateEmail     FailureKind = "DUPLICATE_IDENTIFIER"
	KindTokenMalformed     FailureKind = "TOKEN_MALFORMED"
	KindTokenExpired       FailureKind = "TOKEN_EXPIRED"
	KindTokenAudience      FailureKind = "TOKEN_AUDIENCE_MISMATCH"
	KindMissingSubject     FailureKind = "MISSING_SUBJECT"
	KindForbidden          FailureKind = "FORBIDDEN"
)

// Failure is an expected, caller-correctable auth outcome.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

// NewFailure builds a tagged failure.
func NewFailure(kind FailureKind, message string) *Failure {
	return &Failure{Kind: kind, Message: message}
}

var (
	ErrInvalidCredentials = NewFailure(KindInvalidCredentials, "invalid credentials")
	ErrDuplicateEmail     = NewFailure(KindDuplicateEmail, "email already registered")
	ErrTokenMalformed     = NewFailure(KindTokenMalformed, "token is invalid or corrupted")
	ErrTokenExpired       = NewFailure(KindTokenExpired, "token has expired")
	ErrTokenAudience      = NewFailure(KindTokenAudience, "token issuer or audience mismatch")
	ErrMissingSubject     = NewFailure(KindMissingSubject, "token missing subject claim")
	ErrForbidden          = NewFailure(KindForbidden, "insufficient role")
)

// KindOf extracts the failure kind from an error chain. The second return is
// false for unexpected errors (e.g. persistence connectivity).
func KindOf(err error) (FailureKind, bool) {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Kind, true
	}
	return "", false
}
