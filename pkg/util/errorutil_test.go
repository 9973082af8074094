package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/realty-service/internal/auth"
)

func TestToDomainErrorAuthFailures(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{auth.ErrInvalidCredentials, "INVALID_CREDENTIALS", http.StatusUnauthorized},
		{auth.ErrTokenMalformed, "TOKEN_MALFORMED", http.StatusUnauthorized},
		{auth.ErrTokenExpired, "TOKEN_EXPIRED", http.StatusUnauthorized},
		{auth.ErrTokenAudience, "TOKEN_AUDIENCE_MISMATCH", http.StatusUnauthorized},
		{auth.ErrMissingSubject, "MISSING_SUBJECT", http.StatusUnauthorized},
		{auth.ErrForbidden, "FORBIDDEN", http.StatusForbidden},
		{auth.ErrDuplicateEmail, "DUPLICATE_IDENTIFIER", http.StatusConflict},
	}

	for _, tc := range cases {
		mapped := ToDomainError(tc.err)
		require.Equal(t, tc.code, mapped.Code)
		require.Equal(t, tc.status, mapped.HTTPStatus)
	}
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	require.Equal(t, "NOT_FOUND", mapped.Code)
	require.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorPassThrough(t *testing.T) {
	original := NewDomainError("CONFLICT", "taken", http.StatusConflict, nil)
	require.Same(t, original, ToDomainError(original))
}

func TestToDomainErrorUnexpected(t *testing.T) {
	mapped := ToDomainError(errors.New("db unreachable"))
	require.Equal(t, "INTERNAL_ERROR", mapped.Code)
	require.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
}

func TestToDomainErrorNil(t *testing.T) {
	require.Nil(t, ToDomainError(nil))
}
