package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRoleRecognized(t *testing.T) {
	for _, name := range []string{"admin", "staff", "user"} {
		role, err := ParseRole(name)
		require.NoError(t, err)
		require.Equal(t, Role(name), role)
	}
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "root", "ADMIN", "superuser"} {
		_, err := ParseRole(name)
		require.Error(t, err)
	}
}
