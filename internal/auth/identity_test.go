package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/realty-service/internal/domain"
)

func TestResolveReturnsIdentity(t *testing.T) {
	codec := NewTokenCodec(testAuthConfig())
	resolver := NewIdentityResolver(codec)

	token, _, err := codec.Encode("a@x.com", domain.RoleAdmin)
	require.NoError(t, err)

	identity, err := resolver.Resolve(token)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", identity.Subject)
	require.Equal(t, domain.RoleAdmin, identity.Role)
}

func TestResolveMissingSubject(t *testing.T) {
	codec := NewTokenCodec(testAuthConfig())
	resolver := NewIdentityResolver(codec)

	token, _, err := codec.Encode("", domain.RoleUser)
	require.NoError(t, err)

	_, err = resolver.Resolve(token)
	requireKind(t, err, KindMissingSubject)
}

func TestResolvePropagatesCodecFailures(t *testing.T) {
	codec := NewTokenCodec(testAuthConfig())
	resolver := NewIdentityResolver(codec)

	expired, _, err := codec.EncodeWithTTL("a@x.com", domain.RoleUser, -time.Minute)
	require.NoError(t, err)

	_, err = resolver.Resolve(expired)
	requireKind(t, err, KindTokenExpired)

	_, err = resolver.Resolve("not-a-token")
	requireKind(t, err, KindTokenMalformed)
}

func TestRequireRoleMatch(t *testing.T) {
	codec := NewTokenCodec(testAuthConfig())
	resolver := NewIdentityResolver(codec)

	token, _, err := codec.Encode("admin@x.com", domain.RoleAdmin)
	require.NoError(t, err)

	subject, err := resolver.RequireRole(token, domain.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, "admin@x.com", subject)
}

func TestRequireRoleMismatch(t *testing.T) {
	codec := NewTokenCodec(testAuthConfig())
	resolver := NewIdentityResolver(codec)

	token, _, err := codec.Encode("admin@x.com", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = resolver.RequireRole(token, domain.RoleStaff)
	requireKind(t, err, KindForbidden)
}

func TestRequireRolePropagatesResolutionFailures(t *testing.T) {
	codec := NewTokenCodec(testAuthConfig())
	resolver := NewIdentityResolver(codec)

	expired, _, err := codec.EncodeWithTTL("a@x.com", domain.RoleAdmin, -time.Minute)
	require.NoError(t, err)

	_, err = resolver.RequireRole(expired, domain.RoleAdmin)
	requireKind(t, err, KindTokenExpired)
}
