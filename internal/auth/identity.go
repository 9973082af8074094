package auth

import (
	"github.com/spec-kit/realty-service/internal/domain"
)

// IdentityResolver turns a bearer token string into the authenticated caller.
// It accepts only a plain token; header extraction happens at the HTTP
// boundary before the core is reached.
type IdentityResolver struct {
	codec *TokenCodec
}

// NewIdentityResolver constructs a resolver over the given codec.
func NewIdentityResolver(codec *TokenCodec) *IdentityResolver {
	return &IdentityResolver{codec: codec}
}

// Resolve decodes the token and yields the identity embedded in it. Codec
// failures pass through unchanged; the only failure added here is
// MISSING_SUBJECT when the claims carry no subject.
func (r *IdentityResolver) Resolve(rawToken string) (domain.Identity, error) {
	claims, err := r.codec.Decode(rawToken)
	if err != nil {
		return domain.Identity{}, err
	}
	if claims.Subject == "" {
		return domain.Identity{}, ErrMissingSubject
	}
	return domain.Identity{Subject: claims.Subject, Role: claims.Role}, nil
}

// RequireRole resolves the token once and additionally enforces the required
// role, returning the subject on success. Resolution failures propagate
// unchanged; a valid identity with the wrong role fails FORBIDDEN.
func (r *IdentityResolver) RequireRole(rawToken string, required domain.Role) (string, error) {
	identity, err := r.Resolve(rawToken)
	if err != nil {
		return "", err
	}
	if identity.Role != required {
		return "", ErrForbidden
	}
	return identity.Subject, nil
}
