package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/realty-service/internal/domain"
)

const identityKey = "auth_identity"

// Middleware validates bearer tokens on protected routes and stores the
// resolved identity in request locals. Failures are returned as tagged values
// and translated to responses by the global error middleware.
type Middleware struct {
	resolver *IdentityResolver
}

// NewMiddleware constructs the auth middleware.
func NewMiddleware(resolver *IdentityResolver) *Middleware {
	return &Middleware{resolver: resolver}
}

// Handle enforces authentication for protected routes. It normalizes the
// Authorization header down to the plain token string before calling the
// resolver.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}

	identity, err := m.resolver.Resolve(token)
	if err != nil {
		return err
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// RequireRole returns a handler restricting the route to one role. It runs
// after Handle, so the token has already been decoded exactly once per
// request.
func (m *Middleware) RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return ErrTokenMalformed
		}
		if identity.Role != required {
			return ErrForbidden
		}
		return c.Next()
	}
}

// IdentityFromContext retrieves the authenticated identity stored by Handle.
func IdentityFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return domain.Identity{}, false
	}
	identity, ok := val.(domain.Identity)
	return identity, ok
}

func bearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", NewFailure(KindTokenMalformed, "missing authorization header")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", NewFailure(KindTokenMalformed, "invalid authorization header")
	}
	return parts[1], nil
}
