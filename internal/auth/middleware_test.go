package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/realty-service/internal/domain"
)

func newTestApp(mw *Middleware, required domain.Role) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			if failure, ok := err.(*Failure); ok {
				status := http.StatusUnauthorized
				if failure.Kind == KindForbidden {
					status = http.StatusForbidden
				}
				return c.Status(status).JSON(fiber.Map{"code": string(failure.Kind)})
			}
			return err
		}
		return nil
	})
	app.Get("/protected", mw.Handle, mw.RequireRole(required), func(c *fiber.Ctx) error {
		identity, _ := IdentityFromContext(c)
		return c.JSON(fiber.Map{"subject": identity.Subject})
	})
	return app
}

func TestMiddlewareAllowsMatchingRole(t *testing.T) {
	codec := NewTokenCodec(testAuthConfig())
	mw := NewMiddleware(NewIdentityResolver(codec))
	app := newTestApp(mw, domain.RoleAdmin)

	token, _, err := codec.Encode("admin@x.com", domain.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareRejectsWrongRole(t *testing.T) {
	codec := NewTokenCodec(testAuthConfig())
	mw := NewMiddleware(NewIdentityResolver(codec))
	app := newTestApp(mw, domain.RoleAdmin)

	token, _, err := codec.Encode("user@x.com", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	codec := NewTokenCodec(testAuthConfig())
	mw := NewMiddleware(NewIdentityResolver(codec))
	app := newTestApp(mw, domain.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsNonBearerScheme(t *testing.T) {
	codec := NewTokenCodec(testAuthConfig())
	mw := NewMiddleware(NewIdentityResolver(codec))
	app := newTestApp(mw, domain.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	codec := NewTokenCodec(testAuthConfig())
	mw := NewMiddleware(NewIdentityResolver(codec))
	app := newTestApp(mw, domain.RoleAdmin)

	token, _, err := codec.EncodeWithTTL("admin@x.com", domain.RoleAdmin, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
