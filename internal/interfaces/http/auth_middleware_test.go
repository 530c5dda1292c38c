package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Analitica-retail/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Analitica-retail/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "analitica-retail-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware,
// RequireRole y un handler dummy que devuelve 200 si pasa los middlewares.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware + RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinTokenDevuelve401(t *testing.T) {
	app := buildTestApp("analista")
	resp := doRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenMalFormadoDevuelve401(t *testing.T) {
	app := buildTestApp("analista")
	resp := doRequest(t, app, "Bearer no-es-un-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_EsquemaInvalidoDevuelve401(t *testing.T) {
	app := buildTestApp("analista")
	resp := doRequest(t, app, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_RolPermitidoAccede(t *testing.T) {
	app := buildTestApp("analista", "admin")
	resp := doRequest(t, app, tokenForRole(t, "analista"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_RolNoPermitidoDevuelve403(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "analista"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
