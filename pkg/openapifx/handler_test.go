package openapifx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"go.uber.org/zap/zaptest"
)

func TestNew_OverridesPublicLocation(t *testing.T) {
	spec := &swag.Spec{Host: "localhost:3000", BasePath: "/api/v1", InfoInstanceName: "test-override"}

	New(Config{Enabled: true, PublicHost: "portal.example.com", PublicPath: "/assist/api/v1"}, spec, zaptest.NewLogger(t))

	assert.Equal(t, "portal.example.com", spec.Host)
	assert.Equal(t, "/assist/api/v1", spec.BasePath)
}

func TestRegister_Disabled(t *testing.T) {
	spec := &swag.Spec{Host: "localhost:3000", InfoInstanceName: "test-disabled"}

	app := fiber.New()
	New(Config{}, spec, zaptest.NewLogger(t)).Register(app.Group("/docs"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs/index.html", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "localhost:3000", spec.Host)
}
