package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentHandler_GetFailure(t *testing.T) {
	app := fiber.New()
	NewPaymentHandler().Register(app)

	t.Run("Default", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/payment/failure", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "<title>Payment failed</title>")
		assert.Contains(t, string(body), `href="/cart"`)
	})

	t.Run("LangQuery", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/payment/failure?lang=es", nil))
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `<html lang="es">`)
		assert.Contains(t, string(body), "El pago falló")
	})
}
