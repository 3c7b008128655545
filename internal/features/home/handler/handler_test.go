package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/features/banners/domain"
	marquee "storefront/internal/features/marquee/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticBanners []domain.BannerMessage

func (s staticBanners) FetchEnabled(context.Context) ([]domain.BannerMessage, error) {
	return s, nil
}

func getHome(t *testing.T, banners staticBanners, target string) string {
	t.Helper()
	app := fiber.New()
	NewHomeHandler(marquee.NewMarqueeHandler(banners, time.Second)).Register(app)

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestHomeHandler_GetHome(t *testing.T) {
	t.Run("WithMarquee", func(t *testing.T) {
		body := getHome(t, staticBanners{{Order: 1, Message: "Sale!", Enabled: true}}, "/")
		assert.Contains(t, body, "<title>Storefront</title>")
		assert.Contains(t, body, "Sale! ✨ Sale!")
	})

	t.Run("WithoutMessages", func(t *testing.T) {
		body := getHome(t, staticBanners{}, "/?lang=es")
		assert.Contains(t, body, "<title>Tienda</title>")
		assert.NotContains(t, body, "marquee__track")
	})
}
