package handler

import (
	"context"
	"io"
	"net/http"

	"storefront/internal/core/i18n"
	"storefront/internal/core/render"
	"storefront/internal/core/server"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
)

// MarqueeSource produces the marquee component for a request.
type MarqueeSource interface {
	Component(ctx context.Context, rayID string) templ.Component
}

// HomeHandler serves the storefront landing page.
type HomeHandler struct {
	marquee MarqueeSource
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(marquee MarqueeSource) *HomeHandler {
	return &HomeHandler{marquee: marquee}
}

// Register mounts the home route on router.
func (h *HomeHandler) Register(router fiber.Router) {
	router.Get("/", h.GetHome)
}

// GetHome handles GET /.
func (h *HomeHandler) GetHome(c *fiber.Ctx) error {
	title := render.Printer(c).Sprintf(i18n.KeyHomeTitle)
	marquee := h.marquee.Component(c.UserContext(), server.RayID(c))

	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := marquee.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<header><h1>`+templ.EscapeString(title)+`</h1></header>`)
		return err
	})

	return render.HTML(c, http.StatusOK, render.Page(render.Language(c), title, body))
}
