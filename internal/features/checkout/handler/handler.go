package handler

import (
	"net/http"

	"storefront/internal/core/config"
	"storefront/internal/core/i18n"
	"storefront/internal/core/render"
	"storefront/internal/features/checkout/domain"
	"storefront/internal/features/checkout/view"

	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler serves the QR payment page.
type CheckoutHandler struct {
	template    string
	defaultSize int
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(cfg config.CheckoutConfig) *CheckoutHandler {
	return &CheckoutHandler{
		template:    cfg.QRImageTemplate,
		defaultSize: cfg.QRDefaultSize,
	}
}

// Register mounts the checkout routes on router.
func (h *CheckoutHandler) Register(router fiber.Router) {
	router.Get("/checkout/qr", h.GetQR)
}

// GetQR handles GET /checkout/qr?uri=...&size=...
// A missing or non-positive size uses the configured default.
func (h *CheckoutHandler) GetQR(c *fiber.Ctx) error {
	size := c.QueryInt("size", 0)
	if size <= 0 {
		size = h.defaultSize
	}

	qr := domain.NewQRCode(h.template, c.Query("uri"), size)

	p := render.Printer(c)
	page := render.Page(render.Language(c), p.Sprintf(i18n.KeyQRTitle), view.QRPayment(p, qr))
	return render.HTML(c, http.StatusOK, page)
}
