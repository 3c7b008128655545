package handler

import (
	"net/http"

	"storefront/internal/core/i18n"
	"storefront/internal/core/render"
	"storefront/internal/features/payment/view"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler serves the payment result pages.
type PaymentHandler struct{}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{}
}

// Register mounts the payment routes on router.
func (h *PaymentHandler) Register(router fiber.Router) {
	router.Get("/payment/failure", h.GetFailure)
}

// GetFailure handles GET /payment/failure.
func (h *PaymentHandler) GetFailure(c *fiber.Ctx) error {
	p := render.Printer(c)
	return render.HTML(c, http.StatusOK, render.Page(render.Language(c), p.Sprintf(i18n.KeyFailureTitle), view.Failure(p)))
}
