package handler

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/core/logger"
	"storefront/internal/core/server"
	"storefront/internal/features/banners/domain"
	"storefront/internal/features/banners/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BannerHandler handles HTTP requests for banner messages.
type BannerHandler struct {
	service ports.BannerService
}

// NewBannerHandler creates a new BannerHandler.
func NewBannerHandler(service ports.BannerService) *BannerHandler {
	return &BannerHandler{
		service: service,
	}
}

// Register mounts the banner routes on router.
func (h *BannerHandler) Register(router fiber.Router) {
	router.Get("/banners", h.ListBanners)
	router.Get("/banners/enabled", h.ListEnabledBanners)
	router.Post("/banners", h.AddBanner)
	router.Put("/banners/:order", h.UpdateBanner)
	router.Delete("/banners/:order", h.DeleteBanner)
}

// CreateBannerRequest represents the request body for adding a banner message.
type CreateBannerRequest struct {
	Order   *int64 `json:"order"`
	Message string `json:"message"`
	Enabled bool   `json:"enabled"`
}

// UpdateBannerRequest represents the request body for updating a banner message.
type UpdateBannerRequest struct {
	Message string `json:"message"`
	Enabled bool   `json:"enabled"`
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// ListBanners handles GET /banners.
// @Summary List banner messages
// @Description Returns every banner message held by the gateway.
// @Tags Banner
// @Produce json
// @Success 200 {array} domain.BannerMessage
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /banners [get]
func (h *BannerHandler) ListBanners(c *fiber.Ctx) error {
	messages, err := h.service.FetchAll(c.UserContext())
	if err != nil {
		return h.fail(c, "Failed to list banners", err)
	}

	return c.Status(http.StatusOK).JSON(messages)
}

// ListEnabledBanners handles GET /banners/enabled.
// @Summary List enabled banner messages
// @Description Returns the enabled banner messages sorted by order. An unavailable gateway yields an empty list.
// @Tags Banner
// @Produce json
// @Success 200 {array} domain.BannerMessage
// @Failure 500 {object} ErrorResponse
// @Router /banners/enabled [get]
func (h *BannerHandler) ListEnabledBanners(c *fiber.Ctx) error {
	messages, err := h.service.FetchEnabled(c.UserContext())
	if err != nil {
		return h.fail(c, "Failed to list enabled banners", err)
	}

	return c.Status(http.StatusOK).JSON(messages)
}

// AddBanner handles POST /banners.
// @Summary Add a banner message
// @Tags Banner
// @Accept json
// @Produce json
// @Param banner body CreateBannerRequest true "Banner message"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /banners [post]
func (h *BannerHandler) AddBanner(c *fiber.Ctx) error {
	var req CreateBannerRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Order == nil {
		return respond(c, http.StatusBadRequest, "order is required")
	}

	if err := h.service.Add(c.UserContext(), req.Message, *req.Order, req.Enabled); err != nil {
		return h.fail(c, "Failed to add banner", err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Banner added successfully",
	})
}

// UpdateBanner handles PUT /banners/:order.
// @Summary Update a banner message
// @Tags Banner
// @Accept json
// @Produce json
// @Param order path int true "Banner order"
// @Param banner body UpdateBannerRequest true "Banner message"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /banners/{order} [put]
func (h *BannerHandler) UpdateBanner(c *fiber.Ctx) error {
	order, err := parseOrder(c)
	if err != nil {
		return respond(c, http.StatusBadRequest, "order must be an integer")
	}

	var req UpdateBannerRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.Update(c.UserContext(), order, req.Message, req.Enabled); err != nil {
		return h.fail(c, "Failed to update banner", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Banner updated successfully",
	})
}

// DeleteBanner handles DELETE /banners/:order.
// @Summary Delete a banner message
// @Tags Banner
// @Produce json
// @Param order path int true "Banner order"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /banners/{order} [delete]
func (h *BannerHandler) DeleteBanner(c *fiber.Ctx) error {
	order, err := parseOrder(c)
	if err != nil {
		return respond(c, http.StatusBadRequest, "order must be an integer")
	}

	if err := h.service.Delete(c.UserContext(), order); err != nil {
		return h.fail(c, "Failed to delete banner", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Banner deleted successfully",
	})
}

// fail maps service errors onto status codes.
func (h *BannerHandler) fail(c *fiber.Ctx, msg string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidOrder), errors.Is(err, domain.ErrEmptyMessage):
		return respond(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ports.ErrNotFound):
		return respond(c, http.StatusNotFound, "Banner not found")
	case errors.Is(err, ports.ErrOrderTaken):
		return respond(c, http.StatusConflict, "A banner with this order already exists")
	}

	logger.Get().Error(msg,
		zap.String("ray_id", server.RayID(c)),
		zap.Error(err),
	)

	if errors.Is(err, ports.ErrGatewayUnavailable) {
		return respond(c, http.StatusServiceUnavailable, "Banner gateway unavailable")
	}
	return respond(c, http.StatusInternalServerError, "Internal server error")
}

func respond(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   server.RayID(c),
	})
}

func parseOrder(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("order"), 10, 64)
}
