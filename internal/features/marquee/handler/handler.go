package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/internal/core/logger"
	"storefront/internal/core/render"
	"storefront/internal/core/server"
	"storefront/internal/features/banners/domain"
	"storefront/internal/features/marquee/view"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EnabledFetcher is the slice of the banner service the marquee reads from.
type EnabledFetcher interface {
	FetchEnabled(ctx context.Context) ([]domain.BannerMessage, error)
}

// MarqueeHandler serves the marquee fragment.
type MarqueeHandler struct {
	banners EnabledFetcher
	timeout time.Duration
}

// NewMarqueeHandler creates a new MarqueeHandler. A timeout <= 0 waits for
// the fetch to complete.
func NewMarqueeHandler(banners EnabledFetcher, timeout time.Duration) *MarqueeHandler {
	return &MarqueeHandler{
		banners: banners,
		timeout: timeout,
	}
}

// Register mounts the marquee route on router.
func (h *MarqueeHandler) Register(router fiber.Router) {
	router.Get("/marquee", h.GetMarquee)
}

// GetMarquee handles GET /marquee.
func (h *MarqueeHandler) GetMarquee(c *fiber.Ctx) error {
	return render.HTML(c, http.StatusOK, h.Component(c.UserContext(), server.RayID(c)))
}

// Component resolves the enabled messages and returns the marquee for them.
// Failures render as the loading state; the marquee never breaks a page.
func (h *MarqueeHandler) Component(ctx context.Context, rayID string) templ.Component {
	messages, err := h.fetch(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Get().Warn("Marquee fetch timed out",
				zap.String("ray_id", rayID),
				zap.Duration("timeout", h.timeout),
			)
		} else {
			logger.Get().Error("Marquee fetch failed",
				zap.String("ray_id", rayID),
				zap.Error(err),
			)
		}
		return view.Marquee(nil, true)
	}
	return view.Marquee(messages, false)
}

type result struct {
	messages []domain.BannerMessage
	err      error
}

func (h *MarqueeHandler) fetch(ctx context.Context) ([]domain.BannerMessage, error) {
	if h.timeout <= 0 {
		return h.banners.FetchEnabled(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	done := make(chan result, 1)
	go func() {
		messages, err := h.banners.FetchEnabled(ctx)
		done <- result{messages: messages, err: err}
	}()

	select {
	case r := <-done:
		return r.messages, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
