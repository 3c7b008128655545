package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/features/banners/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEnabledFetcher struct {
	mock.Mock
}

func (m *MockEnabledFetcher) FetchEnabled(ctx context.Context) ([]domain.BannerMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BannerMessage), args.Error(1)
}

func get(t *testing.T, h *MarqueeHandler) (*http.Response, string) {
	t.Helper()
	app := fiber.New()
	h.Register(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/marquee", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestMarqueeHandler_GetMarquee(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		fetcher := new(MockEnabledFetcher)
		fetcher.On("FetchEnabled", mock.Anything).
			Return([]domain.BannerMessage{{Order: 1, Message: "Sale!", Enabled: true}}, nil).Once()

		resp, body := get(t, NewMarqueeHandler(fetcher, time.Second))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
		assert.Contains(t, body, "Sale! ✨ Sale!")
		fetcher.AssertExpectations(t)
	})

	t.Run("NoMessages", func(t *testing.T) {
		fetcher := new(MockEnabledFetcher)
		fetcher.On("FetchEnabled", mock.Anything).Return([]domain.BannerMessage{}, nil).Once()

		resp, body := get(t, NewMarqueeHandler(fetcher, 0))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, body)
	})

	t.Run("ErrorRendersLoadingState", func(t *testing.T) {
		fetcher := new(MockEnabledFetcher)
		fetcher.On("FetchEnabled", mock.Anything).Return(nil, errors.New("boom")).Once()

		resp, body := get(t, NewMarqueeHandler(fetcher, time.Second))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, body)
	})

	t.Run("TimeoutRendersLoadingState", func(t *testing.T) {
		fetcher := new(MockEnabledFetcher)
		fetcher.On("FetchEnabled", mock.Anything).
			WaitUntil(time.After(200*time.Millisecond)).
			Return([]domain.BannerMessage{{Order: 1, Message: "Late"}}, nil).Once()

		resp, body := get(t, NewMarqueeHandler(fetcher, 10*time.Millisecond))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotContains(t, body, "Late")
	})
}
