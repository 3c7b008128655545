package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/features/banners/domain"
	"storefront/internal/features/banners/ports"
)

// HTTPGateway implements ports.Gateway against another storefront instance's
// /banners API.
type HTTPGateway struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL is the remote storefront root, without trailing slash.
	baseURL string
}

// NewHTTPGateway creates a new HTTPGateway.
func NewHTTPGateway(baseURL string, client *http.Client) *HTTPGateway {
	return &HTTPGateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// upsertRequest is the JSON body of add and update calls.
type upsertRequest struct {
	Order   *int64 `json:"order,omitempty"`
	Message string `json:"message"`
	Enabled bool   `json:"enabled"`
}

// GetAllBannerMessages fetches the full collection.
func (g *HTTPGateway) GetAllBannerMessages(ctx context.Context) ([]domain.BannerMessage, error) {
	resp, err := g.do(ctx, http.MethodGet, "/banners", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}

	var messages []domain.BannerMessage
	if err := json.NewDecoder(resp.Body).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if messages == nil {
		messages = []domain.BannerMessage{}
	}
	return messages, nil
}

// AddBannerMessage creates a message on the remote gateway.
func (g *HTTPGateway) AddBannerMessage(ctx context.Context, message string, order int64, enabled bool) error {
	return g.send(ctx, http.MethodPost, "/banners", upsertRequest{Order: &order, Message: message, Enabled: enabled}, http.StatusCreated)
}

// UpdateBannerMessage updates the message at order on the remote gateway.
func (g *HTTPGateway) UpdateBannerMessage(ctx context.Context, order int64, message string, enabled bool) error {
	return g.send(ctx, http.MethodPut, "/banners/"+strconv.FormatInt(order, 10), upsertRequest{Message: message, Enabled: enabled}, http.StatusOK)
}

// DeleteBannerMessage removes the message at order on the remote gateway.
func (g *HTTPGateway) DeleteBannerMessage(ctx context.Context, order int64) error {
	return g.send(ctx, http.MethodDelete, "/banners/"+strconv.FormatInt(order, 10), nil, http.StatusOK)
}

func (g *HTTPGateway) send(ctx context.Context, method, path string, body interface{}, want int) error {
	resp, err := g.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp, want)
}

func (g *HTTPGateway) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrGatewayUnavailable, err)
	}
	return resp, nil
}

// checkStatus maps the remote API's status codes back onto port errors.
func checkStatus(resp *http.Response, want int) error {
	switch resp.StatusCode {
	case want:
		return nil
	case http.StatusNotFound:
		return ports.ErrNotFound
	case http.StatusConflict:
		return ports.ErrOrderTaken
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: remote returned status %d", ports.ErrGatewayUnavailable, resp.StatusCode)
	default:
		return fmt.Errorf("banner gateway returned status: %d", resp.StatusCode)
	}
}

var _ ports.Gateway = (*HTTPGateway)(nil)
