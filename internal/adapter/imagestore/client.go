package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// ErrAssetNotFound indicates the store has no asset for the public ID.
var ErrAssetNotFound = errors.New("asset not found")

// Client exposes operations against the image hosting service.
type Client interface {
	Destroy(ctx context.Context, publicID string) error
}

// HTTPClient implements Client via the store's HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates an image store client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse image store url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("image store url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Destroy deletes a hosted asset by its public ID.
func (c *HTTPClient) Destroy(ctx context.Context, publicID string) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/assets/", publicID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrAssetNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("image store request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("image store error: %s", resp.Status)
	}
}
