// Package robotcatalog calls the external robot catalog service to resolve
// robot-model ids to display names. The catalog is best-effort from this
// service's perspective: callers downgrade any failure to the "Unknown"
// sentinel instead of failing their own request.
package robotcatalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Client fetches robot model information over the catalog's batch endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the given catalog base URL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "robotcatalog"),
	}
}

// ResolveModels resolves a batch of robot-model ids to catalog records in a
// single call. An empty id list short-circuits without a network call.
// Ids unknown to the catalog are simply absent from the result map.
// Any transport or decode failure maps to domain.ErrUpstreamUnavailable.
func (c *Client) ResolveModels(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	body, err := json.Marshal(batchGetRequest{IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("robotcatalog: encode request: %w", err)
	}

	reqURL := c.baseURL + "/robot-models:batchGet"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("robotcatalog: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "catalog batch lookup", slog.Int("ids", len(ids)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("robotcatalog: %w: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("robotcatalog: %w: unexpected status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("robotcatalog: %w: read body: %w", domain.ErrUpstreamUnavailable, err)
	}

	var decoded batchGetResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("robotcatalog: %w: decode json: %w", domain.ErrUpstreamUnavailable, err)
	}

	models := make(map[uuid.UUID]string, len(decoded.Models))
	for _, m := range decoded.Models {
		models[m.ID] = m.Name
	}

	c.log.DebugContext(ctx, "catalog batch lookup done",
		slog.Int("requested", len(ids)),
		slog.Int("resolved", len(models)),
	)

	return models, nil
}
