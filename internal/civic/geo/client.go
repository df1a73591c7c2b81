// Package geo resolves coordinates to Open Civic Data division ids through an
// external lookup service.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"statehouse/internal/platform/config"
	dErrors "statehouse/pkg/domain-errors"
)

const (
	maxBodyBytes = 1 << 20
	retryAdvice  = "division lookup failed, try again later"
)

// Client queries the lookup service. The service answers
// GET {base}?lat=&lng= with {"divisions": [{"id": "ocd-division/..."}]}.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cl *Client) {
		cl.logger = logger
	}
}

func New(cfg config.Geo, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	c := &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type divisionsResponse struct {
	Divisions *[]struct {
		ID string `json:"id"`
	} `json:"divisions"`
}

// Divisions returns the ids of the divisions containing the coordinate.
// Transport failures and malformed payloads are reported as upstream errors.
func (c *Client) Divisions(ctx context.Context, lat, lng float64) ([]string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid geo base url: %w", err)
	}
	q := u.Query()
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build geo request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.upstream(ctx, "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.upstream(ctx, "unexpected status", fmt.Errorf("status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, c.upstream(ctx, "read body", err)
	}
	var payload divisionsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, c.upstream(ctx, "malformed payload", err)
	}
	if payload.Divisions == nil {
		return nil, c.upstream(ctx, "malformed payload", fmt.Errorf("missing divisions"))
	}

	ids := make([]string, 0, len(*payload.Divisions))
	for _, d := range *payload.Divisions {
		if d.ID == "" {
			return nil, c.upstream(ctx, "malformed payload", fmt.Errorf("division without id"))
		}
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (c *Client) upstream(ctx context.Context, reason string, err error) error {
	c.logger.WarnContext(ctx, "division lookup failed", "reason", reason, "error", err)
	return dErrors.Wrap(err, dErrors.CodeUpstream, retryAdvice)
}
