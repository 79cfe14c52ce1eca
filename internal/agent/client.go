package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"linux-monitor/internal/config"
	"linux-monitor/internal/domain"
)

// Client talks to the monitor server. Every call is bounded by its own
// timeout so a stalled server cannot hold up a collection tick.
type Client struct {
	baseURL        string
	http           *http.Client
	publishTimeout time.Duration
	fetchTimeout   time.Duration
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:        cfg.ServerURL,
		http:           &http.Client{},
		publishTimeout: cfg.PublishTimeout,
		fetchTimeout:   cfg.FetchTimeout,
	}
}

// Publish sends one snapshot. Any failure, including the deadline expiring,
// is reported as domain.ErrTransport.
func (c *Client) Publish(ctx context.Context, snap domain.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, c.publishTimeout)
	defer cancel()

	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %v", domain.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/monitor", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%w: publish returned status %d", domain.ErrTransport, resp.StatusCode)
	}

	return nil
}

// FetchLatest returns the server's current snapshot. On failure it returns
// an empty snapshot alongside the error so callers can clear their view.
func (c *Client) FetchLatest(ctx context.Context) (domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/monitor", nil)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Snapshot{}, fmt.Errorf("%w: fetch returned status %d", domain.ErrTransport, resp.StatusCode)
	}

	var response struct {
		Data domain.Snapshot `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: decode snapshot: %v", domain.ErrTransport, err)
	}

	return response.Data, nil
}
