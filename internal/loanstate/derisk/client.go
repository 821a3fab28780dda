package derisk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Tzienom/derisk-research/internal/loanstate/chain"
	"github.com/Tzienom/derisk-research/internal/loanstate/model"
	"go.uber.org/ratelimit"
)

const maxErrorBody = 512

// Client calls the DeRisk data API with request pacing and metrics instrumentation.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    ratelimit.Limiter
	metrics    Metrics
}

// NewClient constructs a Client. A non-positive rps disables pacing.
func NewClient(baseURL string, httpClient *http.Client, rps int, metrics Metrics) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    limiter,
		metrics:    metrics,
	}, nil
}

// Events returns the raw events emitted by address inside r.
func (c *Client) Events(ctx context.Context, address model.Address, r chain.BlockRange) (events []Event, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("events", err, started)
	}()

	req, err := c.eventsRequest(ctx, address, r)
	if err != nil {
		return nil, err
	}

	c.limiter.Take()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get events for %s %s: %w", address, r, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("get events for %s %s: unexpected status %d: %s", address, r, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("decode events for %s %s: %w", address, r, err)
	}
	return events, nil
}

func (c *Client) eventsRequest(ctx context.Context, address model.Address, r chain.BlockRange) (*http.Request, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	q := u.Query()
	q.Set("from_address", address.Padded())
	q.Set("min_block_number", strconv.FormatUint(r.From, 10))
	q.Set("max_block_number", strconv.FormatUint(r.Last(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
