package ratesapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	licenseHeader     = "X-RS-License"
	fingerprintHeader = "If-None-Match"
)

// ErrUnauthorized means the remote rejected the license key. Fatal to
// the run, not to the key itself.
var ErrUnauthorized = errors.New("license key rejected by rates api")

// TransferError covers network failures, timeouts and unexpected status
// codes from the rates API.
type TransferError struct {
	RegionID string
	Status   int
	Err      error
}

func (e *TransferError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transfer failed for region %s: %v", e.RegionID, e.Err)
	}
	return fmt.Sprintf("transfer failed for region %s: unexpected status %d", e.RegionID, e.Status)
}

func (e *TransferError) Unwrap() error { return e.Err }

// TableResult is the outcome of a conditional table fetch. Unchanged
// means the presented fingerprint still matches and Body is empty.
type TableResult struct {
	Unchanged bool
	Body      []byte
}

// Config holds rates API client configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client downloads per-region rate tables from the authoritative source.
type Client struct {
	http           *resty.Client
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{
		http:           cli,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "ratesapi"),
	}
}

// FetchTable issues a conditional download of the region's table. The
// fingerprint of the locally stored table (empty when none exists) lets
// the source answer 304 without re-sending the payload. Transport
// failures are retried with backoff; anything that survives the retries
// is a *TransferError.
func (c *Client) FetchTable(ctx context.Context, regionID, fingerprint, license string) (*TableResult, error) {
	var resp *resty.Response
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err = c.doRequest(ctx, regionID, fingerprint, license)
		if err == nil {
			break
		}

		if attempt == c.maxAttempts {
			return nil, &TransferError{RegionID: regionID, Err: fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)}
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("table request failed, retrying",
			"region", regionID,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, &TransferError{RegionID: regionID, Err: ctx.Err()}
		case <-time.After(backoff):
		}
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return &TableResult{Body: resp.Body()}, nil
	case http.StatusNotModified:
		return &TableResult{Unchanged: true}, nil
	case http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		return nil, &TransferError{RegionID: regionID, Status: resp.StatusCode()}
	}
}

func (c *Client) doRequest(ctx context.Context, regionID, fingerprint, license string) (*resty.Response, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeader(licenseHeader, license)

	if fingerprint != "" {
		req.SetHeader(fingerprintHeader, fingerprint)
	}

	resp, err := req.Get("/table/" + regionID)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
