// Package pipeline talks to the detection service: one POST per checked URL.
package pipeline

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ppiankov/phishcheck/internal/model"
	"github.com/ppiankov/phishcheck/internal/util"
)

// notOKMessage is reported for non-2xx responses that carry no error message
const notOKMessage = "Network response was not ok"

// StatusError is returned when the service answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Message    string // The service's "error" field, or the generic not-ok text
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
}

// Client posts URLs to the phishing-detection service
type Client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
	maxBytes   int64
	logger     *zap.Logger
}

// NewClient creates a Client for the given endpoint URL.
// A zero timeout leaves the request bounded only by ctx and the transport.
func NewClient(endpoint string, cfg model.HTTPConfig, logger *zap.Logger) (*Client, error) {
	proxy, err := util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy)
	if err != nil {
		return nil, fmt.Errorf("configure proxy: %w", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = proxy
	if cfg.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for self-signed dev services
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		endpoint:  endpoint,
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		logger:    logger,
	}, nil
}

// Predict submits rawURL and returns the service's verdict
func (c *Client) Predict(ctx context.Context, rawURL string) (*model.Outcome, error) {
	payload, err := json.Marshal(model.PredictRequest{URL: rawURL})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	log := c.logger.With(zap.String("request_id", requestID), zap.String("url", rawURL))
	log.Debug("posting url to detection service", zap.String("endpoint", c.endpoint))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: post: %w", requestID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("request %s: read body: %w", requestID, err)
	}
	log.Debug("detection service responded", zap.Int("status", resp.StatusCode), zap.Int("bytes", len(body)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp model.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			return nil, fmt.Errorf("request %s: decode error body (status %d): %w", requestID, resp.StatusCode, err)
		}
		msg := errResp.Error
		if msg == "" {
			msg = notOKMessage
		}
		return nil, fmt.Errorf("request %s: %w", requestID, &StatusError{StatusCode: resp.StatusCode, Message: msg})
	}

	var out model.PredictResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("request %s: decode response: %w", requestID, err)
	}

	return out.Outcome(), nil
}
