package grouper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/langedb/grouper-mcp/pkg/config"
	"github.com/langedb/grouper-mcp/pkg/logger"
)

const (
	// maxResponseSize is the maximum response body size read from the
	// backend (1MB).
	maxResponseSize = 1024 * 1024

	// errorPreviewSize caps the raw-body preview embedded in errors.
	errorPreviewSize = 1024
)

// Client issues authenticated requests against a Grouper WS instance.
// Credentials are resolved once at construction and never refreshed. There
// are deliberately no retries: a failed call propagates immediately.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
}

// NewClient creates a client for the Grouper WS instance described by cfg.
func NewClient(cfg *config.Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 10 * time.Second,
			},
		},
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
	}
}

// post sends a JSON request envelope to path and decodes the response
// envelope into out. Non-2xx responses become a BackendError; 2xx responses
// that do not parse as JSON become a ParseError.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request for %s: %w", path, err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.username, c.password)

	logger.Debugw("grouper request", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("grouper request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &BackendError{
			StatusCode: resp.StatusCode,
			Body:       preview(raw),
			URL:        url,
		}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &ParseError{
			Body:     preview(raw),
			HTMLPage: looksLikeHTML(raw),
		}
	}

	return nil
}

// checkResult turns a failed WS result metadata into an error. Grouper
// normally signals failures through the HTTP status as well, but soft
// failures with a 200 do occur.
func checkResult(meta wsResultMetadata, operation string) error {
	if meta.Success == "" || wsBool(meta.Success) {
		return nil
	}
	return fmt.Errorf("grouper %s failed: %s (%s)", operation, meta.ResultCode, meta.ResultMessage)
}

func preview(raw []byte) string {
	if len(raw) > errorPreviewSize {
		raw = raw[:errorPreviewSize]
	}
	return string(raw)
}

func looksLikeHTML(raw []byte) bool {
	trimmed := strings.TrimSpace(string(raw))
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html")
}
