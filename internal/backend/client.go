package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/medzone/storefront/internal/config"
	"github.com/medzone/storefront/pkg/errors"
)

// Client talks to the pharmacy REST API. The API is an opaque collaborator:
// the storefront only consumes its product, order and review endpoints.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
	logger     *zap.Logger
}

type tokenContextKey struct{}

// WithToken returns a context carrying a per-request bearer token that
// overrides the configured one. The storefront never inspects the token, it
// just forwards it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// NewClient creates a new pharmacy API client
func NewClient(cfg config.BackendConfig, logger *zap.Logger) *Client {
	// Normalize base URL - remove trailing slashes
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	return &Client{
		baseURL:   baseURL,
		authToken: cfg.AuthToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// do executes one JSON request against the API. A nil out discards the
// response body; a nil body sends no payload.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.tokenFor(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Connection refused, DNS failure, timeout. The API never answered,
		// so this counts as a backend failure just like an error status.
		return &errors.ErrBackend{
			Operation: method + " " + path,
			Err:       err,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return &errors.ErrNotFound{Resource: "resource", ID: path}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &errors.ErrBackend{
			Operation: method + " " + path,
			Status:    resp.StatusCode,
			Body:      string(respBody),
		}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

func (c *Client) tokenFor(ctx context.Context) string {
	if token, ok := ctx.Value(tokenContextKey{}).(string); ok && token != "" {
		return token
	}
	return c.authToken
}
