package draft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Client talks to the Draft REST API. All methods issue exactly one
// blocking HTTP request (Document.Update issues a second one to refresh
// from canonical server state) and never retry.
//
// The Client holds no mutable cross-call state beyond the immutable
// credential pair, so it is safe for concurrent use; individual entity
// instances are not, and should be confined to one logical call at a time.
type Client struct {
	config     *Config
	baseURL    string
	httpClient *http.Client
	logger     hclog.Logger
}

// NewClient creates a Draft API client from cfg. BaseURL defaults to the
// hosted service root; Email and Password are required.
func NewClient(cfg *Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.TLSVerify == nil {
		defaults := DefaultConfig()
		cfg.TLSVerify = defaults.TLSVerify
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return &Client{
		config:     cfg,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/") + "/",
		httpClient: cfg.NewHTTPClient(),
		logger:     cfg.Logger.Named("draft-client"),
	}, nil
}

// BaseURL returns the resolved API root the client talks to, always with a
// trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request issues a single HTTP request against the API root and returns
// the decoded JSON body.
//
// Behavior, in order:
//   - basic auth credentials are attached to every request
//   - a non-nil body is marshaled as JSON with a JSON content type
//   - a non-2xx status returns *APIError and no value
//   - a 204, a non-JSON content type, an empty body, or a body of exactly
//     one space (a service quirk meaning "no content") all return nil
//   - anything else is parsed as JSON, with numbers kept as json.Number
func (c *Client) request(ctx context.Context, method, path string, body any, query url.Values) (any, error) {
	endpoint := c.baseURL + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint = endpoint + "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(c.config.Email, c.config.Password)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("sending request",
		"method", method,
		"path", path,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp, respBody)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	// The service returns a body of a single space when it has nothing to
	// say; treat it like an empty body regardless of content type.
	if len(respBody) == 0 || string(respBody) == " " {
		return nil, nil
	}

	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(respBody))
	dec.UseNumber()
	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return decoded, nil
}

// requestObject issues a request whose successful response must be a JSON
// object, returned as the backing map for an entity.
func (c *Client) requestObject(ctx context.Context, method, path string, body any) (map[string]any, error) {
	decoded, err := c.request(ctx, method, path, body, nil)
	if err != nil {
		return nil, err
	}
	if decoded == nil {
		return nil, nil
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response shape: expected object, got %T", decoded)
	}
	return obj, nil
}

// requestArray issues a request whose successful response must be a JSON
// array of objects.
func (c *Client) requestArray(ctx context.Context, method, path string) ([]map[string]any, error) {
	decoded, err := c.request(ctx, method, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if decoded == nil {
		return nil, nil
	}
	arr, ok := decoded.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response shape: expected array, got %T", decoded)
	}
	objs := make([]map[string]any, 0, len(arr))
	for _, elem := range arr {
		obj, ok := elem.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected response shape: expected array of objects, got element %T", elem)
		}
		objs = append(objs, obj)
	}
	return objs, nil
}
