package draft

import (
	"crypto/tls"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hashicorp/go-hclog"
)

// DefaultBaseURL is the versioned API root of the hosted Draft service.
const DefaultBaseURL = "https://draftin.com/api/v1/"

// Config contains configuration for the Draft API client.
type Config struct {
	// BaseURL is the root of the versioned Draft API.
	// Default: https://draftin.com/api/v1/
	BaseURL string

	// Email is the account email used for HTTP basic authentication.
	// Credentials are held for the client lifetime and passed unchanged on
	// every request; there is no expiry or refresh.
	Email string

	// Password is the account password used for HTTP basic authentication.
	Password string

	// Timeout for API requests.
	// Default: 30 seconds
	Timeout time.Duration

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development/testing with self-signed certs.
	TLSVerify *bool

	// Logger is used for request-level debug logging. A null logger is
	// used when unset.
	Logger hclog.Logger

	// HTTPClient overrides the client built from Timeout/TLSVerify. Useful
	// for tests or callers with their own pooling requirements.
	HTTPClient *http.Client
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		BaseURL:   DefaultBaseURL,
		TLSVerify: &tlsVerify,
		Timeout:   30 * time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Email, validation.Required),
		validation.Field(&c.Password, validation.Required),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// NewHTTPClient creates a configured HTTP client for this config.
func (c *Config) NewHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
