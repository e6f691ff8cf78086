// Package config loads the draft CLI configuration from an HCL file and
// the environment. Credentials are always injected this way; the CLI never
// prompts for them interactively.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/draftin/draft-go/pkg/draft"
)

// Environment variables overriding (or replacing) the config file.
const (
	EnvBaseURL  = "DRAFT_BASE_URL"
	EnvEmail    = "DRAFT_EMAIL"
	EnvPassword = "DRAFT_PASSWORD"
)

// DefaultFileName is the config file looked up in the user's home
// directory when no -config flag is given.
const DefaultFileName = ".draft.hcl"

// Config represents the draft CLI configuration from HCL.
//
// Example:
//
//	base_url = "https://draftin.com/api/v1/"
//	email    = "me@example.com"
//	password = "hunter2"
//	timeout  = "30s"
type Config struct {
	// BaseURL is the root of the versioned Draft API. Optional; the
	// hosted service root is used when unset.
	BaseURL string `hcl:"base_url,optional"`

	// Email and Password are the basic-auth credentials. Required, but
	// may come from the environment instead of the file.
	Email    string `hcl:"email,optional"`
	Password string `hcl:"password,optional"`

	// Timeout is the API request timeout as a duration string, e.g. "30s".
	Timeout string `hcl:"timeout,optional"`

	// TLSVerify controls TLS certificate verification.
	TLSVerify *bool `hcl:"tls_verify,optional"`
}

// Load reads the configuration from filename, falling back to
// ~/.draft.hcl when filename is empty, then applies environment overrides
// and validates the result. A missing default file is not an error as long
// as the environment supplies the credentials.
func Load(filename string) (*Config, error) {
	cfg := &Config{}

	if filename == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, DefaultFileName)
			if _, err := os.Stat(candidate); err == nil {
				filename = candidate
			}
		}
	} else if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", filename)
	}

	if filename != "" {
		if err := hclsimple.DecodeFile(filename, nil, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvEmail); v != "" {
		c.Email = v
	}
	if v := os.Getenv(EnvPassword); v != "" {
		c.Password = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Email, validation.Required),
		validation.Field(&c.Password, validation.Required),
	); err != nil {
		return err
	}

	if c.Timeout != "" {
		if _, err := time.ParseDuration(c.Timeout); err != nil {
			return fmt.Errorf("invalid timeout: %w", err)
		}
	}

	return nil
}

// ClientConfig converts the CLI configuration into a draft client config.
func (c *Config) ClientConfig(logger hclog.Logger) (*draft.Config, error) {
	clientCfg := &draft.Config{
		BaseURL:   c.BaseURL,
		Email:     c.Email,
		Password:  c.Password,
		TLSVerify: c.TLSVerify,
		Logger:    logger,
	}

	if c.Timeout != "" {
		timeout, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout: %w", err)
		}
		clientCfg.Timeout = timeout
	}

	return clientCfg, nil
}
