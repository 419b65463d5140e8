package verity

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "VERITY"

// Config holds client settings read from the environment.
//
//	VERITY_API_KEY   API key (required)
//	VERITY_BASE_URL  API base URL (default DefaultBaseURL)
//	VERITY_DEBUG     dump requests and responses to the logger
type Config struct {
	APIKey  string `envconfig:"API_KEY" validate:"required"`
	BaseURL string `envconfig:"BASE_URL" default:"https://verity.backworkai.com/api/v1" validate:"required,url"`
	Debug   bool   `envconfig:"DEBUG" default:"false"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig reads Config from VERITY_* environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the API key is present and the base URL is absolute.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NewClientFromConfig validates cfg and builds a client from it. opts are
// applied after the settings from cfg.
func NewClientFromConfig(cfg Config, opts ...ClientOption) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := []ClientOption{
		WithBaseURL(cfg.BaseURL),
		WithDebug(cfg.Debug),
	}
	return NewClient(cfg.APIKey, append(base, opts...)...)
}
