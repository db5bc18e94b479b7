package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/janiskrasemann/whisker/internal/errors"
)

const (
	DefaultSchedule = "0 8 * * *"
	DefaultTimeout  = 10 * time.Second
)

type Config struct {
	Schedule    string         `yaml:"schedule"`
	LogLevel    string         `yaml:"log_level"`
	MetricsAddr string         `yaml:"metrics_addr"`
	FactAPI     APIConfig      `yaml:"fact_api"`
	ImageAPI    APIConfig      `yaml:"image_api"`
	Messages    MessagesConfig `yaml:"messages"`
	Email       EmailConfig    `yaml:"email"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key,omitempty"`
	Timeout time.Duration `yaml:"timeout"`
}

// MessagesConfig localizes the failure texts reported to diagnostics.
type MessagesConfig struct {
	NoResponse string `yaml:"no_response"`
	Generic    string `yaml:"generic"`
}

type EmailConfig struct {
	From         string `yaml:"from"`
	To           string `yaml:"to"`
	ResendAPIKey string `yaml:"resend_api_key"`
	// HeaderImage is an optional path to an image embedded inline in the mail.
	HeaderImage string `yaml:"header_image,omitempty"`
}

// Enabled reports whether enough is configured to send mail.
func (e EmailConfig) Enabled() bool {
	return e.ResendAPIKey != "" && e.From != "" && e.To != ""
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := strings.TrimSuffix(strings.TrimPrefix(string(match), "${"), "}")

		// Support ${VAR:-default} syntax
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		if val, ok := os.LookupEnv(varName); ok {
			return []byte(val)
		}
		if hasDefault {
			return []byte(defaultVal)
		}
		return match
	})
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Schedule == "" {
		c.Schedule = DefaultSchedule
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.FactAPI.Timeout == 0 {
		c.FactAPI.Timeout = DefaultTimeout
	}
	if c.ImageAPI.Timeout == 0 {
		c.ImageAPI.Timeout = DefaultTimeout
	}
}

func (c *Config) Validate() error {
	if c.FactAPI.Timeout < 0 || c.ImageAPI.Timeout < 0 {
		return apperrors.NewConfigError("timeouts must not be negative")
	}
	for name, u := range map[string]string{"fact_api": c.FactAPI.BaseURL, "image_api": c.ImageAPI.BaseURL} {
		if u != "" && !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			return apperrors.NewConfigError("%s.base_url must be an http(s) URL, got %q", name, u)
		}
	}
	e := c.Email
	if e.ResendAPIKey != "" && (e.From == "" || e.To == "") {
		return apperrors.NewConfigError("email.from and email.to are required when resend_api_key is set")
	}
	return nil
}
