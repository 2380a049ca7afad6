package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEndpoint(); err != nil {
		return err
	}
	if err := c.validateStages(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateEndpoint() error {
	if c.Endpoint.URL == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/resumetailor/config.toml"
		}
		return fmt.Errorf("endpoint.url is required. Set %s env var or edit %s (create with 'resumetailor config init')", EndpointEnvVar, defaultPath)
	}
	parsed, err := url.Parse(c.Endpoint.URL)
	if err != nil {
		return fmt.Errorf("endpoint.url is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("endpoint.url must use http or https, got %q", c.Endpoint.URL)
	}
	if c.Endpoint.RequestTimeout <= 0 {
		return errors.New("endpoint.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateStages() error {
	if c.Stages.AnalyzingDelay <= 0 || c.Stages.TailoringDelay <= 0 || c.Stages.GeneratingDelay <= 0 {
		return errors.New("stages delays must be positive")
	}
	if c.Stages.AnalyzingDelay >= c.Stages.TailoringDelay || c.Stages.TailoringDelay >= c.Stages.GeneratingDelay {
		return errors.New("stages delays must be strictly increasing: analyzing < tailoring < generating")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}
