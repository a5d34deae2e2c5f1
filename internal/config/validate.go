package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateArchive(); err != nil {
		return err
	}
	if err := c.validateCaptions(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateArchive() error {
	for name, value := range map[string]string{
		"archive.base_url":          c.Archive.BaseURL,
		"archive.download_base_url": c.Archive.DownloadBaseURL,
	} {
		parsed, err := url.Parse(value)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, value)
		}
	}
	if c.Archive.RequestTimeout <= 0 {
		return errors.New("archive.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateCaptions() error {
	if c.Captions.WindowSeconds <= 0 {
		return errors.New("captions.window_seconds must be positive")
	}
	if c.Captions.FallbackDurationSeconds < c.Captions.WindowSeconds {
		return errors.New("captions.fallback_duration_seconds must cover at least one window")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
}
