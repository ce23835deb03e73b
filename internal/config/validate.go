package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateNaming(); err != nil {
		return err
	}
	if err := c.validateManifest(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateNaming() error {
	if c.Naming.MaxBaseLen < 1 {
		return fmt.Errorf("naming.max_base_len must be at least 1, got %d", c.Naming.MaxBaseLen)
	}
	if ext := c.Naming.Extension; ext != "" && !strings.HasPrefix(ext, ".") {
		return fmt.Errorf("naming.extension must begin with a dot, got %q", ext)
	}
	return nil
}

func (c *Config) validateManifest() error {
	if c.Manifest.Enabled && c.Manifest.Path == "" {
		return errors.New("manifest.path must be set when the manifest is enabled")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
