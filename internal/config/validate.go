package config

import (
	"errors"
	"fmt"
)

var knownResolutions = map[string]struct{}{
	"low":    {},
	"medium": {},
	"high":   {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateDefaults(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTools() error {
	if c.Tools.FFmpeg == "" {
		return errors.New("tools.ffmpeg must be set")
	}
	if c.Tools.FFprobe == "" {
		return errors.New("tools.ffprobe must be set")
	}
	return nil
}

func (c *Config) validateDefaults() error {
	if c.Defaults.FPS <= 0 {
		return fmt.Errorf("defaults.fps must be positive, got %d", c.Defaults.FPS)
	}
	if c.Defaults.Codec == "" {
		return errors.New("defaults.codec must be set")
	}
	if _, ok := knownResolutions[c.Defaults.Resolution]; !ok {
		return fmt.Errorf("defaults.resolution must be one of low, medium, high; got %q", c.Defaults.Resolution)
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
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error; got %q", c.Logging.Level)
	}
	return nil
}
