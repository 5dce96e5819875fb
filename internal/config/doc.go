// Package config loads, validates, and defaults the TOML configuration file
// that controls vidsqueeze's external tool paths, per-run defaults, and
// logging behaviour.
package config
