package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for errors
func Validate(config *Config) error {
	var errs []string

	if config.Store == "" {
		errs = append(errs, "store: path cannot be empty")
	}
	if config.LogDir == "" {
		errs = append(errs, "log_dir: path cannot be empty")
	}
	if config.PollGranularity <= 0 {
		errs = append(errs, fmt.Sprintf("poll_granularity: must be positive, got %s", config.PollGranularity))
	}
	if config.ProbeTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("probe_timeout: must be positive, got %s", config.ProbeTimeout))
	}
	if config.ActionTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("action_timeout: must be positive, got %s", config.ActionTimeout))
	}
	if config.Defaults.Interval < 1 {
		errs = append(errs, fmt.Sprintf("defaults.interval: must be at least 1 second, got %d", config.Defaults.Interval))
	}
	if config.Defaults.Threshold < 1 {
		errs = append(errs, fmt.Sprintf("defaults.threshold: must be at least 1, got %d", config.Defaults.Threshold))
	}
	if config.API.Port < 1 || config.API.Port > 65535 {
		errs = append(errs, fmt.Sprintf("api.port: must be between 1 and 65535, got %d", config.API.Port))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}

	return nil
}
