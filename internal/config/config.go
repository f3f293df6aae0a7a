package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vigil-sh/vigil/internal/constants"
)

// Config represents the top-level vigil configuration
type Config struct {
	// Store is the path to the JSON site store
	Store string `yaml:"store" env:"VIGIL_STORE"`
	// LogDir is the directory for daily event log files
	LogDir string `yaml:"log_dir" env:"VIGIL_LOG_DIR"`

	// PollGranularity is how often the scheduler scans for due sites
	PollGranularity time.Duration `yaml:"-" env:"VIGIL_POLL_GRANULARITY"`
	// ProbeTimeout bounds a single HTTP health check
	ProbeTimeout time.Duration `yaml:"-" env:"VIGIL_PROBE_TIMEOUT"`
	// ActionTimeout bounds a single recovery command invocation
	ActionTimeout time.Duration `yaml:"-" env:"VIGIL_ACTION_TIMEOUT"`

	Defaults SiteDefaults `yaml:"defaults" envPrefix:"VIGIL_DEFAULT_"`
	API      APIConfig    `yaml:"api" envPrefix:"VIGIL_API_"`
}

// SiteDefaults holds the interval and threshold applied to sites that do
// not set their own
type SiteDefaults struct {
	Interval  int `yaml:"interval" env:"INTERVAL"`
	Threshold int `yaml:"threshold" env:"THRESHOLD"`
}

// APIConfig defines the HTTP API configuration
type APIConfig struct {
	Enabled *bool  `yaml:"enabled" env:"ENABLED"` // nil = enabled
	Host    string `yaml:"host" env:"HOST"`
	Port    int    `yaml:"port" env:"PORT"`
}

// IsEnabled reports whether the API server should run
func (c APIConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// rawConfig is used for initial YAML parsing; durations are strings in
// the file and parsed with time.ParseDuration
type rawConfig struct {
	Store           string       `yaml:"store"`
	LogDir          string       `yaml:"log_dir"`
	PollGranularity string       `yaml:"poll_granularity"`
	ProbeTimeout    string       `yaml:"probe_timeout"`
	ActionTimeout   string       `yaml:"action_timeout"`
	Defaults        SiteDefaults `yaml:"defaults"`
	API             APIConfig    `yaml:"api"`
}

// Default returns a configuration populated with all defaults
func Default() *Config {
	return &Config{
		Store:           constants.DefaultStoreFile,
		LogDir:          constants.DefaultLogDir,
		PollGranularity: constants.DefaultPollGranularity,
		ProbeTimeout:    constants.DefaultProbeTimeout,
		ActionTimeout:   constants.DefaultActionTimeout,
		Defaults: SiteDefaults{
			Interval:  5,
			Threshold: 3,
		},
		API: APIConfig{
			Host: constants.DefaultAPIHost,
			Port: constants.DefaultAPIPort,
		},
	}
}

// Load reads the configuration file at path, then applies overrides from a
// .env file (when present) and VIGIL_* environment variables. A missing
// config file is not an error; vigil runs fine on defaults.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		if err := parseInto(config, data); err != nil {
			return nil, err
		}
	}

	// A .env file next to the process feeds the environment overrides
	_ = godotenv.Load()

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Parse parses configuration from YAML bytes on top of the defaults
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := parseInto(config, data); err != nil {
		return nil, err
	}
	if err := Validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

func parseInto(config *Config, data []byte) error {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing yaml: %w", err)
	}

	if raw.Store != "" {
		config.Store = raw.Store
	}
	if raw.LogDir != "" {
		config.LogDir = raw.LogDir
	}
	if raw.Defaults.Interval != 0 {
		config.Defaults.Interval = raw.Defaults.Interval
	}
	if raw.Defaults.Threshold != 0 {
		config.Defaults.Threshold = raw.Defaults.Threshold
	}
	if raw.API.Enabled != nil {
		config.API.Enabled = raw.API.Enabled
	}
	if raw.API.Host != "" {
		config.API.Host = raw.API.Host
	}
	if raw.API.Port != 0 {
		config.API.Port = raw.API.Port
	}

	for _, d := range []struct {
		name  string
		value string
		dst   *time.Duration
	}{
		{"poll_granularity", raw.PollGranularity, &config.PollGranularity},
		{"probe_timeout", raw.ProbeTimeout, &config.ProbeTimeout},
		{"action_timeout", raw.ActionTimeout, &config.ActionTimeout},
	} {
		if d.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", d.name, err)
		}
		*d.dst = parsed
	}

	return nil
}
