package observability

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete observability configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig configures logging
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns the default observability configuration
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled:        true,
			PrometheusPort: 9090,
		},
		Tracing: TracingConfig{
			Enabled:        false,
			OTLPEndpoint:   "localhost:4318",
			SampleRate:     1.0,
			ServiceName:    "kiddoo",
			ServiceVersion: "1.0.0",
		},
	}
}

// LoadConfig loads observability configuration from a YAML file. A missing
// file yields the defaults.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		return config, nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileConfig struct {
		Observability Config `yaml:"observability"`
	}
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return config, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyConfig(&config, fileConfig.Observability)
	return config, nil
}

func applyConfig(dst *Config, src Config) {
	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
	if src.Logging.Format != "" {
		dst.Logging.Format = src.Logging.Format
	}
	dst.Metrics.Enabled = src.Metrics.Enabled
	if src.Metrics.PrometheusPort != 0 {
		dst.Metrics.PrometheusPort = src.Metrics.PrometheusPort
	}
	dst.Tracing.Enabled = src.Tracing.Enabled
	if src.Tracing.OTLPEndpoint != "" {
		dst.Tracing.OTLPEndpoint = src.Tracing.OTLPEndpoint
	}
	if src.Tracing.SampleRate != 0 {
		dst.Tracing.SampleRate = src.Tracing.SampleRate
	}
	if src.Tracing.ServiceName != "" {
		dst.Tracing.ServiceName = src.Tracing.ServiceName
	}
	if src.Tracing.ServiceVersion != "" {
		dst.Tracing.ServiceVersion = src.Tracing.ServiceVersion
	}
}
