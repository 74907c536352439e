// Package config loads the service configuration from file, environment,
// and defaults. The observability section is parsed separately by the
// observability package from the same file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"kiddoo/internal/alert"
)

// Config is the full service configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Lexicon LexiconConfig `mapstructure:"lexicon"`
	Alert   AlertConfig   `mapstructure:"alert"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	EnableCORS   bool          `mapstructure:"enable_cors"`
	Debug        bool          `mapstructure:"debug"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	CacheSize    int           `mapstructure:"cache_size"`
}

// LexiconConfig locates the lexicon document.
type LexiconConfig struct {
	Path string `mapstructure:"path"`
}

// AlertConfig configures SOS dispatch.
type AlertConfig struct {
	Twilio   alert.TwilioConfig `mapstructure:"twilio"`
	Contacts []alert.Contact    `mapstructure:"contacts"`
}

// Load reads the configuration. A missing file is fine when path is
// empty; an explicitly named file that cannot be read is an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.enable_cors", true)
	v.SetDefault("server.debug", false)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.cache_size", 256)
	v.SetDefault("lexicon.path", "data/lexicon.json")
	v.SetDefault("alert.twilio.timeout", 5*time.Second)

	v.SetEnvPrefix("KIDDOO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/kiddoo")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}
