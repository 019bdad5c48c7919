// Package config loads runtime settings from defaults, an optional YAML
// file, and ADHANMCP_* environment variables, in ascending precedence.
// Command-line flags override the loaded values in cmd/.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"adhanmcp/internal/domain"
)

type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger.Named("config")}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix("ADHANMCP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	defaults := domain.DefaultConfig()
	v.SetDefault("baseURL", defaults.BaseURL)
	v.SetDefault("requestTimeout", defaults.RequestTimeout)
	v.SetDefault("calendarTimeout", defaults.CalendarTimeout)
	v.SetDefault("methodsCacheTTL", defaults.MethodsCacheTTL)
	v.SetDefault("maxAttempts", defaults.MaxAttempts)
	v.SetDefault("backoffBase", defaults.BackoffBase)
	v.SetDefault("backoffMax", defaults.BackoffMax)
	v.SetDefault("transport", string(defaults.Transport))
	v.SetDefault("httpAddr", defaults.HTTPAddr)
	v.SetDefault("httpPath", defaults.HTTPPath)
	v.SetDefault("observabilityAddr", defaults.ObservabilityAddr)
}

// Load reads path when non-empty, otherwise returns the defaults merged
// with environment overrides. A missing explicit file is an error.
func (l *Loader) Load(path string) (domain.Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return domain.Config{}, fmt.Errorf("config file not found: %s", path)
			}
			return domain.Config{}, fmt.Errorf("read config: %w", err)
		}
		l.logger.Info("config file loaded", zap.String("path", path))
	}

	var cfg domain.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}
