package configs

import (
	"fmt"
	"strings"

	"session-analytics/internal/shared/validators"

	"github.com/spf13/viper"
)

const (
	defaultSessionPeriodSeconds = 1800
	defaultLogLevel             = "info"
	defaultFileStorageRootDir   = "./data"
)

// DefaultConfig is the configuration used when no config file is given. Server timeouts are filled
// so that the result passes Validate.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              8080,
			ReadHeaderTimeout: 5,
			ReadTimeout:       60,
			WriteTimeout:      120,
			IdleTimeout:       60,
		},
		Log:         LogConfig{Level: defaultLogLevel},
		FileStorage: FileStorageConfig{RootDir: defaultFileStorageRootDir},
		Session:     SessionConfig{PeriodSeconds: defaultSessionPeriodSeconds},
	}
}

// LoadConfig reads configuration from file and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetDefault("session.period_seconds", defaultSessionPeriodSeconds)
	v.SetDefault("log.level", defaultLogLevel)

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate runs struct validation and flattens the errors into one message.
func Validate(cfg *Config) error {
	validate := validators.New()
	if err := validate.Struct(cfg); err != nil {
		messages := validators.Messages(err, configFieldPath)
		if messages == nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
		return fmt.Errorf("config validation failed: %s", strings.Join(messages, ", "))
	}
	return nil
}

// configFieldPath turns "Config.Session.PeriodSeconds" into "session.periodseconds".
func configFieldPath(e validators.FieldError) string {
	parts := strings.Split(e.StructNamespace(), ".")
	if len(parts) < 2 {
		return e.Field()
	}
	return strings.ToLower(strings.Join(parts[1:], "."))
}
