package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Session     SessionConfig     `mapstructure:"session" validate:"required"`
	GeoIP       GeoIPConfig       `mapstructure:"geoip"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// SessionConfig holds sessionization configuration.
type SessionConfig struct {
	PeriodSeconds int  `mapstructure:"period_seconds" validate:"required,min=1"`
	Workers       int  `mapstructure:"workers" validate:"min=0,max=256"` // 0 builds sessions sequentially
	ExcludeBots   bool `mapstructure:"exclude_bots"`
}

// GeoIPConfig holds the optional MaxMind database used to annotate clients.
type GeoIPConfig struct {
	DatabasePath string `mapstructure:"database_path"`
}
