package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultUserAgent is the default User-Agent string sent to the media server.
const DefaultUserAgent = "NewReleases/1.0"

type Config struct {
	ProxyConnectionString string `mapstructure:"proxy_connection_string" validate:"omitempty,url"`
	ClientTimeout         string `mapstructure:"client_timeout"` // Go duration string like "30s", "1m"
	UserAgent             string `mapstructure:"user_agent"`
	Emby                  struct {
		URL      string `mapstructure:"url" validate:"required,url"`
		APIKey   string `mapstructure:"api_key" validate:"required"`
		UserID   string `mapstructure:"user_id"`                             // optional, scopes the query to one user's libraries
		PageSize int    `mapstructure:"page_size" validate:"gte=1,lte=1000"` // items per library request
	} `mapstructure:"emby"`
	Server struct {
		Port    int    `mapstructure:"port" validate:"gte=1,lte=65535"`
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port" validate:"gte=0,lte=65535"`
	} `mapstructure:"metrics"`
	LogLevel string `mapstructure:"log_level"`
	Cache    struct {
		Type          string `mapstructure:"type" validate:"oneof=memory redis"`
		Size          int    `mapstructure:"size" validate:"gte=1"` // Maximum number of cached library snapshots
		TTL           string `mapstructure:"ttl"`                   // Go duration string like "5m"
		RedisAddress  string `mapstructure:"redis_address" validate:"required_if=Type redis"`
		RedisPassword string `mapstructure:"redis_password"`
		RedisDB       int    `mapstructure:"redis_db" validate:"gte=0"`
	} `mapstructure:"cache"`
	Window struct {
		PremiereMonths int `mapstructure:"premiere_months" validate:"gte=1"`
		CreatedMonths  int `mapstructure:"created_months" validate:"gte=1"`
	} `mapstructure:"window"`
	Channel struct {
		Name        string `mapstructure:"name" validate:"required"`
		Description string `mapstructure:"description"`
		DataVersion string `mapstructure:"data_version"`
		MaxPageSize int    `mapstructure:"max_page_size" validate:"gte=1"`
	} `mapstructure:"channel"`
	Sentry struct {
		DSN         string `mapstructure:"dsn" validate:"omitempty,url"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}).With().Timestamp().Logger()

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	level := zerolog.InfoLevel
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)
	logger = logger.Level(level)

	logger.Debug().Str("level", level.String()).Msg("Logging configured")
	globalConfig = config
}

func setDefaults(v *viper.Viper) {
	// Keys without a default are invisible to AutomaticEnv during Unmarshal
	v.SetDefault("proxy_connection_string", "")
	v.SetDefault("user_agent", "")
	v.SetDefault("client_timeout", "30s")
	v.SetDefault("emby.url", "")
	v.SetDefault("emby.api_key", "")
	v.SetDefault("emby.user_id", "")
	v.SetDefault("emby.page_size", 100)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.address", "localhost")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("log_level", "info")
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.size", 16)
	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("cache.redis_address", "")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("window.premiere_months", 8)
	v.SetDefault("window.created_months", 2)
	v.SetDefault("channel.name", "New Releases")
	v.SetDefault("channel.description", "Spotlight new releases from the media library.")
	v.SetDefault("channel.data_version", "668")
	v.SetDefault("channel.max_page_size", 9)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "production")
}

// LoadConfig reads config.yaml from the working directory (or ./config) and
// APP_* environment variables on top of the defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.BindEnv("log_level", "LOG_LEVEL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}

	return &config, nil
}

var validate = func() *validator.Validate {
	v := validator.New()
	// Report mapstructure keys so messages match the config file
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}()

// Validate checks cfg for values the server cannot start with.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}

	for key, d := range map[string]string{"client_timeout": cfg.ClientTimeout, "cache.ttl": cfg.Cache.TTL} {
		if d == "" {
			continue
		}
		if _, err := time.ParseDuration(d); err != nil {
			return fmt.Errorf("invalid configuration: %s: %w", key, err)
		}
	}
	return nil
}

// ParseDuration parses value, falling back to def when it is empty or malformed.
func ParseDuration(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn().Err(err).Str("duration", value).Dur("default", def).Msg("Invalid duration, using default")
		return def
	}
	return d
}

func GetConfig() *Config {
	return globalConfig
}

func GetUserAgent() string {
	if globalConfig != nil && globalConfig.UserAgent != "" {
		return globalConfig.UserAgent
	}

	return DefaultUserAgent
}

func GetLogger() zerolog.Logger {
	return logger
}
