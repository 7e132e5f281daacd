package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Taskboard aggregation specifics
	Backend        BackendConfig
	Aggregate      AggregateConfig
	View           ViewConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig points at the task-management REST backend.
type BackendConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	RatePerSecond  int // outbound request rate limit; 0 disables
	RateBurst      int
}

// AggregateConfig tunes the fan-out behavior of an aggregation pass.
type AggregateConfig struct {
	FanOutWidth int    // max concurrent per-member / per-task fetches
	Timezone    string // IANA zone for calendar-date bucket comparisons
}

// ViewConfig tunes the memoized filter/sort view cache.
type ViewConfig struct {
	CacheSize int
	CacheTTL  time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Backend
	cfg.Backend.BaseURL = viper.GetString("backend.base_url")
	cfg.Backend.RequestTimeout = viper.GetDuration("backend.request_timeout")
	cfg.Backend.RatePerSecond = viper.GetInt("backend.rate_per_second")
	cfg.Backend.RateBurst = viper.GetInt("backend.rate_burst")
	if backendURL := viper.GetString("backend_url"); backendURL != "" {
		cfg.Backend.BaseURL = backendURL
	}
	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend.base_url is required - set it in config.yaml or BACKEND_URL")
	}
	cfg.Backend.BaseURL = strings.TrimRight(cfg.Backend.BaseURL, "/")

	// Aggregation
	cfg.Aggregate.FanOutWidth = viper.GetInt("aggregate.fan_out_width")
	cfg.Aggregate.Timezone = viper.GetString("aggregate.timezone")
	if cfg.Aggregate.FanOutWidth <= 0 {
		return nil, fmt.Errorf("aggregate.fan_out_width must be positive")
	}

	// View cache
	cfg.View.CacheSize = viper.GetInt("view.cache_size")
	cfg.View.CacheTTL = viper.GetDuration("view.cache_ttl")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("backend.base_url", "http://localhost:8000")
	viper.SetDefault("backend.request_timeout", "10s")
	viper.SetDefault("backend.rate_per_second", 0) // disabled by default
	viper.SetDefault("backend.rate_burst", 20)

	viper.SetDefault("aggregate.fan_out_width", 8)
	viper.SetDefault("aggregate.timezone", "UTC")

	viper.SetDefault("view.cache_size", 128)
	viper.SetDefault("view.cache_ttl", "30s")

	viper.SetDefault("google_calendar.calendar_id", "primary")
}
