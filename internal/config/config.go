package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		UI
		Session
		Demo
		Tasks
	}

	HTTP struct {
		Port      int32
		Host      string
		APIPrefix string
	}
	Global struct {
		Environment              string
		ShutdownTimeoutInSeconds int
		LogLevel                 string
	}
	Database struct {
		Path string
	}
	UI struct {
		Enabled bool
	}
	Session struct {
		Secret        string // Random per process if empty
		Lifetime      time.Duration
		SecureCookies bool // Set to false for local dev without HTTPS
	}
	Demo struct {
		Enabled       bool   // Read-only API plus periodic reseed
		ResetSchedule string // Cron format: "*/15 * * * *" = every 15 minutes
	}
	Tasks struct {
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
)

// IsDevelopment reports whether raw error messages may be shown to clients.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, EnvironmentDevelopment)
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func NewConfig() *Config {
	if err := LoadEnvFile(DefaultEnvFile); err != nil {
		log.Warn().Err(err).Str("file", DefaultEnvFile).Msg("Failed to load env file")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 3000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("api_prefix", DefaultAPIPrefix)
	v.SetDefault("app_env", EnvironmentDevelopment)
	v.SetDefault("shutdown_timeout_in_seconds", 5)
	v.SetDefault("log_level", "info")
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("ui_enabled", true)

	// Session defaults
	v.SetDefault("session_secret", "")
	v.SetDefault("session_lifetime", "24h")
	v.SetDefault("secure_cookies", false)

	// Demo mode defaults
	v.SetDefault("demo_mode", false)
	v.SetDefault("demo_reset_schedule", "*/15 * * * *")

	// Task queue defaults
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "5m")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		HTTP: HTTP{
			Port:      v.GetInt32("PORT"),
			Host:      v.GetString("HOST"),
			APIPrefix: normalizePrefix(v.GetString("API_PREFIX")),
		},
		Global: Global{
			Environment:              v.GetString("APP_ENV"),
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			LogLevel:                 v.GetString("LOG_LEVEL"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		UI: UI{
			Enabled: v.GetBool("UI_ENABLED"),
		},
		Session: Session{
			Secret:        v.GetString("SESSION_SECRET"),
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
		},
		Demo: Demo{
			Enabled:       v.GetBool("DEMO_MODE"),
			ResetSchedule: v.GetString("DEMO_RESET_SCHEDULE"),
		},
		Tasks: Tasks{
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
	}
}

// normalizePrefix turns "api", "/api/" and "/api" into "/api". An empty
// prefix mounts the API at the root.
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}
