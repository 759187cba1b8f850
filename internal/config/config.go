package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		UI
		Security
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver   string // sqlite, postgres or memory
		Path     string // SQLite file path
		DSN      string // Postgres connection string
		LogLevel string // silent, error, warn, info
	}
	UI struct {
		TemplatesPath string // Empty means use the embedded templates
	}
	Security struct {
		CSRFSecret    string // CSRF protection is disabled when empty
		SecureCookies bool   // Set to false for local dev without HTTPS
	}
)

// loadDotEnv populates the environment from .env files when present.
// Variables already set in the environment win.
func loadDotEnv(files ...string) {
	for _, file := range files {
		if err := godotenv.Load(file); err == nil {
			log.Printf("Loaded environment from %s", file)
		}
	}
}

func NewConfig() *Config {
	loadDotEnv(".env.local", ".env")

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_driver", DriverSQLite)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("templates_path", "")
	v.SetDefault("csrf_secret", "")
	v.SetDefault("secure_cookies", false)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:   v.GetString("DATABASE_DRIVER"),
			Path:     v.GetString("DATABASE_PATH"),
			DSN:      v.GetString("DATABASE_DSN"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
		},
		Security: Security{
			CSRFSecret:    v.GetString("CSRF_SECRET"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
		},
	}
}
