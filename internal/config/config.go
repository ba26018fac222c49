package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the service.
type Config struct {
	DatabaseURL     string        `envconfig:"DATABASE_URL" required:"true"`
	AppHost         string        `envconfig:"APP_HOST" default:":8080"`
	JWTSecret       string        `envconfig:"JWT_SECRET" required:"true"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	RateLimit       int           `envconfig:"RATE_LIMIT" default:"120"`
	RateLimitWindow time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	MigrationsDir   string        `envconfig:"MIGRATIONS_DIR" default:"migrations"`

	GoogleSheetsCredentialsJSON string `envconfig:"GOOGLE_SHEETS_CREDENTIALS_JSON"`
	ReportSpreadsheetID         string `envconfig:"REPORT_SPREADSHEET_ID"`
	ReportRange                 string `envconfig:"REPORT_RANGE" default:"Stocks!A1:I"`
}

// Load reads an optional .env file without overriding the environment, then
// parses the environment into Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be provided")
	}
	if cfg.RateLimit < 1 {
		return nil, errors.New("RATE_LIMIT must be positive")
	}
	return &cfg, nil
}

// ReportExportEnabled is true when both credentials and a target sheet are set.
func (c *Config) ReportExportEnabled() bool {
	return c.GoogleSheetsCredentialsJSON != "" && c.ReportSpreadsheetID != ""
}
