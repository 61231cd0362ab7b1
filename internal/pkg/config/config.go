package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, security settings)
// - default: Values common across all environments (timeouts, booking policy)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Actor"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// BookingConfig carries the scheduling policy knobs. Business hours here are the
// tenant-wide defaults seeded into the hours provider; per-provider overrides are
// a store concern. The domain layer never reads any of this as global state.
type BookingConfig struct {
	SlotStepMinutes   int           `envconfig:"SLOT_STEP_MINUTES" default:"30"`
	MinimumGapMinutes int           `envconfig:"MINIMUM_GAP_MINUTES" default:"15"`
	CancelCutoff      time.Duration `envconfig:"CANCEL_CUTOFF" default:"2h"`
	OpeningTime       string        `envconfig:"BUSINESS_OPENING_TIME" default:"09:00"`
	ClosingTime       string        `envconfig:"BUSINESS_CLOSING_TIME" default:"18:00"`
	ClosedWeekdays    []int         `envconfig:"BUSINESS_CLOSED_WEEKDAYS" default:"0"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Booking: BookingConfig{
			SlotStepMinutes:   30,
			MinimumGapMinutes: 15,
			CancelCutoff:      2 * time.Hour,
			OpeningTime:       "09:00",
			ClosingTime:       "18:00",
			ClosedWeekdays:    []int{0},
		},
	}
}
