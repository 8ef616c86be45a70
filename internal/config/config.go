package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the API process reads from the environment.
// The store DSN is the only required external dependency; everything else
// has a sensible default.
type Config struct {
	// HTTP listen port.
	Port int `envconfig:"PORT" default:"8080"`

	// Postgres DSN. Empty means the in-memory store (dev/test).
	DBDSN string `envconfig:"DB_DSN" default:""`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Insert demo rows on startup when the pets table is empty.
	SeedSampleData bool `envconfig:"SEED_SAMPLE_DATA" default:"true"`

	// Dashboard placeholder metrics. Fixed demo values, never derived from
	// daily stats.
	DashboardDailySteps       int `envconfig:"DASHBOARD_DAILY_STEPS" default:"12847"`
	DashboardStepGoalProgress int `envconfig:"DASHBOARD_STEP_GOAL_PROGRESS" default:"75"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
