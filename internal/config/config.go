package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/gitseed/gitseed/internal/schedule"
)

// Config holds the default weight settings. Every value can be overridden by
// a config file, a GITSEED_* environment variable, or a command-line flag.
type Config struct {
	MinCommits           int     `mapstructure:"min_commits"`
	MaxCommits           int     `mapstructure:"max_commits"`
	WeekendWeight        float64 `mapstructure:"weekend_weight"`
	WeekdayWeight        float64 `mapstructure:"weekday_weight"`
	HolidayWeight        float64 `mapstructure:"holiday_weight"`
	VacationWeeksPerYear int     `mapstructure:"vacation_weeks_per_year"`
}

// Default returns the default configuration: light weekday activity with a
// weekend bump, quiet holidays and two vacation weeks a year.
func Default() *Config {
	return &Config{
		MinCommits:           1,
		MaxCommits:           3,
		WeekendWeight:        1.5,
		WeekdayWeight:        0.2,
		HolidayWeight:        0.3,
		VacationWeeksPerYear: 2,
	}
}

// Load loads configuration from file and environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	cfg := Default()
	v.SetDefault("min_commits", cfg.MinCommits)
	v.SetDefault("max_commits", cfg.MaxCommits)
	v.SetDefault("weekend_weight", cfg.WeekendWeight)
	v.SetDefault("weekday_weight", cfg.WeekdayWeight)
	v.SetDefault("holiday_weight", cfg.HolidayWeight)
	v.SetDefault("vacation_weeks_per_year", cfg.VacationWeeksPerYear)

	v.SetEnvPrefix("GITSEED")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".gitseed")
		v.AddConfigPath(".")
		homeDir, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(homeDir, ".gitseed"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Weights maps the configuration onto the scheduler's weight set.
func (c *Config) Weights() schedule.Weights {
	return schedule.Weights{
		MinCommits:           c.MinCommits,
		MaxCommits:           c.MaxCommits,
		WeekendWeight:        c.WeekendWeight,
		WeekdayWeight:        c.WeekdayWeight,
		HolidayWeight:        c.HolidayWeight,
		VacationWeeksPerYear: c.VacationWeeksPerYear,
	}
}

// Validate applies the boundary checks before any scheduling work starts.
func (c *Config) Validate() error {
	return c.Weights().Validate()
}
