package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"FuturesReport/internal/model"
)

var validate = validator.New()

// Config holds all application configuration.
type Config struct {
	Contract   ContractConfig   `yaml:"contract"`
	Simulation SimulationConfig `yaml:"simulation"`
	Schedule   ScheduleConfig   `yaml:"schedule"`
}

// ContractConfig selects the simulated contract and window length.
type ContractConfig struct {
	Symbol string `yaml:"symbol" default:"ZC" validate:"required"`
	Days   int    `yaml:"days" default:"30" validate:"gt=0"`
}

// SimulationConfig shapes the random walk.
type SimulationConfig struct {
	StartPrice float64 `yaml:"start_price" default:"500" validate:"gt=0"`
	StartDate  string  `yaml:"start_date" default:"2025-10-01" validate:"datetime=2006-01-02"`
	Seed       int64   `yaml:"seed"` // 0 seeds from the clock
	MinVolume  int64   `yaml:"min_volume" default:"1000" validate:"gt=0"`
	MaxVolume  int64   `yaml:"max_volume" default:"5000" validate:"gtfield=MinVolume"`
	OpenJitter float64 `yaml:"open_jitter" default:"1.0" validate:"gte=0"`
	CloseSwing float64 `yaml:"close_swing" default:"2.5" validate:"gte=0"`
	WickMax    float64 `yaml:"wick_max" default:"0.5" validate:"gte=0"`
}

// ScheduleConfig enables repeated runs. An empty Cron means a single run.
type ScheduleConfig struct {
	Cron string `yaml:"cron"`
}

// Load starts from the struct defaults, then applies the YAML file and environment
// variable overrides. Values set explicitly, zeros included, are kept for Validate.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("REPORT_SYMBOL"); v != "" {
		cfg.Contract.Symbol = v
	}
	if v := os.Getenv("REPORT_DAYS"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &cfg.Contract.Days); err != nil {
			return nil, fmt.Errorf("parse REPORT_DAYS: %w", err)
		}
	}
	if v := os.Getenv("REPORT_START_PRICE"); v != "" {
		if _, err := fmt.Sscanf(v, "%f", &cfg.Simulation.StartPrice); err != nil {
			return nil, fmt.Errorf("parse REPORT_START_PRICE: %w", err)
		}
	}
	if v := os.Getenv("REPORT_START_DATE"); v != "" {
		cfg.Simulation.StartDate = v
	}
	if v := os.Getenv("REPORT_SEED"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &cfg.Simulation.Seed); err != nil {
			return nil, fmt.Errorf("parse REPORT_SEED: %w", err)
		}
	}
	if v := os.Getenv("REPORT_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidConfiguration, err)
	}
	return nil
}

// StartTime parses Simulation.StartDate as a UTC calendar day.
func (c *Config) StartTime() (time.Time, error) {
	t, err := time.Parse(model.DateLayout, c.Simulation.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start date: %v", model.ErrInvalidConfiguration, err)
	}
	return t, nil
}
