package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/odinmillion/dubai-mortgage-calculator/domain"
	"github.com/odinmillion/dubai-mortgage-calculator/service"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Redis struct {
		Addr string `yaml:"addr"`
	} `yaml:"redis"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		RevaluationCron string `yaml:"revaluation_cron"`
	} `yaml:"schedule"`
	Rates struct {
		// Current value of the variable index (EIBOR) and the bank margin,
		// both decimal fractions. The variable rate is their sum. Pointers
		// so an explicit zero is distinguishable from an unset field.
		Index  *float64 `yaml:"index"`
		Margin *float64 `yaml:"margin"`
	} `yaml:"rates"`
	Scenario struct {
		LoanAmount        float64 `yaml:"loan_amount"`
		FixedRate         float64 `yaml:"fixed_rate"`
		TermMonths        int     `yaml:"term_months"`
		FixedPeriodMonths int     `yaml:"fixed_period_months"`
	} `yaml:"scenario"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; malformed
// numeric overrides are logged and ignored.
func Load(path string, logger *logrus.Logger) (*Config, error) {
	cfg := &Config{}

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
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("REVALUATION_CRON"); v != "" {
		cfg.Schedule.RevaluationCron = v
	}
	if v := os.Getenv("EIBOR_INDEX"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Rates.Index = &rate
		} else {
			logger.Warnf("ignoring malformed EIBOR_INDEX %q: %v", v, err)
		}
	}
	if v := os.Getenv("RATE_MARGIN"); v != "" {
		if margin, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Rates.Margin = &margin
		} else {
			logger.Warnf("ignoring malformed RATE_MARGIN %q: %v", v, err)
		}
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Schedule.RevaluationCron == "" {
		cfg.Schedule.RevaluationCron = "0 0 9 * * *"
	}
	if cfg.Rates.Index == nil {
		cfg.Rates.Index = floatPtr(service.DefaultIndexRate)
	}
	if cfg.Rates.Margin == nil {
		cfg.Rates.Margin = floatPtr(service.DefaultRateMargin)
	}
	if cfg.Scenario.LoanAmount == 0 {
		cfg.Scenario.LoanAmount = service.DefaultLoanAmount
	}
	if cfg.Scenario.FixedRate == 0 {
		cfg.Scenario.FixedRate = service.DefaultFixedRate
	}
	if cfg.Scenario.TermMonths == 0 {
		cfg.Scenario.TermMonths = service.DefaultTermMonths
	}
	if cfg.Scenario.FixedPeriodMonths == 0 {
		cfg.Scenario.FixedPeriodMonths = service.DefaultFixedPeriodMonths
	}

	return cfg, nil
}

func floatPtr(v float64) *float64 {
	return &v
}

// VariableRate is the rate applied once the fixed period ends.
func (c *Config) VariableRate() float64 {
	return *c.Rates.Index + *c.Rates.Margin
}

// ScenarioInput builds the configured borrower scenario.
func (c *Config) ScenarioInput() domain.ScenarioInput {
	return domain.ScenarioInput{
		Amount:            c.Scenario.LoanAmount,
		FixedRate:         c.Scenario.FixedRate,
		FixedPeriodMonths: c.Scenario.FixedPeriodMonths,
		VariableRate:      c.VariableRate(),
		TermMonths:        c.Scenario.TermMonths,
	}
}

// Validate checks that the configured scenario is computable.
func (c *Config) Validate() error {
	if c.Scenario.LoanAmount <= 0 {
		return fmt.Errorf("scenario.loan_amount must be positive")
	}
	if c.Scenario.FixedRate <= 0 {
		return fmt.Errorf("scenario.fixed_rate must be positive")
	}
	if c.VariableRate() <= 0 {
		return fmt.Errorf("rates.index + rates.margin must be positive")
	}
	if c.Scenario.TermMonths <= 0 {
		return fmt.Errorf("scenario.term_months must be positive")
	}
	if c.Scenario.FixedPeriodMonths <= 0 || c.Scenario.FixedPeriodMonths >= c.Scenario.TermMonths {
		return fmt.Errorf("scenario.fixed_period_months must be shorter than the term")
	}
	return nil
}
