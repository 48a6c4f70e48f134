package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const dateFormat = "2006-01-02"

// Config is the top-level generation profile (synthbank.yaml).
type Config struct {
	Clients      ClientsConfig      `yaml:"clients"`
	Transactions TransactionsConfig `yaml:"transactions"`
}

// ClientsConfig holds the client generator parameters.
type ClientsConfig struct {
	Count   int    `yaml:"count"`
	Seed    int64  `yaml:"seed"`
	OutFile string `yaml:"out_file"`
}

// TransactionsConfig holds the transaction generator parameters.
type TransactionsConfig struct {
	Total     int    `yaml:"total"`
	Accounts  int    `yaml:"accounts"`
	StartDate string `yaml:"start_date"` // YYYY-MM-DD
	EndDate   string `yaml:"end_date"`   // YYYY-MM-DD
	DailyCap  int    `yaml:"daily_cap"`
	Seed      int64  `yaml:"seed"`
	OutFile   string `yaml:"out_file"`
}

// Load reads a generation profile from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the standard generation profile.
func Default() *Config {
	return &Config{
		Clients: ClientsConfig{
			Count:   1000,
			Seed:    42,
			OutFile: "synthetic_clients.json",
		},
		Transactions: TransactionsConfig{
			Total:     10000,
			Accounts:  500,
			StartDate: "2023-12-05",
			EndDate:   "2025-12-05",
			DailyCap:  50,
			Seed:      123456789,
			OutFile:   "synthetic_transacciones.sql",
		},
	}
}

// DateRange parses and validates the transaction date range.
func (c TransactionsConfig) DateRange() (start, end time.Time, err error) {
	start, err = time.Parse(dateFormat, c.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing start_date %q: %w", c.StartDate, err)
	}
	end, err = time.Parse(dateFormat, c.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing end_date %q: %w", c.EndDate, err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date %s before start_date %s", c.EndDate, c.StartDate)
	}
	return start, end, nil
}

// Validate checks a full profile for values the generators cannot honor.
func (c *Config) Validate() error {
	if err := c.Clients.Validate(); err != nil {
		return err
	}
	return c.Transactions.Validate()
}

// Validate checks the client generator parameters.
func (c ClientsConfig) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("clients.count must be positive, got %d", c.Count)
	}
	return nil
}

// Validate checks the transaction generator parameters.
func (c TransactionsConfig) Validate() error {
	if c.Total <= 0 {
		return fmt.Errorf("transactions.total must be positive, got %d", c.Total)
	}
	if c.Accounts <= 1 {
		return fmt.Errorf("transactions.accounts must exceed 1 for transfers, got %d", c.Accounts)
	}
	if c.DailyCap <= 0 {
		return fmt.Errorf("transactions.daily_cap must be positive, got %d", c.DailyCap)
	}
	if _, _, err := c.DateRange(); err != nil {
		return err
	}
	return nil
}
