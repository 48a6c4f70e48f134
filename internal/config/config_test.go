package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1000, cfg.Clients.Count)
	assert.Equal(t, int64(42), cfg.Clients.Seed)
	assert.Equal(t, "synthetic_clients.json", cfg.Clients.OutFile)

	assert.Equal(t, 10000, cfg.Transactions.Total)
	assert.Equal(t, 500, cfg.Transactions.Accounts)
	assert.Equal(t, "2023-12-05", cfg.Transactions.StartDate)
	assert.Equal(t, "2025-12-05", cfg.Transactions.EndDate)
	assert.Equal(t, 50, cfg.Transactions.DailyCap)
	assert.Equal(t, int64(123456789), cfg.Transactions.Seed)
	assert.Equal(t, "synthetic_transacciones.sql", cfg.Transactions.OutFile)

	require.NoError(t, cfg.Validate())
}

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Clients.Count = 250
	cfg.Transactions.Seed = 7

	path := filepath.Join(t.TempDir(), "synthbank.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDateRange(t *testing.T) {
	start, end, err := Default().Transactions.DateRange()
	require.NoError(t, err)
	assert.Equal(t, "2023-12-05", start.Format("2006-01-02"))
	assert.Equal(t, "2025-12-05", end.Format("2006-01-02"))
}

func TestDateRangeInverted(t *testing.T) {
	tc := Default().Transactions
	tc.StartDate, tc.EndDate = tc.EndDate, tc.StartDate
	_, _, err := tc.DateRange()
	require.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero clients", func(c *Config) { c.Clients.Count = 0 }},
		{"zero total", func(c *Config) { c.Transactions.Total = 0 }},
		{"single account", func(c *Config) { c.Transactions.Accounts = 1 }},
		{"zero cap", func(c *Config) { c.Transactions.DailyCap = 0 }},
		{"bad date", func(c *Config) { c.Transactions.StartDate = "05/12/2023" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
