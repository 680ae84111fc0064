package config

import (
	"bytes"
	"testing"

	"github.com/kerbaras/library/pkg/data"
	"github.com/kerbaras/library/pkg/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"duckdb store", func(c *Config) { c.Store = StoreDuckDB }, false},
		{"french", func(c *Config) { c.Lang = "fr" }, false},
		{"debug logging", func(c *Config) { c.LogLevel = "debug" }, false},
		{"unknown store", func(c *Config) { c.Store = "postgres" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"bad language", func(c *Config) { c.Lang = "not a language!" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository(t *testing.T) {
	cfg := Default()
	repo, err := cfg.Repository()
	require.NoError(t, err)
	assert.IsType(t, &data.MemoryRepository{}, repo)

	cfg.Store = StoreDuckDB
	repo, err = cfg.Repository()
	require.NoError(t, err)
	defer repo.Close()
	assert.IsType(t, &data.DuckDBRepository{}, repo)
}

func TestMessages(t *testing.T) {
	cfg := Default()
	cfg.Lang = "fr-FR"

	msgs, err := cfg.Messages()
	require.NoError(t, err)
	assert.Equal(t, locale.French.Welcome, msgs.Welcome)
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()

	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
