// Package config turns command-line settings into the catalog's
// dependencies: the repository, the message set and the logger.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kerbaras/library/pkg/data"
	"github.com/kerbaras/library/pkg/locale"
)

const (
	StoreMemory = "memory"
	StoreDuckDB = "duckdb"
)

type Config struct {
	Store    string
	Lang     string
	LogLevel string
}

func Default() Config {
	return Config{
		Store:    StoreMemory,
		Lang:     "en",
		LogLevel: "warn",
	}
}

func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreDuckDB:
	default:
		return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreMemory, StoreDuckDB)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	if _, err := locale.Lookup(c.Lang); err != nil {
		return err
	}
	return nil
}

// Repository opens the configured store. Both stores live in memory only.
func (c Config) Repository() (data.Repository, error) {
	switch c.Store {
	case StoreDuckDB:
		return data.NewDuckDBRepository()
	case StoreMemory, "":
		return data.NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown store %q", c.Store)
	}
}

func (c Config) Messages() (locale.Messages, error) {
	return locale.Lookup(c.Lang)
}

// Logger writes text records to w at the configured level.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
