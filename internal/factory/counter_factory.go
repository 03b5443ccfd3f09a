package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikey/clearbox/internal/adapters/counter"
	"github.com/mikey/clearbox/internal/config"
	"github.com/mikey/clearbox/internal/core"
	"go.uber.org/zap"
)

// CounterFactory creates counter stores based on configuration
type CounterFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewCounterFactory creates a new counter factory
func NewCounterFactory(cfg *config.Config, logger *zap.Logger) *CounterFactory {
	return &CounterFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateCounterStore creates a counter store based on the configuration.
// External stores are wrapped in a failover so a store outage degrades to
// local in-memory counting instead of blocking scans.
func (f *CounterFactory) CreateCounterStore() (core.CounterStore, error) {
	counterCfg := f.cfg.GetCounter()

	switch counterCfg.Type {
	case "", "memory":
		return counter.NewMemoryStore(), nil
	case "sqlite":
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(counterCfg.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		store, err := counter.NewSQLiteStore(counterCfg.SQLitePath, f.logger)
		if err != nil {
			return nil, err
		}
		return counter.NewFailover(store, f.logger), nil
	case "mysql":
		store, err := counter.NewMySQLStore(counterCfg.MySQLDSN, f.logger)
		if err != nil {
			return nil, err
		}
		return counter.NewFailover(store, f.logger), nil
	default:
		f.logger.Warn("Unknown counter store type, falling back to memory",
			zap.String("type", counterCfg.Type))
		return counter.NewMemoryStore(), nil
	}
}
