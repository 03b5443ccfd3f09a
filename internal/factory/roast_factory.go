package factory

import (
	"fmt"

	"github.com/mikey/clearbox/internal/adapters/bedrock"
	"github.com/mikey/clearbox/internal/adapters/gemini"
	"github.com/mikey/clearbox/internal/adapters/openai"
	"github.com/mikey/clearbox/internal/config"
	"github.com/mikey/clearbox/internal/core"
	"go.uber.org/zap"
)

// RoastFactory creates roast generators
type RoastFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewRoastFactory creates a new roast factory
func NewRoastFactory(cfg *config.Config, logger *zap.Logger) *RoastFactory {
	return &RoastFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateRoastGenerator creates a roast generator based on the configuration
func (f *RoastFactory) CreateRoastGenerator() (core.RoastGenerator, error) {
	roastCfg := f.cfg.GetRoast()

	switch roastCfg.Provider {
	case "bedrock":
		factory := bedrock.NewFactory(f.cfg, f.logger)
		return factory.CreateRoastGenerator()
	case "gemini":
		factory := gemini.NewFactory(f.cfg, f.logger)
		return factory.CreateRoastGenerator()
	case "openai":
		factory := openai.NewFactory(f.cfg, f.logger)
		return factory.CreateRoastGenerator()
	default:
		return nil, fmt.Errorf("unsupported roast provider: %s", roastCfg.Provider)
	}
}

// IsRoastEnabled returns whether roast generation is enabled
func (f *RoastFactory) IsRoastEnabled() bool {
	return f.cfg.GetBool("roast.enabled")
}
