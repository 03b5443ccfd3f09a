package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/clearbox/internal/config"
	"github.com/mikey/clearbox/internal/core"
	"github.com/mikey/clearbox/internal/factory"
	"github.com/mikey/clearbox/internal/logging"
	"github.com/mikey/clearbox/internal/pricing"
	"github.com/mikey/clearbox/internal/pricing/prolist"
	"github.com/mikey/clearbox/internal/scan"
	"github.com/mikey/clearbox/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCounterFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewSourceFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewRoastFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register counter store
	if err := container.Provide(func(f *factory.CounterFactory) (core.CounterStore, error) {
		return f.CreateCounterStore()
	}); err != nil {
		return nil, err
	}

	// Register mail source
	if err := container.Provide(func(f *factory.SourceFactory) (core.MailSource, error) {
		return f.CreateMailSource()
	}); err != nil {
		return nil, err
	}

	// Register pro identity checker
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) *prolist.Checker {
		return prolist.NewChecker(cfg.GetPricing().ProIdentities, logger)
	}); err != nil {
		return nil, err
	}

	// Register allowance engine
	if err := container.Provide(func(
		store core.CounterStore,
		pro *prolist.Checker,
		cfg *config.Config,
		logger *zap.Logger,
	) *pricing.Service {
		pricingCfg := cfg.GetPricing()
		return pricing.NewService(
			store,
			pro,
			logger,
			pricingCfg.FreeClearLimit,
			pricingCfg.ScanLimitPerDay,
			pricingCfg.UpgradeURL,
		)
	}); err != nil {
		return nil, err
	}

	// Register scan service. The roast generator is only constructed when
	// roasting is enabled so the daemon can run without any LLM credentials.
	if err := container.Provide(func(
		source core.MailSource,
		pricingService *pricing.Service,
		roastFactory *factory.RoastFactory,
		cfg *config.Config,
		logger *zap.Logger,
	) (*scan.Service, error) {
		roastCfg := cfg.GetRoast()

		var roaster core.RoastGenerator
		if roastCfg.Enabled {
			generator, err := roastFactory.CreateRoastGenerator()
			if err != nil {
				return nil, err
			}
			roaster = generator
		}

		return scan.NewService(
			source,
			pricingService,
			roaster,
			roastCfg.Enabled,
			core.RoastSeverity(roastCfg.Severity),
			logger,
		), nil
	}); err != nil {
		return nil, err
	}

	return container, nil
}
