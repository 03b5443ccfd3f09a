package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mikey/clearbox/internal/config"
	"github.com/mikey/clearbox/internal/core"
	"github.com/mikey/clearbox/internal/di"
	"github.com/mikey/clearbox/internal/scan"
	"go.uber.org/zap"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	cfg *config.Config,
	mailSource core.MailSource,
	scanService *scan.Service,
	store core.CounterStore,
) error {
	defer logger.Sync()

	// The sink source doubles as the SMTP server, start it if it can start
	if starter, ok := mailSource.(interface{ Start() error }); ok {
		if err := starter.Start(); err != nil {
			logger.Fatal("Failed to start mail source", zap.Error(err))
			return err
		}
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Shutting down...")

	// Report on whatever the sink collected before going down
	identity := cfg.GetString("sink.report_identity")
	if identity != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		report, err := scanService.Scan(ctx, identity)
		if err != nil {
			logger.Error("Failed to run shutdown scan", zap.Error(err))
		} else {
			logger.Info("Final mailbox report",
				zap.Int("total", report.Stats.Total),
				zap.Int("newsletters", report.Stats.Newsletters),
				zap.Int("social", report.Stats.Social),
				zap.Int("receipts", report.Stats.Receipts),
				zap.Int("shame_score", report.ShameScore.Score),
				zap.String("shame_label", report.ShameScore.Label),
				zap.Int("transactions", len(report.Transactions)))
		}
	}

	// Stop the SMTP server
	if stopper, ok := mailSource.(interface{ Stop() error }); ok {
		if err := stopper.Stop(); err != nil {
			logger.Error("Failed to stop mail source", zap.Error(err))
		}
	}

	// Stop the counter store if needed
	if stopper, ok := store.(interface{ Stop() }); ok {
		stopper.Stop()
	}

	logger.Info("Shutdown complete")
	return nil
}
