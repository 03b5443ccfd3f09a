// Package scan wires the mail source, categorization, finance extraction and
// the allowance engine into the operations the binaries expose.
package scan

import (
	"context"
	"fmt"

	"github.com/mikey/clearbox/internal/categorize"
	"github.com/mikey/clearbox/internal/core"
	"github.com/mikey/clearbox/internal/finance"
	"github.com/mikey/clearbox/internal/pricing"
	"go.uber.org/zap"
)

// Report is the full result of one inbox scan
type Report struct {
	Emails       []core.EmailMetadata      `json:"emails"`
	Categorized  core.CategorizedEmails    `json:"categorized"`
	Stats        core.EmailStats           `json:"stats"`
	ShameScore   core.ShameScore           `json:"shameScore"`
	Transactions []core.FinanceTransaction `json:"transactions"`
	ScanRate     core.ScanRateUsage        `json:"scanRate"`
	Roast        string                    `json:"roast,omitempty"`
}

// ErrScanLimitReached reports a denied scan together with the denial message
type ErrScanLimitReached struct {
	Message string
}

func (e *ErrScanLimitReached) Error() string {
	return e.Message
}

// ErrClearLimitReached reports a denied clear together with the denial message
type ErrClearLimitReached struct {
	Message string
	Usage   core.PricingUsage
}

func (e *ErrClearLimitReached) Error() string {
	return e.Message
}

// Service orchestrates scans and bulk clears against one mail source
type Service struct {
	source        core.MailSource
	pricing       *pricing.Service
	roaster       core.RoastGenerator
	roastEnabled  bool
	roastSeverity core.RoastSeverity
	logger        *zap.Logger
}

// NewService creates a new scan service. The roaster may be nil when roast
// generation is disabled.
func NewService(
	source core.MailSource,
	pricingService *pricing.Service,
	roaster core.RoastGenerator,
	roastEnabled bool,
	roastSeverity core.RoastSeverity,
	logger *zap.Logger,
) *Service {
	return &Service{
		source:        source,
		pricing:       pricingService,
		roaster:       roaster,
		roastEnabled:  roastEnabled,
		roastSeverity: roastSeverity,
		logger:        logger,
	}
}

// Scan runs one full inbox scan for the given identity. The scan counts
// against the daily allowance even when the mailbox turns out to be empty.
func (s *Service) Scan(ctx context.Context, identity string) (*Report, error) {
	decision, err := s.pricing.CheckAndRecordScanAllowance(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to check scan allowance: %w", err)
	}
	if !decision.Allowed {
		return nil, &ErrScanLimitReached{Message: decision.Message}
	}

	emails, err := s.source.ScanUnread(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan mailbox: %w", err)
	}

	categorized := categorize.CategorizeEmails(emails)
	stats := categorize.GenerateStats(emails, categorized)
	shame := categorize.CalculateShameScore(stats)
	transactions := finance.ExtractTransactions(emails)

	s.logger.Info("Scan complete",
		zap.String("identity", pricing.NormalizeIdentity(identity)),
		zap.Int("total", stats.Total),
		zap.Int("newsletters", stats.Newsletters),
		zap.Int("social", stats.Social),
		zap.Int("receipts", stats.Receipts),
		zap.Int("transactions", len(transactions)),
		zap.Int("shame_score", shame.Score))

	report := &Report{
		Emails:       emails,
		Categorized:  categorized,
		Stats:        stats,
		ShameScore:   shame,
		Transactions: transactions,
		ScanRate:     decision.ScanRate,
	}

	if s.roastEnabled && s.roaster != nil && stats.Total > 0 {
		roastText, err := s.roaster.GenerateRoast(ctx, stats, s.roastSeverity)
		if err != nil {
			// The scan result is still useful without the roast
			s.logger.Warn("Failed to generate roast", zap.Error(err))
		} else {
			report.Roast = roastText
		}
	}

	return report, nil
}

// Clear applies a bulk action to the given message IDs, charging the clear
// allowance for the messages that were actually processed.
func (s *Service) Clear(ctx context.Context, identity string, ids []string, action core.BulkAction) (core.BulkActionResult, core.PricingUsage, error) {
	decision, err := s.pricing.CheckClearAllowance(ctx, identity, int64(len(ids)))
	if err != nil {
		return core.BulkActionResult{}, core.PricingUsage{}, fmt.Errorf("failed to check clear allowance: %w", err)
	}
	if !decision.Allowed {
		return core.BulkActionResult{}, decision.Usage, &ErrClearLimitReached{
			Message: decision.Message,
			Usage:   decision.Usage,
		}
	}

	result, err := s.source.ApplyBulkAction(ctx, ids, action)
	if err != nil {
		return result, decision.Usage, fmt.Errorf("failed to apply bulk action: %w", err)
	}

	usage, err := s.pricing.RecordClearedEmails(ctx, identity, int64(result.Processed))
	if err != nil {
		// The action already happened, so surface the usage write failure
		// without undoing anything
		return result, decision.Usage, fmt.Errorf("failed to record cleared emails: %w", err)
	}

	s.logger.Info("Bulk clear complete",
		zap.String("identity", pricing.NormalizeIdentity(identity)),
		zap.String("action", string(action)),
		zap.Int("processed", result.Processed),
		zap.Int("failed", result.Failed))

	return result, usage, nil
}

// Usage returns the current allowance snapshot without consuming anything
func (s *Service) Usage(ctx context.Context, identity string) (core.PricingUsage, error) {
	return s.pricing.GetPricingUsage(ctx, identity)
}
