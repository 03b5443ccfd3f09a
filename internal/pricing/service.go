// Package pricing enforces the freemium usage quotas: a lifetime clear
// allowance for free accounts and a per-UTC-day scan allowance for everyone.
// Denials are results the caller renders, not errors.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mikey/clearbox/internal/core"
	"github.com/mikey/clearbox/internal/pricing/prolist"
)

const (
	clearedKeyPrefix = "clearbox:pricing:cleared:"
	scanKeyPrefix    = "clearbox:rate:scan:"
)

// ErrMissingIdentity is returned when the caller supplies an empty or
// unnormalizable identity. Callers surface it as an authentication problem.
var ErrMissingIdentity = errors.New("missing user identity")

// NormalizeIdentity trims and lower-cases an identity. An empty result means
// the identity is unusable.
func NormalizeIdentity(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}

// Service is the usage/allowance engine
type Service struct {
	store           core.CounterStore
	pro             *prolist.Checker
	logger          *zap.Logger
	freeClearLimit  int64
	scanLimitPerDay int64
	upgradeURL      string
	now             func() time.Time
}

// NewService creates the allowance engine on top of a counter store
func NewService(
	store core.CounterStore,
	pro *prolist.Checker,
	logger *zap.Logger,
	freeClearLimit int64,
	scanLimitPerDay int64,
	upgradeURL string,
) *Service {
	return &Service{
		store:           store,
		pro:             pro,
		logger:          logger,
		freeClearLimit:  freeClearLimit,
		scanLimitPerDay: scanLimitPerDay,
		upgradeURL:      upgradeURL,
		now:             time.Now,
	}
}

func clearedKey(identity string) string {
	return clearedKeyPrefix + identity
}

func scanKey(identity, dateKey string) string {
	return scanKeyPrefix + identity + ":" + dateKey
}

func (s *Service) buildUsageSnapshot(identity string, clearedEmails int64) core.PricingUsage {
	if s.pro.IsPro(identity) {
		return core.PricingUsage{
			Plan:          core.PlanPro,
			ClearedEmails: clearedEmails,
			UpgradeURL:    s.upgradeURL,
		}
	}

	limit := s.freeClearLimit
	remaining := limit - clearedEmails
	if remaining < 0 {
		remaining = 0
	}

	return core.PricingUsage{
		Plan:            core.PlanFree,
		ClearedEmails:   clearedEmails,
		ClearLimit:      &limit,
		RemainingClears: &remaining,
		LimitReached:    remaining <= 0,
		UpgradeURL:      s.upgradeURL,
	}
}

// GetPricingUsage reads the clear-quota snapshot for an identity
func (s *Service) GetPricingUsage(ctx context.Context, identity string) (core.PricingUsage, error) {
	id := NormalizeIdentity(identity)
	if id == "" {
		return core.PricingUsage{}, ErrMissingIdentity
	}

	cleared, err := s.store.Get(ctx, clearedKey(id))
	if err != nil {
		return core.PricingUsage{}, fmt.Errorf("failed to read cleared counter: %w", err)
	}
	return s.buildUsageSnapshot(id, cleared), nil
}

// CheckClearAllowance decides whether an identity may clear requestedCount
// emails. Checking never consumes quota; callers commit the actual processed
// count through RecordClearedEmails after the guarded action succeeds.
func (s *Service) CheckClearAllowance(ctx context.Context, identity string, requestedCount int64) (core.ClearDecision, error) {
	usage, err := s.GetPricingUsage(ctx, identity)
	if err != nil {
		return core.ClearDecision{}, err
	}

	if usage.Plan == core.PlanPro {
		return core.ClearDecision{Allowed: true, Usage: usage}, nil
	}

	remaining := int64(0)
	if usage.RemainingClears != nil {
		remaining = *usage.RemainingClears
	}

	if remaining <= 0 {
		return core.ClearDecision{
			Allowed: false,
			Message: s.limitReachedMessage(usage),
			Usage:   usage,
		}, nil
	}

	if requestedCount > remaining {
		return core.ClearDecision{
			Allowed: false,
			Message: s.remainingMessage(requestedCount, remaining),
			Usage:   usage,
		}, nil
	}

	return core.ClearDecision{Allowed: true, Usage: usage}, nil
}

// RecordClearedEmails commits quota consumption after a guarded action
// succeeded, using the count that was actually processed. Calling it with a
// non-positive count is a read, not a write, so partial downstream failures
// never over-charge quota.
func (s *Service) RecordClearedEmails(ctx context.Context, identity string, processedCount int64) (core.PricingUsage, error) {
	id := NormalizeIdentity(identity)
	if id == "" {
		return core.PricingUsage{}, ErrMissingIdentity
	}

	if processedCount <= 0 {
		return s.GetPricingUsage(ctx, id)
	}

	cleared, err := s.store.IncrementBy(ctx, clearedKey(id), processedCount)
	if err != nil {
		return core.PricingUsage{}, fmt.Errorf("failed to record cleared emails: %w", err)
	}
	return s.buildUsageSnapshot(id, cleared), nil
}

// CheckAndRecordScanAllowance charges one scan against today's budget and
// then compares against the daily limit. The increment is never rolled back
// on denial: concurrent attempts at the boundary all observe a consistent
// counter and excess attempts are denied without a race window, at the cost
// of the denied attempt itself counting.
func (s *Service) CheckAndRecordScanAllowance(ctx context.Context, identity string) (core.ScanDecision, error) {
	id := NormalizeIdentity(identity)
	if id == "" {
		return core.ScanDecision{}, ErrMissingIdentity
	}

	now := s.now().UTC()
	dateKey := core.DateKey(now)
	resetAt := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)

	used, err := s.store.IncrementBy(ctx, scanKey(id, dateKey), 1)
	if err != nil {
		return core.ScanDecision{}, fmt.Errorf("failed to record scan attempt: %w", err)
	}

	remaining := s.scanLimitPerDay - used
	if remaining < 0 {
		remaining = 0
	}
	scanRate := core.ScanRateUsage{
		ScansUsedToday:      used,
		ScansRemainingToday: remaining,
		ScanLimitPerDay:     s.scanLimitPerDay,
		LimitReached:        used >= s.scanLimitPerDay,
		ResetAt:             resetAt,
	}

	if used > s.scanLimitPerDay {
		s.logger.Debug("Scan denied over daily limit",
			zap.String("identity", id),
			zap.Int64("used", used),
			zap.Int64("limit", s.scanLimitPerDay))
		return core.ScanDecision{
			Allowed:  false,
			Message:  s.scanLimitMessage(scanRate),
			ScanRate: scanRate,
		}, nil
	}

	return core.ScanDecision{Allowed: true, ScanRate: scanRate}, nil
}
