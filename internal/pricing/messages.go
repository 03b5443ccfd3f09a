package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mikey/clearbox/internal/core"
)

var countPrinter = message.NewPrinter(language.English)

// formatCount renders a quota number with thousands grouping for messages
func formatCount(value int64) string {
	return countPrinter.Sprintf("%d", value)
}

func (s *Service) limitReachedMessage(usage core.PricingUsage) string {
	if usage.Plan == core.PlanPro || usage.ClearLimit == nil {
		return "Action blocked by pricing policy."
	}

	msg := "You reached the free limit of " + formatCount(*usage.ClearLimit) + " cleared emails."
	if s.upgradeURL != "" {
		msg += " Upgrade to continue clearing emails."
	}
	return msg
}

func (s *Service) remainingMessage(requestedCount, remaining int64) string {
	msg := "This action needs " + formatCount(requestedCount) +
		" clears, but you only have " + formatCount(remaining) + " free clears left."
	if s.upgradeURL != "" {
		msg += " Select fewer emails or upgrade to continue."
	} else {
		msg += " Select fewer emails to continue."
	}
	return msg
}

func (s *Service) scanLimitMessage(scanRate core.ScanRateUsage) string {
	return "You reached the scan limit of " + formatCount(scanRate.ScanLimitPerDay) +
		" scans today. Try again after " + scanRate.ResetAt + "."
}
