package prolist

import (
	"strings"

	"go.uber.org/zap"
)

// Checker answers whether an identity is on the pro allowlist
type Checker struct {
	identities map[string]struct{}
	logger     *zap.Logger
}

// NewChecker creates a checker from configured identities. Entries are
// trimmed and lower-cased; blanks are dropped.
func NewChecker(identities []string, logger *zap.Logger) *Checker {
	normalized := make(map[string]struct{}, len(identities))
	for _, identity := range identities {
		id := strings.ToLower(strings.TrimSpace(identity))
		if id == "" {
			continue
		}
		normalized[id] = struct{}{}
	}

	if len(normalized) > 0 && logger != nil {
		logger.Info("Initialized pro allowlist", zap.Int("identities", len(normalized)))
	}

	return &Checker{
		identities: normalized,
		logger:     logger,
	}
}

// IsPro checks a normalized identity against the allowlist
func (c *Checker) IsPro(identity string) bool {
	if len(c.identities) == 0 {
		return false
	}
	_, ok := c.identities[strings.ToLower(strings.TrimSpace(identity))]
	return ok
}
