// Package filesource reads email metadata from a JSON file. It exists so the
// engines can be run against captured mailboxes without any network access.
package filesource

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mikey/clearbox/internal/core"
	"go.uber.org/zap"
)

// Source is a read-only MailSource backed by a JSON file containing an array
// of email metadata objects
type Source struct {
	path   string
	logger *zap.Logger
}

// NewSource creates a new file source
func NewSource(path string, logger *zap.Logger) *Source {
	return &Source{
		path:   path,
		logger: logger,
	}
}

// ScanUnread loads every email from the file
func (s *Source) ScanUnread(_ context.Context) ([]core.EmailMetadata, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var emails []core.EmailMetadata
	if err := json.Unmarshal(data, &emails); err != nil {
		return nil, fmt.Errorf("failed to parse input file: %w", err)
	}

	s.logger.Info("Loaded emails from file",
		zap.String("path", s.path),
		zap.Int("email_count", len(emails)))

	return emails, nil
}

// ApplyBulkAction logs the requested action without touching the file
func (s *Source) ApplyBulkAction(_ context.Context, ids []string, action core.BulkAction) (core.BulkActionResult, error) {
	s.logger.Info("File source is read-only, bulk action skipped",
		zap.String("action", string(action)),
		zap.Int("message_count", len(ids)))
	return core.BulkActionResult{Action: action, Processed: 0, Failed: 0}, nil
}
