package core

import (
	"context"
)

// CounterStore is the atomic key->integer abstraction backing usage tracking.
// IncrementBy must be an atomic read-modify-write with respect to concurrent
// callers on the same key and must return the post-increment value.
type CounterStore interface {
	// Get retrieves the current counter value, zero when the key is unknown
	Get(ctx context.Context, key string) (int64, error)

	// IncrementBy atomically adds n to the counter and returns the new value
	IncrementBy(ctx context.Context, key string, n int64) (int64, error)
}

// MailSource supplies unread-email metadata and applies bulk state changes
type MailSource interface {
	// ScanUnread fetches metadata for unread emails, newest pages first
	ScanUnread(ctx context.Context) ([]EmailMetadata, error)

	// ApplyBulkAction applies the action to the given message IDs
	ApplyBulkAction(ctx context.Context, ids []string, action BulkAction) (BulkActionResult, error)
}

// RoastGenerator turns scan statistics into a short roast text
type RoastGenerator interface {
	// GenerateRoast produces a plain-text roast of the given stats
	GenerateRoast(ctx context.Context, stats EmailStats, severity RoastSeverity) (string, error)
}
