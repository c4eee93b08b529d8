// Package history persists completed timer sessions.
package history

import (
	"context"

	"github.com/alexanderramin/worktimer/internal/domain"
)

// Header is the column row written once at the top of a CSV history file.
var Header = []string{"Work", "Play", "End"}

// Store is an append-only log of completed sessions.
type Store interface {
	// EnsureInitialized prepares the backing storage. It is safe to call on
	// every process start.
	EnsureInitialized(ctx context.Context) error

	// Append durably adds one record.
	Append(ctx context.Context, r domain.Record) error

	// ReadAll returns every parseable record in append order together with
	// the rows that were skipped because they could not be parsed.
	ReadAll(ctx context.Context) ([]domain.Record, []*domain.CorruptRecordError, error)
}
