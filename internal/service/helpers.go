package service

import (
	"context"
	"log/slog"

	"github.com/alexanderramin/worktimer/internal/domain"
	"github.com/alexanderramin/worktimer/internal/history"
)

// loadRecords reads the full history and reports skipped rows as warnings.
func loadRecords(ctx context.Context, store history.Store, logger *slog.Logger) ([]domain.Record, int, error) {
	records, corrupt, err := store.ReadAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	for _, c := range corrupt {
		logger.WarnContext(ctx, "skipping corrupt history record",
			"line", c.Line,
			"text", c.Text,
			"error", c.Err,
		)
	}
	return records, len(corrupt), nil
}
