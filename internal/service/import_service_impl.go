package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/worktimer/internal/db"
	"github.com/alexanderramin/worktimer/internal/history"
	"github.com/alexanderramin/worktimer/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	logger   *slog.Logger
	observer UseCaseObserver
}

// NewImportService copies history into the SQLite store through uow.
func NewImportService(uow db.UnitOfWork, logger *slog.Logger, observers ...UseCaseObserver) ImportService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &importService{uow: uow, logger: logger, observer: useCaseObserverOrNoop(observers)}
}

// Import copies every valid record of src in one transaction: either all are
// imported or none are.
func (s *importService) Import(ctx context.Context, src history.Store) (result *ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-history",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	records, skipped, err := loadRecords(ctx, src, s.logger)
	if err != nil {
		return nil, fmt.Errorf("reading source history: %w", err)
	}
	fields["records"] = len(records)
	fields["skipped"] = skipped

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		dst := repository.NewSQLiteHistoryRepo(tx)
		for i, r := range records {
			if err := dst.Append(ctx, r); err != nil {
				return fmt.Errorf("importing record %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ImportResult{Imported: len(records), Skipped: skipped}, nil
}
