package history

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/worktimer/internal/domain"
)

// CSVStore keeps history in a comma-separated text file with a
// Work,Play,End header followed by one row per session.
type CSVStore struct {
	path string
}

// NewCSVStore creates a store backed by the file at path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Path returns the backing file location.
func (s *CSVStore) Path() string { return s.path }

func (s *CSVStore) EnsureInitialized(_ context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: creating history directory: %w", domain.ErrPersistence, err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("%w: creating history file: %w", domain.ErrPersistence, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("%w: writing history header: %w", domain.ErrPersistence, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: writing history header: %w", domain.ErrPersistence, err)
	}
	return nil
}

func (s *CSVStore) Append(ctx context.Context, r domain.Record) error {
	if err := s.EnsureInitialized(ctx); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: opening history file: %w", domain.ErrPersistence, err)
	}

	w := csv.NewWriter(f)
	werr := w.Write([]string{
		strconv.FormatUint(r.Work, 10),
		strconv.FormatUint(r.Pause, 10),
		strconv.FormatUint(r.End, 10),
	})
	if werr == nil {
		w.Flush()
		werr = w.Error()
	}
	if werr == nil {
		werr = f.Sync()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("%w: writing history record: %w", domain.ErrPersistence, werr)
	}
	return nil
}

func (s *CSVStore) ReadAll(_ context.Context) ([]domain.Record, []*domain.CorruptRecordError, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("%w: opening history file: %w", domain.ErrPersistence, err)
	}
	defer f.Close()
	return parseRecords(f)
}

// parseRecords scans the history line by line so a malformed row, including
// one with an unbalanced quote, only ever affects itself.
func parseRecords(src io.Reader) ([]domain.Record, []*domain.CorruptRecordError, error) {
	var (
		records []domain.Record
		corrupt []*domain.CorruptRecordError
		lineNo  int
		first   = true
	)

	sc := bufio.NewScanner(src)
	for sc.Scan() {
		lineNo++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields, err := splitRow(text)
		if err == nil && first && isHeader(fields) {
			first = false
			continue
		}
		first = false

		var rec domain.Record
		if err == nil {
			rec, err = parseRow(fields)
		}
		if err != nil {
			corrupt = append(corrupt, &domain.CorruptRecordError{Line: lineNo, Text: text, Err: err})
			continue
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return records, corrupt, fmt.Errorf("%w: reading history file: %w", domain.ErrPersistence, err)
	}
	return records, corrupt, nil
}

func splitRow(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r.Read()
}

func isHeader(fields []string) bool {
	if len(fields) != len(Header) {
		return false
	}
	for i, h := range Header {
		if !strings.EqualFold(strings.TrimSpace(fields[i]), h) {
			return false
		}
	}
	return true
}

func parseRow(fields []string) (domain.Record, error) {
	if len(fields) != len(Header) {
		return domain.Record{}, fmt.Errorf("expected %d fields, got %d", len(Header), len(fields))
	}
	var vals [3]uint64
	for i, raw := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return domain.Record{}, fmt.Errorf("column %s: %w", Header[i], err)
		}
		if v > math.MaxInt64 {
			return domain.Record{}, fmt.Errorf("column %s: value %d out of range", Header[i], v)
		}
		vals[i] = v
	}
	return domain.Record{Work: vals[0], Pause: vals[1], End: vals[2]}, nil
}
