// Package csvfile persists the wide rate table as a single CSV file on disk.
// The file is the application's only store: it is read back wholesale on every
// query and replaced wholesale on every save. Writes go to a temp file in the
// same directory followed by a rename, so readers never observe a partial
// file, though the read-modify-write cycle itself is not transactional.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pbialczyk/nbp_rates_app/internal/apperrors"
	"github.com/pbialczyk/nbp_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Store implements the rate table repository on top of one CSV file.
type Store struct {
	path string
}

// NewStore creates a Store persisting the table at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// LoadTable reads the full rate table from the store's file.
// A missing or empty file returns apperrors.ErrNoData; a present but
// unparseable file returns a wrapped error.
func (s *Store) LoadTable(ctx context.Context) (*domain.RateTable, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.ErrNoData
		}
		return nil, fmt.Errorf("error opening rate table file: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading rate table file: %w", err)
	}
	if len(records) == 0 {
		return nil, apperrors.ErrNoData
	}

	header := records[0]
	if len(header) == 0 || header[0] != domain.DateColumn {
		return nil, fmt.Errorf("unexpected rate table header: %v", header)
	}
	columns := header[1:]

	rows := make([]domain.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := domain.Row{
			Date:  record[0],
			Cells: make(map[string]decimal.NullDecimal, len(columns)),
		}
		for i, column := range columns {
			raw := record[i+1]
			if raw == "" {
				continue
			}
			value, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("error parsing value %q for %s at %s: %w", raw, column, row.Date, err)
			}
			row.Cells[column] = decimal.NullDecimal{Decimal: value, Valid: true}
		}
		rows = append(rows, row)
	}

	return domain.NewRateTableFromRows(columns, rows), nil
}

// SaveMerged merges the fresh table into the persisted one and replaces the
// file with the result. When nothing has been persisted yet the fresh table
// is written as-is. On date collisions the fresh values win.
func (s *Store) SaveMerged(ctx context.Context, fresh *domain.RateTable) error {
	existing, err := s.LoadTable(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNoData) {
		return fmt.Errorf("error loading existing rate table: %w", err)
	}

	merged := existing.Merge(fresh)

	header := append([]string{domain.DateColumn}, merged.Columns()...)
	records := make([][]string, 0, merged.Len())
	for _, row := range merged.Rows() {
		record := make([]string, 0, len(header))
		record = append(record, row.Date)
		for _, column := range merged.Columns() {
			record = append(record, formatCell(row.Cells[column]))
		}
		records = append(records, record)
	}

	if err := writeFile(s.path, header, records); err != nil {
		return fmt.Errorf("error saving rate table: %w", err)
	}
	return nil
}

// WriteColumns writes the named columns of the table to path in the given
// order, values in persisted row order. Every requested column must exist.
func (s *Store) WriteColumns(ctx context.Context, table *domain.RateTable, columns []string, path string) error {
	series := make([][]decimal.NullDecimal, 0, len(columns))
	for _, column := range columns {
		values, ok := table.Column(column)
		if !ok {
			return fmt.Errorf("unknown column %q", column)
		}
		series = append(series, values)
	}

	records := make([][]string, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		record := make([]string, 0, len(columns))
		for _, values := range series {
			record = append(record, formatCell(values[i]))
		}
		records = append(records, record)
	}

	if err := writeFile(path, columns, records); err != nil {
		return fmt.Errorf("error writing selected columns: %w", err)
	}
	return nil
}

func formatCell(value decimal.NullDecimal) string {
	if !value.Valid {
		return ""
	}
	return value.Decimal.String()
}

// writeFile writes header+records to a temp file next to path, then renames
// it over path. The rename keeps concurrent readers off half-written files.
func writeFile(path string, header []string, records [][]string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(records); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
