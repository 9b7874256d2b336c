// Package dataset loads tabular test data and resolves records by test case id.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrRecordNotFound is returned when no row carries the requested id
var ErrRecordNotFound = errors.New("dataset: record not found")

// Row is one data row addressed by header name
type Row struct {
	Line   int
	values map[string]string
}

// Value returns the named column. A column absent from the header is an error,
// an empty cell is not.
func (r Row) Value(column string) (string, error) {
	v, ok := r.values[column]
	if !ok {
		return "", fmt.Errorf("line %d: missing column %q", r.Line, column)
	}
	return v, nil
}

// RowMapper turns a row into a record
type RowMapper[T any] func(Row) (T, error)

// Dataset is an ordered, read-only set of records keyed by id
type Dataset[T any] struct {
	source string
	ids    []string
	byID   map[string]T
}

// Load reads a CSV file whose first line is the header
func Load[T any](path string, key func(T) string, mapRow RowMapper[T]) (*Dataset[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, path, key, mapRow)
}

// Parse reads CSV from r. source names the input in error messages.
func Parse[T any](r io.Reader, source string, key func(T) string, mapRow RowMapper[T]) (*Dataset[T], error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset: %s: missing header", source)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: read header: %w", source, err)
	}
	header = normalizeHeader(header)

	seen := make(map[string]bool, len(header))
	for _, h := range header {
		if h == "" {
			return nil, fmt.Errorf("dataset: %s: empty column name in header", source)
		}
		if seen[h] {
			return nil, fmt.Errorf("dataset: %s: duplicate column %q", source, h)
		}
		seen[h] = true
	}

	ds := &Dataset[T]{
		source: source,
		byID:   make(map[string]T),
	}

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", source, err)
		}

		line, _ := reader.FieldPos(0)
		row := Row{Line: line, values: make(map[string]string, len(header))}
		for i, h := range header {
			row.values[h] = fields[i]
		}

		record, err := mapRow(row)
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", source, err)
		}

		id := key(record)
		if _, dup := ds.byID[id]; dup {
			return nil, fmt.Errorf("dataset: %s: line %d: duplicate id %q", source, line, id)
		}
		ds.ids = append(ds.ids, id)
		ds.byID[id] = record
	}

	return ds, nil
}

// Lookup returns the record for id
func (d *Dataset[T]) Lookup(id string) (T, error) {
	record, ok := d.byID[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q in %s", ErrRecordNotFound, id, d.source)
	}
	return record, nil
}

// IDs returns the record ids in file order
func (d *Dataset[T]) IDs() []string {
	return append([]string(nil), d.ids...)
}

// Records returns all records in file order
func (d *Dataset[T]) Records() []T {
	records := make([]T, 0, len(d.ids))
	for _, id := range d.ids {
		records = append(records, d.byID[id])
	}
	return records
}

// Len returns the number of records
func (d *Dataset[T]) Len() int {
	return len(d.ids)
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return out
}
