package timesheet

import (
	"errors"
	"fmt"
	"strings"
)

// Required column names, matched case-insensitively against the header.
const (
	ColumnDuration    = "duration"
	ColumnClient      = "client"
	ColumnDescription = "description"
)

// ErrMissingColumn indicates a required column could not be located in the
// header after filtering.
var ErrMissingColumn = errors.New("required column not found")

// Table is an ordered set of rows sharing one header. Column order is
// significant and preserved across transformations; each row is aligned to
// Columns by position.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// NewTable creates a table from a header and rows, building the
// case-insensitive column lookup once. Rows shorter than the header are
// padded with empty fields so every row has the same width.
func NewTable(columns []string, rows [][]string) *Table {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}

	for i, row := range rows {
		for len(row) < len(columns) {
			row = append(row, "")
		}
		rows[i] = row[:len(columns)]
	}

	return &Table{Columns: columns, Rows: rows, index: index}
}

// ColumnIndex resolves a column by case-insensitive name and returns its
// position in the header.
func (t *Table) ColumnIndex(name string) (int, bool) {
	idx, ok := t.index[strings.ToLower(strings.TrimSpace(name))]
	return idx, ok
}

// RequireColumn resolves a column like ColumnIndex but returns a descriptive
// error naming the available columns when the lookup fails.
func (t *Table) RequireColumn(name string) (int, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q (available columns: %s)",
			ErrMissingColumn, name, strings.Join(t.Columns, ", "))
	}
	return idx, nil
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of header columns.
func (t *Table) NumColumns() int {
	return len(t.Columns)
}
