package timesheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile loads a timesheet export into a table, choosing the reader by
// file extension: .xlsx and .xls go through excelize, everything else is
// treated as CSV.
func ReadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return ReadExcelFile(path)
	default:
		return ReadCSVFile(path)
	}
}

// ReadCSVFile opens a CSV timesheet export and parses it with ReadCSV.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return t, nil
}

// ReadCSV parses a comma-separated timesheet with a header row. Records may
// vary in width; short rows are padded to the header. A UTF-8 BOM on the
// first header cell is stripped, so files produced by the exporter read back
// cleanly.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty input: no header row")
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	return NewTable(header, records[1:]), nil
}
