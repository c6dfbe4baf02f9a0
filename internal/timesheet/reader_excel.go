package timesheet

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ReadExcelFile loads a timesheet export from the first sheet of an Excel
// workbook. The first row is the header; data rows are aligned to it the
// same way the CSV reader aligns short records.
func ReadExcelFile(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in %s", filepath.Base(path))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty sheet %q: no header row", sheets[0])
	}

	return NewTable(rows[0], rows[1:]), nil
}
