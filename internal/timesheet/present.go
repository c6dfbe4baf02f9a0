package timesheet

import (
	"math"
	"sort"
	"strconv"
)

// HoursColumn is the name of the derived decimal-hours column inserted by
// Present.
const HoursColumn = "Hours"

// Present inserts the Hours column immediately after the description column
// and sorts rows ascending by client value (code-point order). The sort is
// stable, so rows with equal clients keep the relative order produced by
// Aggregate; slice position in the result is the final dense row numbering.
// Hours values are rounded half-up to precision decimal places and rendered
// with fixed decimals. The returned slice is the input hours reordered to
// match the sorted rows.
func Present(t *Table, hours []float64, precision int) (*Table, []float64, error) {
	descIdx, err := t.RequireColumn(ColumnDescription)
	if err != nil {
		return nil, nil, err
	}
	clientIdx, err := t.RequireColumn(ColumnClient)
	if err != nil {
		return nil, nil, err
	}

	order := make([]int, len(t.Rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return t.Rows[order[i]][clientIdx] < t.Rows[order[j]][clientIdx]
	})

	columns := make([]string, 0, len(t.Columns)+1)
	columns = append(columns, t.Columns[:descIdx+1]...)
	columns = append(columns, HoursColumn)
	columns = append(columns, t.Columns[descIdx+1:]...)

	rows := make([][]string, len(t.Rows))
	sorted := make([]float64, len(t.Rows))
	for pos, src := range order {
		row := t.Rows[src]
		expanded := make([]string, 0, len(row)+1)
		expanded = append(expanded, row[:descIdx+1]...)
		expanded = append(expanded, FormatHours(hours[src], precision))
		expanded = append(expanded, row[descIdx+1:]...)
		rows[pos] = expanded
		sorted[pos] = hours[src]
	}

	return NewTable(columns, rows), sorted, nil
}

// FormatHours rounds decimal hours half-up to precision decimal places and
// renders them with that fixed number of decimals, so 1.5 displays as 1.50.
func FormatHours(hours float64, precision int) string {
	scale := math.Pow(10, float64(precision))
	rounded := math.Round(hours*scale) / scale
	return strconv.FormatFloat(rounded, 'f', precision, 64)
}
