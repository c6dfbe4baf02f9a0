package timesheet

// NormalizeDurations rounds every duration value in the table up to the next
// increment boundary, producing a new table. The duration column must be
// resolvable; a non-numeric duration component aborts with a ParseError.
func NormalizeDurations(t *Table, increment int) (*Table, error) {
	durIdx, err := t.RequireColumn(ColumnDuration)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		normalized := make([]string, len(row))
		copy(normalized, row)
		rounded, err := RoundDurationUp(row[durIdx], increment)
		if err != nil {
			return nil, err
		}
		normalized[durIdx] = rounded
		rows[r] = normalized
	}

	columns := make([]string, len(t.Columns))
	copy(columns, t.Columns)
	return NewTable(columns, rows), nil
}

// groupKey merges rows by exact client and description values,
// case-sensitively.
type groupKey struct {
	client      string
	description string
}

type groupAccumulator struct {
	first []string // snapshot of the first row seen for the key
	hours float64  // running sum of decimal hours
}

// Aggregate merges rows sharing a (client, description) pair into one output
// row per distinct pair, in first-encounter order. Decimal hours are summed
// per group from the (already rounded) duration values; every other column
// keeps the value from the group's first row; the duration column is
// re-rendered from the summed hours. The returned slice carries the summed
// decimal hours aligned with the output rows.
func Aggregate(t *Table) (*Table, []float64, error) {
	durIdx, err := t.RequireColumn(ColumnDuration)
	if err != nil {
		return nil, nil, err
	}
	clientIdx, err := t.RequireColumn(ColumnClient)
	if err != nil {
		return nil, nil, err
	}
	descIdx, err := t.RequireColumn(ColumnDescription)
	if err != nil {
		return nil, nil, err
	}

	groups := make(map[groupKey]*groupAccumulator)
	var order []groupKey

	for _, row := range t.Rows {
		hours, err := DurationToDecimalHours(row[durIdx])
		if err != nil {
			return nil, nil, err
		}

		key := groupKey{client: row[clientIdx], description: row[descIdx]}
		acc, seen := groups[key]
		if !seen {
			first := make([]string, len(row))
			copy(first, row)
			acc = &groupAccumulator{first: first}
			groups[key] = acc
			order = append(order, key)
		}
		acc.hours += hours
	}

	columns := make([]string, len(t.Columns))
	copy(columns, t.Columns)

	rows := make([][]string, 0, len(order))
	totals := make([]float64, 0, len(order))
	for _, key := range order {
		acc := groups[key]
		row := make([]string, len(acc.first))
		copy(row, acc.first)
		row[durIdx] = DecimalHoursToDuration(acc.hours)
		rows = append(rows, row)
		totals = append(totals, acc.hours)
	}

	return NewTable(columns, rows), totals, nil
}
