package timesheet

import "strings"

// DeniedColumns lists the export metadata columns stripped before
// aggregation. Matching is case-insensitive; absent entries are skipped.
var DeniedColumns = []string{
	"user",
	"email",
	"task",
	"billable",
	"start time",
	"end date",
	"end time",
	"tags",
}

// FilterColumns removes every denylisted column present in the table and
// returns the new table together with the original header names that were
// dropped. Filtering never fails; a table without denylisted columns passes
// through with an empty removed list.
func FilterColumns(t *Table) (*Table, []string) {
	denied := make(map[string]bool, len(DeniedColumns))
	for _, name := range DeniedColumns {
		denied[name] = true
	}

	keep := make([]int, 0, len(t.Columns))
	var removed []string
	for i, name := range t.Columns {
		if denied[strings.ToLower(strings.TrimSpace(name))] {
			removed = append(removed, name)
			continue
		}
		keep = append(keep, i)
	}

	if len(removed) == 0 {
		return t, nil
	}

	columns := make([]string, len(keep))
	for i, src := range keep {
		columns[i] = t.Columns[src]
	}

	rows := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		projected := make([]string, len(keep))
		for i, src := range keep {
			projected[i] = row[src]
		}
		rows[r] = projected
	}

	return NewTable(columns, rows), removed
}
