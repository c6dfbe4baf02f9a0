package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterColumns(t *testing.T) {
	tests := []struct {
		name            string
		columns         []string
		rows            [][]string
		expectedColumns []string
		expectedRemoved []string
	}{
		{
			name:            "denylisted columns removed case insensitively",
			columns:         []string{"Client", "User", "Description", "Email", "Duration", "Tags"},
			rows:            [][]string{{"A", "alice", "work", "a@x.io", "01:00:00", "dev"}},
			expectedColumns: []string{"Client", "Description", "Duration"},
			expectedRemoved: []string{"User", "Email", "Tags"},
		},
		{
			name:            "no denylisted columns present",
			columns:         []string{"Client", "Description", "Duration"},
			rows:            [][]string{{"A", "work", "01:00:00"}},
			expectedColumns: []string{"Client", "Description", "Duration"},
			expectedRemoved: nil,
		},
		{
			name:            "mixed case header forms",
			columns:         []string{"START TIME", "End Time", "end date", "Billable", "Task", "client", "description", "duration"},
			rows:            [][]string{{"09:00", "10:00", "2024-01-02", "yes", "t1", "A", "work", "01:00:00"}},
			expectedColumns: []string{"client", "description", "duration"},
			expectedRemoved: []string{"START TIME", "End Time", "end date", "Billable", "Task"},
		},
		{
			name:            "empty table keeps its header",
			columns:         []string{"Client", "Description", "Duration", "Email"},
			rows:            nil,
			expectedColumns: []string{"Client", "Description", "Duration"},
			expectedRemoved: []string{"Email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, removed := FilterColumns(NewTable(tt.columns, tt.rows))

			assert.Equal(t, tt.expectedColumns, filtered.Columns)
			assert.Equal(t, tt.expectedRemoved, removed)
			assert.Len(t, filtered.Rows, len(tt.rows))
			for _, row := range filtered.Rows {
				assert.Len(t, row, len(tt.expectedColumns))
			}
		})
	}
}

func TestFilterColumnsPreservesValues(t *testing.T) {
	table := NewTable(
		[]string{"User", "Client", "Duration", "Description"},
		[][]string{
			{"alice", "Acme", "01:00:00", "api work"},
			{"bob", "Globex", "00:30:00", "review"},
		},
	)

	filtered, removed := FilterColumns(table)

	assert.Equal(t, []string{"User"}, removed)
	assert.Equal(t, [][]string{
		{"Acme", "01:00:00", "api work"},
		{"Globex", "00:30:00", "review"},
	}, filtered.Rows)
}
