package timesheet

import (
	"fmt"
	"log/slog"
)

// Options configures a pipeline run.
type Options struct {
	// RoundIncrement is the rounding granularity in minutes.
	RoundIncrement int
	// HoursPrecision is the number of decimal places shown in the Hours
	// column.
	HoursPrecision int
}

// DefaultOptions returns the rounding and display settings used by the
// standard report.
func DefaultOptions() Options {
	return Options{
		RoundIncrement: DefaultRoundIncrement,
		HoursPrecision: 2,
	}
}

// Result carries the cleaned table plus the run facts the console report
// needs.
type Result struct {
	Table *Table
	// Hours holds the summed decimal hours per output row, before display
	// rounding, aligned with Table.Rows.
	Hours []float64
	// RemovedColumns lists the original header names dropped by the filter.
	RemovedColumns []string
	// InputRows is the row count before aggregation.
	InputRows int
}

// Pipeline runs the timesheet cleaning stages over one in-memory table:
// column filtering, duration rounding, grouped aggregation, and presentation.
// Each stage produces a new table; nothing is shared across runs.
type Pipeline struct {
	logger *slog.Logger
	opts   Options
}

// NewPipeline creates a pipeline with the given options. A nil logger falls
// back to the process default.
func NewPipeline(logger *slog.Logger, opts Options) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.RoundIncrement <= 0 {
		opts.RoundIncrement = DefaultRoundIncrement
	}
	if opts.HoursPrecision < 0 {
		opts.HoursPrecision = 2
	}
	return &Pipeline{logger: logger, opts: opts}
}

// Run transforms the input table end to end. Structural preconditions
// (required columns) and numeric duration parse failures abort the run with
// an error and no partial output.
func (p *Pipeline) Run(t *Table) (*Result, error) {
	p.logger.Info("starting timesheet processing",
		slog.Int("rows", t.NumRows()),
		slog.Int("columns", t.NumColumns()))

	filtered, removed := FilterColumns(t)
	if len(removed) > 0 {
		p.logger.Info("removed denylisted columns",
			slog.Any("columns", removed))
	}

	// Required columns are a hard precondition once filtering is done.
	for _, name := range []string{ColumnDuration, ColumnClient, ColumnDescription} {
		if _, err := filtered.RequireColumn(name); err != nil {
			return nil, err
		}
	}

	normalized, err := NormalizeDurations(filtered, p.opts.RoundIncrement)
	if err != nil {
		return nil, fmt.Errorf("normalize durations: %w", err)
	}
	p.logger.Info("rounded durations",
		slog.Int("increment_minutes", p.opts.RoundIncrement))

	grouped, hours, err := Aggregate(normalized)
	if err != nil {
		return nil, fmt.Errorf("aggregate entries: %w", err)
	}
	p.logger.Info("grouped entries",
		slog.Int("input_rows", normalized.NumRows()),
		slog.Int("output_rows", grouped.NumRows()))

	presented, sortedHours, err := Present(grouped, hours, p.opts.HoursPrecision)
	if err != nil {
		return nil, fmt.Errorf("present table: %w", err)
	}

	p.logger.Info("timesheet processing complete",
		slog.Int("rows", presented.NumRows()),
		slog.Int("columns", presented.NumColumns()))

	return &Result{
		Table:          presented,
		Hours:          sortedHours,
		RemovedColumns: removed,
		InputRows:      t.NumRows(),
	}, nil
}
