package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"tscli/internal/config"
	"tscli/internal/exporter"
	"tscli/internal/files"
	"tscli/internal/infrastructure"
	"tscli/internal/timesheet"
)

func main() {
	in := flag.String("in", "", "input timesheet file (.csv or .xlsx); defaults to the newest export in -dir")
	dir := flag.String("dir", ".", "directory searched for timesheet exports when -in is not set")
	out := flag.String("out", "", "output csv path (defaults to the input path with the processed suffix)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if err := run(logger, cfg, *in, *dir, *out); err != nil {
		logger.Error("Timesheet processing failed", slog.String("error", err.Error()))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg *config.Config, in, dir, out string) error {
	inputPath := in
	if inputPath == "" {
		candidates, err := files.FindTimesheetFiles(dir, cfg.Processing.OutputSuffix)
		if err != nil {
			return err
		}
		if len(candidates) == 0 {
			return fmt.Errorf("no timesheet files found in %s", dir)
		}
		inputPath = candidates[0].Path
		logger.Info("Discovered input file",
			slog.String("path", inputPath),
			slog.Int("candidates", len(candidates)))
	}

	if !files.Exists(inputPath) {
		return fmt.Errorf("file %q not found", inputPath)
	}

	logger.Info("Reading timesheet",
		slog.String("path", inputPath))

	table, err := timesheet.ReadFile(inputPath)
	if err != nil {
		return err
	}

	fmt.Printf("Original data shape: %d rows x %d columns\n", table.NumRows(), table.NumColumns())
	fmt.Printf("Columns: %s\n", strings.Join(table.Columns, ", "))

	pipeline := timesheet.NewPipeline(logger, timesheet.Options{
		RoundIncrement: cfg.Processing.RoundIncrementMinutes,
		HoursPrecision: cfg.Processing.HoursPrecision,
	})

	result, err := pipeline.Run(table)
	if err != nil {
		return err
	}

	if len(result.RemovedColumns) > 0 {
		fmt.Printf("Deleted columns: %s\n", strings.Join(result.RemovedColumns, ", "))
	}

	outputPath := out
	if outputPath == "" {
		outputPath = files.ProcessedPath(inputPath, cfg.Processing.OutputSuffix)
	}

	writer := exporter.NewWriter(logger)
	if err := writer.WriteSimpleCSV(outputPath, result.Table.Columns, result.Table.Rows); err != nil {
		return err
	}

	printReport(result, outputPath, cfg.Processing.SampleCount)

	logger.Info("Timesheet processing completed",
		slog.Int("input_rows", result.InputRows),
		slog.Int("output_rows", result.Table.NumRows()),
		slog.String("output_path", outputPath))

	return nil
}

// printReport prints the console summary: output shape, sample conversions,
// grouping counts, and entries per client.
func printReport(result *timesheet.Result, outputPath string, sampleCount int) {
	t := result.Table

	fmt.Printf("Processed data saved to: %s\n", outputPath)
	fmt.Printf("Processed data shape: %d rows x %d columns\n", t.NumRows(), t.NumColumns())

	durIdx, hasDuration := t.ColumnIndex(timesheet.ColumnDuration)
	hoursIdx, hasHours := t.ColumnIndex(timesheet.HoursColumn)
	if hasDuration && hasHours {
		fmt.Println("Duration -> Hours")
		for i, row := range t.Rows {
			if i >= sampleCount {
				break
			}
			fmt.Printf("  %s -> %s hours\n", row[durIdx], row[hoursIdx])
		}
	}

	fmt.Printf("Original entries: %d\n", result.InputRows)
	fmt.Printf("After grouping: %d\n", t.NumRows())

	counts := clientCounts(t)
	if len(counts) > 0 {
		fmt.Println("Entries per client:")
		for _, c := range counts {
			fmt.Printf("  %s: %d entries\n", c.name, c.count)
		}
	}
}

type clientCount struct {
	name  string
	count int
}

// clientCounts tallies output rows per client, most entries first, ties in
// name order.
func clientCounts(t *timesheet.Table) []clientCount {
	clientIdx, ok := t.ColumnIndex(timesheet.ColumnClient)
	if !ok {
		return nil
	}

	tally := make(map[string]int)
	for _, row := range t.Rows {
		tally[row[clientIdx]]++
	}

	counts := make([]clientCount, 0, len(tally))
	for name, count := range tally {
		counts = append(counts, clientCount{name: name, count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].name < counts[j].name
	})

	return counts
}
