// Package timesheet cleans raw timesheet exports. It consolidates the table
// model, duration arithmetic, and the transformation stages into one package
// covering the data lifecycle from file ingestion to the presentable report.
//
// # Architecture
//
// The pipeline runs four stages over an in-memory table, each producing a
// new table:
//
//  1. FilterColumns: drops export metadata columns (user, email, tags, ...)
//  2. NormalizeDurations: rounds every duration up to the next 15-minute
//     boundary and re-renders it as HH:MM:00
//  3. Aggregate: merges rows sharing a (client, description) pair, summing
//     decimal hours and keeping first-seen values for other columns
//  4. Present: inserts the Hours column after description and sorts rows by
//     client
//
// # Usage
//
//	table, err := timesheet.ReadFile("timesheet.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pipeline := timesheet.NewPipeline(logger, timesheet.DefaultOptions())
//	result, err := pipeline.Run(table)
//
// # Error Handling
//
// Structural preconditions abort the run: the duration, client, and
// description columns must resolve case-insensitively after filtering
// (ErrMissingColumn), and a duration with a non-numeric component aborts
// with a ParseError. Empty durations and strings that do not split into two
// or three components are tolerated and pass through unchanged.
package timesheet
