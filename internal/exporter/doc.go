// Package exporter handles writing processed timesheet reports to CSV.
//
// The Writer mirrors the shape of the rest of the pipeline: it receives a
// fully transformed header and record set and performs only I/O. A UTF-8 BOM
// is written by default so Excel opens the report with the right encoding;
// the timesheet reader strips it back off on ingest.
package exporter
