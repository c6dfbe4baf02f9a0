// Package files provides filesystem helpers around the timesheet pipeline:
// deriving the processed-report path from an input filename, existence
// checks, and discovery of candidate timesheet exports in a directory.
package files
