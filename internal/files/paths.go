package files

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultProcessedSuffix is appended to an input filename's stem to name the
// cleaned report.
const DefaultProcessedSuffix = "_processed"

// ProcessedPath derives the output path for a processed report: the input
// path with suffix appended before the extension. Excel inputs map to a CSV
// with the same stem, since the report is always written as CSV.
func ProcessedPath(inputPath, suffix string) string {
	if suffix == "" {
		suffix = DefaultProcessedSuffix
	}

	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(inputPath, ext)

	switch strings.ToLower(ext) {
	case ".xlsx", ".xls", "":
		ext = ".csv"
	}

	return stem + suffix + ext
}

// Exists reports whether a file exists at the given path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
