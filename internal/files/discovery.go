package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo describes a discovered timesheet export.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// FindTimesheetFiles lists the CSV and Excel files in dir, newest first,
// skipping reports that already carry the processed suffix. It is used when
// the CLI is started without an explicit input path.
func FindTimesheetFiles(dir, processedSuffix string) ([]FileInfo, error) {
	if processedSuffix == "" {
		processedSuffix = DefaultProcessedSuffix
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".csv" && ext != ".xlsx" && ext != ".xls" {
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if strings.HasSuffix(stem, processedSuffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:    filepath.Join(dir, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})

	return files, nil
}
