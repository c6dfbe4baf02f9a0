package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTimesheetFiles(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, modTime time.Time) {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("data"), 0644))
		require.NoError(t, os.Chtimes(path, modTime, modTime))
	}

	base := time.Now().Add(-time.Hour)
	write("old.csv", base)
	write("new.csv", base.Add(30*time.Minute))
	write("export.xlsx", base.Add(10*time.Minute))
	write("old_processed.csv", base.Add(45*time.Minute))
	write("notes.txt", base.Add(50*time.Minute))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.csv"), 0755))

	found, err := FindTimesheetFiles(dir, "_processed")
	require.NoError(t, err)

	var names []string
	for _, f := range found {
		names = append(names, f.Name)
	}
	// newest first, processed reports and non-timesheet files skipped
	assert.Equal(t, []string{"new.csv", "export.xlsx", "old.csv"}, names)
}

func TestFindTimesheetFilesEmptyDir(t *testing.T) {
	found, err := FindTimesheetFiles(t.TempDir(), "_processed")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindTimesheetFilesMissingDir(t *testing.T) {
	_, err := FindTimesheetFiles(filepath.Join(t.TempDir(), "nope"), "_processed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read directory")
}
