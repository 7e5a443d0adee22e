package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, 4, 19, 0, 0, 0, 0, time.UTC)

func TestNewSampleScanner(t *testing.T) {
	s := NewSampleScanner("/tmp/samples")

	assert.Equal(t, "/tmp/samples", s.BaseDir())
	assert.Equal(t, ".txt", s.ext)
	assert.True(t, s.IsSample("20250419_101500.txt"))
	assert.False(t, s.IsSample("20250419_101500.png"))
}

func TestScanEmptyDirectory(t *testing.T) {
	files, err := NewSampleScanner(t.TempDir()).Scan(day)

	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanNonExistentDirectory(t *testing.T) {
	files, err := NewSampleScanner("/path/that/does/not/exist").Scan(day)

	require.NoError(t, err, "missing directory is not an error")
	assert.Empty(t, files)
}

func TestScanFiltersByDateAndExtension(t *testing.T) {
	dir := t.TempDir()
	names := []struct {
		name string
		want bool
	}{
		{"20250419_101500.txt", true},
		{"20250419_070000.txt", true},
		{"20250419_101500.png", false},
		{"20250418_235959.txt", false},
		{"20250420_000000.txt", false},
		{"notes.txt", false},
	}

	var expected []string
	for _, n := range names {
		path := filepath.Join(dir, n.name)
		require.NoError(t, os.WriteFile(path, []byte("Programming\n"), 0644))
		if n.want {
			expected = append(expected, path)
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "20250419_sub.txt"), 0755))

	files, err := NewSampleScanner(dir).Scan(day)

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "20250419_070000.txt"),
		filepath.Join(dir, "20250419_101500.txt"),
	}, files)
	assert.ElementsMatch(t, expected, files)
}

func TestScanNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := NewSampleScanner(file).Scan(day)
	assert.Error(t, err)
}
