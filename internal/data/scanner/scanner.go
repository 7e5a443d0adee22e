package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

// SampleScanner lists the sample records of one day in a data directory
type SampleScanner struct {
	baseDir string
	ext     string
}

// NewSampleScanner creates a new SampleScanner instance
func NewSampleScanner(baseDir string) *SampleScanner {
	return &SampleScanner{
		baseDir: baseDir,
		ext:     model.SampleExt,
	}
}

// BaseDir returns the scanned directory.
func (s *SampleScanner) BaseDir() string {
	return s.baseDir
}

// IsSample reports whether name looks like a sample record file.
func (s *SampleScanner) IsSample(name string) bool {
	return strings.HasSuffix(name, s.ext)
}

// Scan returns the paths of the records whose name carries date's YYYYMMDD prefix, sorted by name.
// A missing directory yields no files and no error.
func (s *SampleScanner) Scan(date time.Time) ([]string, error) {
	start := time.Now()
	prefix := date.Format(model.SampleDateLayout)

	util.LogDebugf("Start scanning %s for %s records", s.baseDir, prefix)

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			util.LogWarnf("Data directory '%s' not found", s.baseDir)
			return nil, nil
		}
		return nil, fmt.Errorf("list data directory %s: %w", s.baseDir, err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !s.IsSample(name) {
			continue
		}
		files = append(files, filepath.Join(s.baseDir, name))
	}
	sort.Strings(files)

	util.LogDebugf("Sample scan completed: duration %v, %d entries, %d records for %s",
		time.Since(start), len(entries), len(files), prefix)
	return files, nil
}
