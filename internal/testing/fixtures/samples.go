package fixtures

import (
	"os"
	"path/filepath"
	"time"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

// SampleGenerator writes sample records the way the classifier does:
// one YYYYMMDD_HHMMSS.txt file per observation, category on the first line.
type SampleGenerator struct {
	baseDir string
}

// NewSampleGenerator creates a generator writing into baseDir
func NewSampleGenerator(baseDir string) *SampleGenerator {
	return &SampleGenerator{
		baseDir: baseDir,
	}
}

func (g *SampleGenerator) BaseDir() string {
	return g.baseDir
}

// RecordName returns the file name of a sample taken at ts.
func RecordName(ts time.Time) string {
	return ts.Format(model.SampleTimeLayout) + model.SampleExt
}

// Write stores one sample. The file is renamed into place so watchers only see complete records.
func (g *SampleGenerator) Write(ts time.Time, label string) (string, error) {
	return g.WriteRaw(RecordName(ts), label+"\nclassifier explanation\n")
}

// WriteRaw stores content under name verbatim.
func (g *SampleGenerator) WriteRaw(name, content string) (string, error) {
	if err := os.MkdirAll(g.baseDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(g.baseDir, name)
	tmp := path + ".part"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, os.Rename(tmp, path)
}

// WriteRun stores count samples of label starting at start, interval apart.
func (g *SampleGenerator) WriteRun(start time.Time, interval time.Duration, count int, label string) error {
	for i := 0; i < count; i++ {
		if _, err := g.Write(start.Add(time.Duration(i)*interval), label); err != nil {
			return err
		}
	}
	return nil
}

// GenerateWorkday writes a morning of sampling on date's calendar day:
// 09:00-09:59 Programming every minute, 10:00-10:14 Youtube every minute,
// an unsampled gap, then 11:00-11:29 Programming every 30 seconds,
// plus one unreadable record.
func (g *SampleGenerator) GenerateWorkday(date time.Time) error {
	at := func(h, m int) time.Time {
		y, mo, d := date.Date()
		return time.Date(y, mo, d, h, m, 0, 0, date.Location())
	}
	if err := g.WriteRun(at(9, 0), time.Minute, 60, "Programming"); err != nil {
		return err
	}
	if err := g.WriteRun(at(10, 0), time.Minute, 15, "Youtube"); err != nil {
		return err
	}
	if err := g.WriteRun(at(11, 0), 30*time.Second, 60, "Programming"); err != nil {
		return err
	}
	_, err := g.WriteRaw(RecordName(at(12, 0)), "")
	return err
}
