package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/data/scanner"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

// maxLabelBytes bounds how much of a record is read looking for the first line.
const maxLabelBytes = 4096

var (
	ErrEmptyLabel       = errors.New("empty category")
	ErrUnparsableLabel  = errors.New("unparsable category")
	ErrInvalidTimestamp = errors.New("record name is not a timestamp")
)

// DroppedRecord is a record skipped while loading, with the reason.
type DroppedRecord struct {
	Path   string
	Reason error
}

// LoadResult holds the observations of one day, sorted by timestamp, plus the records that were skipped.
type LoadResult struct {
	Date         time.Time
	Observations []model.Observation
	Dropped      []DroppedRecord
}

// Loader reads per-day sample records from a data directory
type Loader struct {
	scanner  *scanner.SampleScanner
	location *time.Location
}

// NewLoader creates a loader for dataDir. Record names are interpreted in loc.
func NewLoader(dataDir string, loc *time.Location) *Loader {
	if loc == nil {
		loc = time.Local
	}
	return &Loader{
		scanner:  scanner.NewSampleScanner(dataDir),
		location: loc,
	}
}

// DataDir returns the directory records are read from.
func (l *Loader) DataDir() string {
	return l.scanner.BaseDir()
}

// Load returns the observations recorded on date. Individual bad records are dropped with a
// warning; only a failure to list the directory is returned as an error.
func (l *Loader) Load(date time.Time) (*LoadResult, error) {
	date = util.StartOfDay(date.In(l.location))

	files, err := l.scanner.Scan(date)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{
		Date:         date,
		Observations: make([]model.Observation, 0, len(files)),
	}
	for _, path := range files {
		obs, err := l.loadRecord(path)
		if err != nil {
			util.LogWarnf("Could not parse file %s: %v", filepath.Base(path), err)
			result.Dropped = append(result.Dropped, DroppedRecord{Path: path, Reason: err})
			continue
		}
		if !util.StartOfDay(obs.Timestamp).Equal(date) {
			continue
		}
		result.Observations = append(result.Observations, obs)
	}

	sort.SliceStable(result.Observations, func(i, j int) bool {
		return result.Observations[i].Timestamp.Before(result.Observations[j].Timestamp)
	})

	util.LogDebugf("Loaded %d observations for %s (%d dropped)",
		len(result.Observations), date.Format("2006-01-02"), len(result.Dropped))
	return result, nil
}

func (l *Loader) loadRecord(path string) (model.Observation, error) {
	ts, err := ParseRecordName(filepath.Base(path), l.location)
	if err != nil {
		return model.Observation{}, err
	}

	label, err := ReadLabel(path)
	if err != nil {
		return model.Observation{}, err
	}

	return model.Observation{
		Timestamp: ts,
		Category:  label,
		Source:    filepath.Base(path),
	}, nil
}

// ParseRecordName extracts the timestamp encoded in a record name such as 20250419_101500.txt.
func ParseRecordName(name string, loc *time.Location) (time.Time, error) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if i := strings.IndexByte(stem, '.'); i >= 0 {
		stem = stem[:i]
	}
	ts, err := time.ParseInLocation(model.SampleTimeLayout, stem, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidTimestamp, name)
	}
	return ts, nil
}

// ReadLabel returns the trimmed first line of a record.
func ReadLabel(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	reader := bufio.NewReader(io.LimitReader(file, maxLabelBytes))
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return parseLabel(line)
}

func parseLabel(line string) (string, error) {
	label := strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	if label == "" {
		return "", ErrEmptyLabel
	}
	if !utf8.ValidString(label) {
		return "", fmt.Errorf("%w: invalid UTF-8", ErrUnparsableLabel)
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("%w: control character %U", ErrUnparsableLabel, r)
		}
	}
	return label, nil
}
