package util

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// TimeProvider handles timezone-aware time operations for the configured chart timezone
type TimeProvider struct {
	location *time.Location
	now      func() time.Time
	mu       sync.RWMutex
}

var (
	globalTimeProvider *TimeProvider
	mu                 sync.Mutex
)

// NewTimeProvider creates a provider for timezone ("Local" or empty means the system zone).
func NewTimeProvider(timezone string) (*TimeProvider, error) {
	provider := &TimeProvider{now: time.Now}
	if err := provider.SetTimezone(timezone); err != nil {
		return nil, err
	}
	return provider, nil
}

// InitializeTimeProvider initializes the global time provider with the specified timezone
func InitializeTimeProvider(timezone string) error {
	provider, err := NewTimeProvider(timezone)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	globalTimeProvider = provider
	return nil
}

// GetTimeProvider returns the global time provider instance, defaulting to Local
func GetTimeProvider() *TimeProvider {
	mu.Lock()
	defer mu.Unlock()
	if globalTimeProvider == nil {
		globalTimeProvider = &TimeProvider{location: time.Local, now: time.Now}
	}
	return globalTimeProvider
}

// SetTimezone updates the timezone for the time provider
func (tp *TimeProvider) SetTimezone(timezone string) error {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return err
	}

	tp.mu.Lock()
	defer tp.mu.Unlock()
	tp.location = loc
	return nil
}

// SetClock replaces the source of the current time; used by tests and watch mode rollover checks.
func (tp *TimeProvider) SetClock(now func() time.Time) {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	tp.now = now
}

// Location returns the configured timezone
func (tp *TimeProvider) Location() *time.Location {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return tp.location
}

// Now returns the current time in the configured timezone
func (tp *TimeProvider) Now() time.Time {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return tp.now().In(tp.location)
}

// Today returns midnight of the current date in the configured timezone
func (tp *TimeProvider) Today() time.Time {
	return StartOfDay(tp.Now())
}

// In converts a time to the configured timezone
func (tp *TimeProvider) In(t time.Time) time.Time {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return t.In(tp.location)
}

// LoadLocation resolves a timezone name; "" and "Local" map to time.Local.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone '%s': %w\nValid examples: Local, UTC, America/New_York, Europe/London", timezone, err)
	}
	return loc, nil
}

// StartOfDay returns midnight of t's date in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a YYYY-MM-DD date in loc. "today" and "" mean the current date.
func ParseDate(s string, tp *TimeProvider) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return tp.Today(), nil
	case "yesterday":
		return tp.Today().AddDate(0, 0, -1), nil
	}
	d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), tp.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}

// ClockTime is a wall-clock offset from midnight. 24:00 denotes the following midnight.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM" in the range 00:00..24:00.
func ParseClock(s string) (ClockTime, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return ClockTime{}, fmt.Errorf("clock time %q out of range 00:00..24:00", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// On returns the instant of c on date's calendar day, in date's location.
func (c ClockTime) On(date time.Time) time.Time {
	y, m, d := date.Date()
	if c.Hour == 24 {
		return time.Date(y, m, d+1, 0, 0, 0, 0, date.Location())
	}
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, date.Location())
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
