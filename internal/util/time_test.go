package util

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeTimeProvider(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "local timezone", timezone: "Local"},
		{name: "UTC timezone", timezone: "UTC"},
		{name: "named timezone", timezone: "America/New_York"},
		{name: "empty timezone defaults to Local", timezone: ""},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitializeTimeProvider(tt.timezone)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid timezone")
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, GetTimeProvider())
		})
	}
}

func TestGetTimeProviderDefaultsToLocal(t *testing.T) {
	mu.Lock()
	globalTimeProvider = nil
	mu.Unlock()

	provider := GetTimeProvider()
	require.NotNil(t, provider)
	assert.Equal(t, time.Local, provider.Location())
	assert.Same(t, provider, GetTimeProvider())
}

func TestTimeProviderClock(t *testing.T) {
	tp, err := NewTimeProvider("UTC")
	require.NoError(t, err)

	fixed := time.Date(2025, 4, 19, 15, 30, 0, 0, time.UTC)
	tp.SetClock(func() time.Time { return fixed })

	assert.Equal(t, fixed, tp.Now())
	assert.Equal(t, time.Date(2025, 4, 19, 0, 0, 0, 0, time.UTC), tp.Today())

	ny, err := LoadLocation("America/New_York")
	require.NoError(t, err)
	require.NoError(t, tp.SetTimezone("America/New_York"))
	assert.Equal(t, ny, tp.Location())
	assert.Equal(t, 11, tp.Now().Hour())
	assert.Equal(t, fixed.Unix(), tp.In(fixed).Unix())
}

func TestTimeProviderConcurrency(t *testing.T) {
	tp, err := NewTimeProvider("UTC")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = tp.SetTimezone("UTC")
			} else {
				_ = tp.Now()
			}
		}(i)
	}
	wg.Wait()
}

func TestParseDate(t *testing.T) {
	tp, err := NewTimeProvider("UTC")
	require.NoError(t, err)
	tp.SetClock(func() time.Time { return time.Date(2025, 4, 19, 9, 0, 0, 0, time.UTC) })

	d, err := ParseDate("2025-03-01", tp)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("today", tp)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 19, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("yesterday", tp)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("19/04/2025", tp)
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    ClockTime
		wantErr bool
	}{
		{input: "07:00", want: ClockTime{7, 0}},
		{input: "00:00", want: ClockTime{0, 0}},
		{input: "24:00", want: ClockTime{24, 0}},
		{input: " 9:30 ", want: ClockTime{9, 30}},
		{input: "24:01", wantErr: true},
		{input: "25:00", wantErr: true},
		{input: "07:60", wantErr: true},
		{input: "0700", wantErr: true},
		{input: "aa:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockTimeOn(t *testing.T) {
	loc, err := LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	day := time.Date(2025, 4, 19, 0, 0, 0, 0, loc)

	assert.Equal(t, time.Date(2025, 4, 19, 7, 0, 0, 0, loc), ClockTime{7, 0}.On(day))
	assert.Equal(t, time.Date(2025, 4, 20, 0, 0, 0, 0, loc), ClockTime{24, 0}.On(day))
	assert.Equal(t, "07:05", ClockTime{7, 5}.String())
}
