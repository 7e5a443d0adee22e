package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-activity-timeline/internal/core/timeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := Load(path)
	require.NoError(t, err)

	assert.False(t, exists)
	assert.Equal(t, path, resolved)
	assert.Equal(t, 1000, cfg.ChartWidth)
	assert.Equal(t, 22, cfg.ChartHeight)
	assert.Equal(t, 90, cfg.ValiditySeconds)
	assert.Equal(t, 90, cfg.MergeGapSeconds)
	assert.Equal(t, "07:00", cfg.WindowStart)
	assert.Equal(t, "24:00", cfg.WindowEnd)
	assert.Equal(t, "Programming", cfg.TrackedCategory)
	assert.Equal(t, "/tmp/time.png", cfg.OutputPath)
	assert.True(t, filepath.IsAbs(cfg.DataDir))
}

func TestLoadPartialFile(t *testing.T) {
	dataDir := t.TempDir()
	path := writeConfig(t, `
data_dir = "`+dataDir+`"
chart_width = 500
merge_anchor = "First"
tracked_category = "Youtube"
`)
	cfg, _, exists, err := Load(path)
	require.NoError(t, err)

	assert.True(t, exists)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, 500, cfg.ChartWidth)
	assert.Equal(t, 22, cfg.ChartHeight)
	assert.Equal(t, "first", cfg.MergeAnchor)
	assert.Equal(t, "Youtube", cfg.TrackedCategory)

	opts, err := cfg.SynthesisOptions()
	require.NoError(t, err)
	assert.Equal(t, timeline.AnchorFirst, opts.Anchor)
	assert.Equal(t, 90*time.Second, opts.Validity)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", `chart_width = `, "parse config"},
		{"negative width", `chart_width = -1`, "chart_width"},
		{"negative height", `chart_height = -5`, "chart_height"},
		{"bad clock", `window_start = "7am"`, "window_start"},
		{"end before start", "window_start = \"10:00\"\nwindow_end = \"09:00\"", "window_end"},
		{"bad anchor", `merge_anchor = "middle"`, "merge_anchor"},
		{"bad validity", `validity_seconds = -90`, "validity_seconds"},
		{"bad timezone", `timezone = "Mars/Olympus"`, "timezone"},
		{"bad level", `log_level = "loud"`, "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDegenerateWindowIsReported(t *testing.T) {
	_, _, _, err := Load(writeConfig(t, "window_start = \"09:00\"\nwindow_end = \"09:00\""))
	assert.ErrorIs(t, err, timeline.ErrDegenerateWindow)
}

func TestWriteSampleRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.DataDir = t.TempDir()
	cfg.ChartWidth = 640
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, cfg.WriteSample(path))

	loaded, _, exists, err := Load(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 640, loaded.ChartWidth)
	assert.Equal(t, cfg.DataDir, loaded.DataDir)
}

func TestHelpers(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.normalize())

	window, err := cfg.Window()
	require.NoError(t, err)
	assert.Equal(t, "07:00-24:00", window.String())
	assert.Equal(t, time.Minute, cfg.RefreshInterval())

	registry, err := cfg.Registry()
	require.NoError(t, err)
	assert.True(t, registry.Has("Programming"))

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestRegistryFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
categories:
  - name: Deep work
    color: "#112233"
  - name: Other
    color: "#a9a9a9"
  - name: Unknown
    color: "#d3d3d3"
    internal: true
`), 0o644))

	cfg := Default()
	cfg.CategoriesFile = file
	registry, err := cfg.Registry()
	require.NoError(t, err)
	assert.True(t, registry.Has("Deep work"))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/x/y")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x", "y"), got)

	got, err = ExpandPath("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
