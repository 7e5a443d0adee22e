package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/penwyp/go-activity-timeline/internal/core/category"
	"github.com/penwyp/go-activity-timeline/internal/core/chart"
	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

const (
	defaultBarWidth = 74
	minBarWidth     = 20
	maxBarWidth     = 160
	unknownGlyph    = '.'
)

// Bar draws a one-line preview of a chart in the terminal, followed by a legend.
type Bar struct {
	registry *category.Registry
	renderer *lipgloss.Renderer
	width    int
	colorize bool
}

// NewBar sizes the bar to the terminal behind out. Colour is only used on a TTY.
func NewBar(registry *category.Registry, out io.Writer) *Bar {
	return &Bar{
		registry: registry,
		renderer: lipgloss.NewRenderer(out),
		width:    terminalWidth(out),
		colorize: shouldColorize(out),
	}
}

// WithWidth overrides the detected width.
func (b *Bar) WithWidth(width int) *Bar {
	if width >= minBarWidth {
		b.width = width
	}
	return b
}

// WithColor forces colour on or off.
func (b *Bar) WithColor(enabled bool) *Bar {
	b.colorize = enabled
	return b
}

// Width returns the number of columns the bar is remapped to.
func (b *Bar) Width() int {
	return b.width
}

// Render remaps the result's segments onto the bar width and returns the bar with its legend.
func (b *Bar) Render(result *chart.Result) (string, error) {
	layout, err := chart.NewMapper(b.width, result.Layout.TrackedCategory).Map(result.Window, result.Segments)
	if err != nil {
		return "", err
	}

	cells := make([]string, b.width)
	unknown := b.registry.Unknown()
	for i := range cells {
		cells[i] = unknown.Name
	}
	for _, col := range layout.Columns {
		for x := col.StartPx; x < col.EndPx; x++ {
			cells[x] = col.Category
		}
	}

	var sb strings.Builder
	day := result.Window.Start
	left := util.FormatClock(result.Window.Start, day)[:5]
	right := util.FormatClock(result.Window.End, day)[:5]
	sb.WriteString(left)
	sb.WriteString(strings.Repeat(" ", max(1, b.width-len(left)-len(right))))
	sb.WriteString(right)
	sb.WriteString("\n")

	sb.WriteString(b.paintRow(cells))
	sb.WriteString("\n")
	if result.Paused {
		sb.WriteString("paused\n")
	}
	sb.WriteString(b.legend(result.Layout))
	return sb.String(), nil
}

// Write renders the result to w.
func (b *Bar) Write(w io.Writer, result *chart.Result) error {
	out, err := b.Render(result)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// paintRow groups equal neighbouring cells into runs so each run is styled once.
func (b *Bar) paintRow(cells []string) string {
	var sb strings.Builder
	for start := 0; start < len(cells); {
		end := start + 1
		for end < len(cells) && cells[end] == cells[start] {
			end++
		}
		sb.WriteString(b.swatch(cells[start], end-start))
		start = end
	}
	return sb.String()
}

func (b *Bar) swatch(name string, n int) string {
	if b.colorize {
		color := lipgloss.Color(b.registry.Lookup(name).Color.Hex())
		return b.renderer.NewStyle().Background(color).Render(strings.Repeat(" ", n))
	}
	return strings.Repeat(string(b.glyph(name)), n)
}

// glyph is the plain-text stand-in for a category when colour is off.
func (b *Bar) glyph(name string) rune {
	if name == b.registry.Unknown().Name {
		return unknownGlyph
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r
}

func (b *Bar) legend(layout model.ChartLayout) string {
	nameWidth := 0
	for _, t := range layout.Totals {
		if w := util.GetDisplayWidth(t.Category); w > nameWidth {
			nameWidth = w
		}
	}

	var sb strings.Builder
	for _, t := range layout.Totals {
		marker := b.swatch(t.Category, 2)
		if !b.colorize {
			marker = fmt.Sprintf("[%c]", b.glyph(t.Category))
		}
		fmt.Fprintf(&sb, "%s %s %s\n", marker, util.PadRight(t.Category, nameWidth), util.FormatDuration(t.Duration))
	}
	fmt.Fprintf(&sb, "%s: %s\n", layout.TrackedCategory, util.FormatDuration(layout.TrackedTotal))
	return sb.String()
}

func terminalWidth(out io.Writer) int {
	file, ok := out.(*os.File)
	if !ok {
		return defaultBarWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width < minBarWidth {
		return defaultBarWidth
	}
	width -= 2
	if width > maxBarWidth {
		width = maxBarWidth
	}
	util.LogDebugf("Terminal bar width %d", width)
	return width
}

func shouldColorize(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
