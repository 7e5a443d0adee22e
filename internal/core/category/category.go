package category

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

// RGB is a display colour.
type RGB struct {
	R, G, B uint8
}

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses #rrggbb (the leading # is optional).
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Category is one registry entry.
type Category struct {
	Name        string
	Color       RGB
	Description string
	Internal    bool // Not offered to classifiers, e.g. Unknown
}

// Registry maps category names to colours and descriptions. Lookups never fail:
// unregistered labels resolve to the fallback entry.
type Registry struct {
	order    []string
	entries  map[string]Category
	unknown  string
	fallback string
}

var (
	ErrNoCategories   = errors.New("category registry is empty")
	ErrMissingRole    = errors.New("category role not registered")
	ErrDuplicateEntry = errors.New("duplicate category")
)

// NewRegistry builds a registry. Both unknown and fallback must name entries in categories;
// they may be the same entry.
func NewRegistry(categories []Category, unknown, fallback string) (*Registry, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	r := &Registry{
		order:    make([]string, 0, len(categories)),
		entries:  make(map[string]Category, len(categories)),
		unknown:  unknown,
		fallback: fallback,
	}
	for _, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, errors.New("category with empty name")
		}
		if _, ok := r.entries[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEntry, name)
		}
		c.Name = name
		r.entries[name] = c
		r.order = append(r.order, name)
	}

	if _, ok := r.entries[unknown]; !ok {
		return nil, fmt.Errorf("%w: unknown category %q", ErrMissingRole, unknown)
	}
	if _, ok := r.entries[fallback]; !ok {
		return nil, fmt.Errorf("%w: fallback category %q", ErrMissingRole, fallback)
	}
	return r, nil
}

// Lookup returns the entry for name, or the fallback entry when name is not registered.
func (r *Registry) Lookup(name string) Category {
	if c, ok := r.entries[name]; ok {
		return c
	}
	return r.entries[r.fallback]
}

// Resolve returns the registered category name a label is rendered as.
func (r *Registry) Resolve(label string) string {
	return r.Lookup(label).Name
}

// Has reports whether name is a registered key.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

func (r *Registry) Unknown() Category {
	return r.entries[r.unknown]
}

func (r *Registry) Fallback() Category {
	return r.entries[r.fallback]
}

// Categories returns all entries in registration order.
func (r *Registry) Categories() []Category {
	out := make([]Category, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out
}

// Names returns the registered names in order. Internal entries are skipped unless includeInternal is set.
func (r *Registry) Names(includeInternal bool) []string {
	names := make([]string, 0, len(r.order))
	for _, name := range r.order {
		if !includeInternal && r.entries[name].Internal {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Describe renders "name: description" lines for the non-internal categories.
func (r *Registry) Describe() string {
	var sb strings.Builder
	for _, name := range r.Names(false) {
		sb.WriteString("- ")
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(r.entries[name].Description)
		sb.WriteString("\n")
	}
	return sb.String()
}

// defaultCategories is the built-in registry used when no categories file is configured.
var defaultCategories = []Category{
	{Name: "Programming", Color: RGB{30, 144, 255}, Description: "Writing code, debugging, using IDEs, terminal tasks related to coding."},
	{Name: "Social media", Color: RGB{255, 165, 0}, Description: "Browsing Reddit, forums, Hacker News, etc."},
	{Name: "Youtube", Color: RGB{255, 0, 0}, Description: "Watching videos on Youtube."},
	{Name: "Productive browser", Color: RGB{60, 179, 113}, Description: "Reading technical documentation, research papers, LeetCode, Stack Overflow, work-related web apps."},
	{Name: "Spotify", Color: RGB{30, 215, 96}, Description: "Listening to music or podcasts on Spotify."},
	{Name: "Watching stuff", Color: RGB{128, 0, 128}, Description: "Watching videos (not Youtube), movies, TV shows (e.g., Plex, Netflix)."},
	{Name: "Reading news", Color: RGB{210, 105, 30}, Description: "Reading news websites or aggregators."},
	{Name: model.CategoryOther, Color: RGB{169, 169, 169}, Description: "Anything that doesn't fit well into other categories (e.g., file browsing, system settings)."},
	{Name: model.CategoryUnknown, Color: RGB{211, 211, 211}, Description: "Time before first data point or gaps between activities.", Internal: true},
}

// Default returns the built-in registry.
func Default() *Registry {
	r, err := NewRegistry(defaultCategories, model.CategoryUnknown, model.CategoryOther)
	if err != nil {
		panic(fmt.Sprintf("default category registry: %v", err))
	}
	return r
}
