package category

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

// fileEntry is one category as written in a registry file.
type fileEntry struct {
	Name        string `toml:"name" yaml:"name"`
	Color       string `toml:"color" yaml:"color"`
	Description string `toml:"description" yaml:"description"`
	Internal    bool   `toml:"internal" yaml:"internal"`
}

// registryFile is the on-disk registry layout, shared by TOML and YAML files.
type registryFile struct {
	Unknown    string      `toml:"unknown" yaml:"unknown"`
	Fallback   string      `toml:"fallback" yaml:"fallback"`
	Categories []fileEntry `toml:"category" yaml:"categories"`
}

// LoadFile reads a registry from a .toml, .yaml or .yml file.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read categories file: %w", err)
	}

	var rf registryFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &rf)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &rf)
	default:
		return nil, fmt.Errorf("unsupported categories file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse categories file %s: %w", path, err)
	}

	return rf.registry()
}

func (rf registryFile) registry() (*Registry, error) {
	unknown := rf.Unknown
	if unknown == "" {
		unknown = model.CategoryUnknown
	}
	fallback := rf.Fallback
	if fallback == "" {
		fallback = model.CategoryOther
	}

	categories := make([]Category, 0, len(rf.Categories))
	for _, e := range rf.Categories {
		color, err := ParseHex(e.Color)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", e.Name, err)
		}
		categories = append(categories, Category{
			Name:        e.Name,
			Color:       color,
			Description: e.Description,
			Internal:    e.Internal || e.Name == unknown,
		})
	}
	return NewRegistry(categories, unknown, fallback)
}
