// Package scripting runs the dialog and menu scripts shown by the in-game
// menu. Scripts are small tengo programs kept in a yaml catalogue.
package scripting

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/automoto/dukeengine/logger"
	"gopkg.in/yaml.v3"
)

// CatalogueFile is the name of the optional override catalogue in the game
// data directory.
const CatalogueFile = "menus.yaml"

var ErrUnknownScript = errors.New("unknown script")

//go:embed menus.yaml
var defaultCatalogue []byte

type scriptSpec struct {
	Source string `yaml:"source"`
}

type catalogueFile struct {
	Scripts map[string]scriptSpec `yaml:"scripts"`
}

// Catalogue maps script names to tengo sources.
type Catalogue struct {
	sources map[string]string
}

// ParseCatalogue reads a catalogue from yaml.
func ParseCatalogue(data []byte) (*Catalogue, error) {
	var file catalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse script catalogue: %w", err)
	}

	c := &Catalogue{sources: make(map[string]string, len(file.Scripts))}
	for name, spec := range file.Scripts {
		if spec.Source == "" {
			return nil, fmt.Errorf("script %q has no source", name)
		}
		c.sources[name] = spec.Source
	}
	return c, nil
}

// DefaultCatalogue returns the scripts built into the binary.
func DefaultCatalogue() *Catalogue {
	c, err := ParseCatalogue(defaultCatalogue)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalogue returns the built-in scripts, with any scripts from
// CatalogueFile in fsys replacing them by name. A missing file is not an
// error.
func LoadCatalogue(fsys fs.FS) (*Catalogue, error) {
	c := DefaultCatalogue()

	data, err := fs.ReadFile(fsys, CatalogueFile)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", CatalogueFile, err)
	}

	overrides, err := ParseCatalogue(data)
	if err != nil {
		return nil, err
	}
	for name, src := range overrides.sources {
		c.sources[name] = src
	}
	logger.Log.WithField("count", len(overrides.sources)).Info("Loaded menu script overrides")
	return c, nil
}

// Source returns the tengo source of the named script.
func (c *Catalogue) Source(name string) (string, error) {
	src, ok := c.sources[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownScript, name)
	}
	return src, nil
}

// Names lists all scripts, sorted.
func (c *Catalogue) Names() []string {
	names := make([]string, 0, len(c.sources))
	for name := range c.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
