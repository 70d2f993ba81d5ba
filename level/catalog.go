// Package level holds the ordered, read-only table of level definitions
package level

import (
	_ "embed"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var defaultCatalog []byte

// document is the on-disk shape of a catalog
type document struct {
	Levels []Config `yaml:"levels"`
}

// Catalog is an ordered list of levels indexed by id
type Catalog struct {
	levels []Config
	byID   map[int]int
}

// Default returns the embedded 20-level catalog
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded level catalog: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog document
// Entries must carry strictly increasing ids
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level catalog: %w", err)
	}
	if len(doc.Levels) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		levels: doc.Levels,
		byID:   make(map[int]int, len(doc.Levels)),
	}
	// Every bad entry is reported, not just the first
	var errs error
	prev := 0
	for i := range c.levels {
		cfg := &c.levels[i]
		if err := cfg.compile(); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if cfg.ID <= prev {
			errs = multierr.Append(errs, fmt.Errorf("%w: id %d out of order after %d", ErrInvalidLevel, cfg.ID, prev))
			continue
		}
		prev = cfg.ID
		c.byID[cfg.ID] = i
	}
	if errs != nil {
		return nil, errs
	}
	return c, nil
}

// Len returns the number of levels
func (c *Catalog) Len() int { return len(c.levels) }

// All returns the levels in order; callers must not modify entries
func (c *Catalog) All() []Config { return c.levels }

// First returns the entry level
func (c *Catalog) First() *Config { return &c.levels[0] }

// Last returns the final level
func (c *Catalog) Last() *Config { return &c.levels[len(c.levels)-1] }

// Get looks up a level by id
func (c *Catalog) Get(id int) (*Config, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.levels[i], true
}

// Resolve looks up a level by id, falling back to the first entry for unknown ids
func (c *Catalog) Resolve(id int) *Config {
	if cfg, ok := c.Get(id); ok {
		return cfg
	}
	return c.First()
}

// IsFinal reports whether id names the last level of the catalog
func (c *Catalog) IsFinal(id int) bool {
	return id == c.Last().ID
}

// Next returns the level after id, or false if id is final or unknown
func (c *Catalog) Next(id int) (*Config, bool) {
	i, ok := c.byID[id]
	if !ok || i+1 >= len(c.levels) {
		return nil, false
	}
	return &c.levels[i+1], true
}
