package style

import (
	"maps"
	"slices"
	"strings"
)

const (
	// DefaultPreset is the catalog name of Default.
	DefaultPreset = "default"
	// CompactPreset is the catalog name of Compact.
	CompactPreset = "compact"
)

// Catalog is a set of named styles. Names are matched case-insensitively.
// A Catalog is not safe for concurrent mutation.
type Catalog struct {
	presets map[string]Style
}

// NewCatalog returns a catalog holding the built-in presets.
func NewCatalog() *Catalog {
	return &Catalog{
		presets: map[string]Style{
			DefaultPreset: Default,
			CompactPreset: Compact,
		},
	}
}

// Names returns the preset names in sorted order.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.presets))
}

// Get looks up a preset by name.
func (c *Catalog) Get(name string) (Style, bool) {
	s, ok := c.presets[normalize(name)]
	return s, ok
}

// Save stores a style under name, replacing any preset with the same name.
func (c *Catalog) Save(name string, s Style) {
	c.presets[normalize(name)] = s
}

// Remove deletes the named preset and reports whether it existed.
func (c *Catalog) Remove(name string) bool {
	key := normalize(name)
	if _, ok := c.presets[key]; !ok {
		return false
	}

	delete(c.presets, key)
	return true
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
