package world

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Material ids used by generation and tick behaviours
const (
	Air   uint8 = 0
	Rock  uint8 = 1
	Grass uint8 = 2
	Dirt  uint8 = 3
	Brick uint8 = 4
	Wood  uint8 = 5
	Bush  uint8 = 6
)

//go:embed materials.yaml
var defaultMaterials []byte

// Material describes one block type
type Material struct {
	ID    uint8  `yaml:"id"`
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
	Solid bool   `yaml:"solid"`

	// Random tick behaviour, zero values disable
	DecaysTo   uint8   `yaml:"decays_to"`   // becomes this when unlit
	SpreadsTo  uint8   `yaml:"spreads_to"`  // converts lit neighbours of this id into itself
	NeedsLight bool    `yaml:"needs_light"` // removed when unlit
	Soil       []uint8 `yaml:"soil"`        // removed unless resting on one of these
}

// Ticks reports whether the material has any random tick behaviour
func (m *Material) Ticks() bool {
	return m.DecaysTo != 0 || m.SpreadsTo != 0 || m.NeedsLight || len(m.Soil) > 0
}

// Rune returns the first rune of the glyph, or a block if none is set
func (m *Material) Rune() rune {
	for _, r := range m.Glyph {
		return r
	}
	return '█'
}

type catalogFile struct {
	Materials []Material `yaml:"materials"`
}

// Catalog indexes materials by id
type Catalog struct {
	byID [256]*Material
	ids  []uint8
}

// LoadCatalog parses a YAML material list
func LoadCatalog(raw []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("materials: %w", err)
	}

	c := &Catalog{}
	for i := range f.Materials {
		m := f.Materials[i]
		if m.ID == Air {
			return nil, fmt.Errorf("materials: id 0 is reserved for air (%q)", m.Name)
		}
		if c.byID[m.ID] != nil {
			return nil, fmt.Errorf("materials: duplicate id %d (%q, %q)", m.ID, c.byID[m.ID].Name, m.Name)
		}
		c.byID[m.ID] = &m
		c.ids = append(c.ids, m.ID)
	}
	slices.Sort(c.ids)
	return c, nil
}

// DefaultCatalog returns the built-in material set
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(defaultMaterials)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the material for id, nil for air or unknown ids
func (c *Catalog) Get(id uint8) *Material {
	return c.byID[id]
}

// IDs returns the defined material ids in ascending order
func (c *Catalog) IDs() []uint8 {
	return c.ids
}

// IsSolid reports whether id collides and blocks light
func (c *Catalog) IsSolid(id uint8) bool {
	m := c.byID[id]
	return m != nil && m.Solid
}

// Name returns the material name, "air" for 0 and "unknown" for undefined ids
func (c *Catalog) Name(id uint8) string {
	if id == Air {
		return "air"
	}
	if m := c.byID[id]; m != nil {
		return m.Name
	}
	return "unknown"
}
