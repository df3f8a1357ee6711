// Package catalog holds the immutable service catalog.
// The catalog is owned by an external collaborator; this package loads
// it once and exposes read-only lookups. No schema validation happens
// here beyond what decoding requires.
package catalog

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// Catalog is an immutable set of service definitions.
// Safe for concurrent use; never mutated after construction.
type Catalog struct {
	defs  map[types.ServiceClass]types.ServiceDefinition
	order []types.ServiceClass
}

// New builds a catalog from definitions
func New(defs []types.ServiceDefinition) *Catalog {
	c := &Catalog{
		defs:  make(map[types.ServiceClass]types.ServiceDefinition, len(defs)),
		order: make([]types.ServiceClass, 0, len(defs)),
	}
	for _, def := range defs {
		if _, ok := c.defs[def.Class]; ok {
			continue
		}
		c.defs[def.Class] = def
		c.order = append(c.order, def.Class)
	}
	return c
}

// Load reads a catalog from a YAML file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "failed to read service catalog", err)
	}

	var file struct {
		Services []types.ServiceDefinition `yaml:"services"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "failed to parse service catalog", err)
	}
	if len(file.Services) == 0 {
		return nil, errors.New(errors.TypeConfig, "service catalog is empty")
	}

	return New(file.Services), nil
}

// Get returns the definition for a service class
func (c *Catalog) Get(class types.ServiceClass) (types.ServiceDefinition, bool) {
	def, ok := c.defs[class]
	return def, ok
}

// Has reports whether a service class is known
func (c *Catalog) Has(class types.ServiceClass) bool {
	_, ok := c.defs[class]
	return ok
}

// All returns every definition in registration order
func (c *Catalog) All() []types.ServiceDefinition {
	out := make([]types.ServiceDefinition, 0, len(c.order))
	for _, class := range c.order {
		out = append(out, c.defs[class])
	}
	return out
}

// Deployable returns every deployable definition in registration order
func (c *Catalog) Deployable() []types.ServiceDefinition {
	var out []types.ServiceDefinition
	for _, class := range c.order {
		if def := c.defs[class]; def.Deployable {
			out = append(out, def)
		}
	}
	return out
}

// Classes returns every known class, sorted
func (c *Catalog) Classes() []types.ServiceClass {
	out := make([]types.ServiceClass, len(c.order))
	copy(out, c.order)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of catalog entries
func (c *Catalog) Len() int {
	return len(c.defs)
}
