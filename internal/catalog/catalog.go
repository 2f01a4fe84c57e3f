// Package catalog is the component catalog: every reusable UI building block
// the engine may select, with its field schema, content requirements, and the
// traits the scorer consults. The catalog is an immutable collaborator passed
// into the engine; there is no process-wide registry.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Severity tiers for content requirements. Missing critical content blocks
// rendering; missing important content degrades it; optional is cosmetic.
type Severity string

const (
	Critical  Severity = "critical"
	Important Severity = "important"
	Optional  Severity = "optional"
)

// FieldSpec declares one configurable field of a component.
type FieldSpec struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // string | text | url | list
	Critical    bool   `json:"critical"`
	Description string `json:"description,omitempty"`
}

// ContentRequirement ties a field to business data and/or a literal fallback.
type ContentRequirement struct {
	Field    string   `json:"field"`
	Severity Severity `json:"severity"`
	DataPath string   `json:"data_path,omitempty"`
	Fallback string   `json:"fallback,omitempty"`
}

// Character captures the stylistic weight of a component for the user
// preference scoring rule.
type Character struct {
	HeavyEffects bool
	PlainLayout  bool
}

// ComponentType is one catalog entry.
type ComponentType struct {
	Name         string
	Description  string
	Variants     []string
	Fields       []FieldSpec
	Requirements []ContentRequirement
	// DataFlags names the availability flags this component's content depends
	// on (see BusinessDataContext.Availability).
	DataFlags []string
	Character Character
}

// CriticalFields lists the names of fields tagged critical.
func (c ComponentType) CriticalFields() []string {
	var out []string
	for _, f := range c.Fields {
		if f.Critical {
			out = append(out, f.Name)
		}
	}
	return out
}

// Catalog exposes the component set to the engine.
type Catalog interface {
	Get(componentType string) (ComponentType, bool)
	Types() []ComponentType
	// FallbackType names the generic component that renders from fallback
	// text alone; empty when none is registered.
	FallbackType() string
}

type static struct {
	order    []string
	byName   map[string]ComponentType
	fallback string
}

// New builds an immutable catalog from entries. The fallback type must be one
// of the entries (or empty).
func New(fallback string, entries ...ComponentType) (Catalog, error) {
	c := &static{byName: make(map[string]ComponentType, len(entries))}
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog: entry with empty name")
		}
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("catalog: duplicate component type %q", name)
		}
		c.byName[name] = e
		c.order = append(c.order, name)
	}
	if fallback != "" {
		if _, ok := c.byName[fallback]; !ok {
			return nil, fmt.Errorf("catalog: fallback type %q not registered", fallback)
		}
	}
	c.fallback = fallback
	return c, nil
}

func (c *static) Get(name string) (ComponentType, bool) {
	ct, ok := c.byName[strings.TrimSpace(name)]
	return ct, ok
}

func (c *static) Types() []ComponentType {
	out := make([]ComponentType, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

func (c *static) FallbackType() string { return c.fallback }

// PromptSummary renders a one-line-per-type digest used in planner prompts.
func PromptSummary(c Catalog) string {
	types := c.Types()
	lines := make([]string, 0, len(types))
	for _, t := range types {
		lines = append(lines, fmt.Sprintf("%s: %s", t.Name, t.Description))
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}
