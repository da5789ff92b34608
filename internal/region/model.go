// Package region holds the Region/Mod object graph built from an RDL parse
// tree and renders it into the content loader's document schema.
package region

import (
	"fmt"
	"sort"
	"strings"
)

// Region is a named map area with neighbor parameters and the mods placed in it.
//
// Invariant: every Mod in Mods has Region() == this Region.
type Region struct {
	// Name is the region name, conventionally the source file's base name.
	Name string
	// Params holds region-level parameters such as north/south/east/west.
	Params map[string]string
	// Mods is in source order.
	Mods []*Mod

	ids IDSource
}

// Mod is one object placed within a Region.
type Mod struct {
	region *Region

	// Identifier is the mod's declared type name.
	Identifier string
	// Params holds the core fields: x, y, or, and optionally style and gr_state.
	Params map[string]string
	// AdditionalParams maps decimal ordinal keys to integer values.
	AdditionalParams map[string]string
	// ID disambiguates refs between mods sharing an identifier.
	ID string
}

// Option configures a Region at construction.
type Option func(*Region)

// WithIDSource sets the IDSource used for mods added to the Region.
//
// Precondition: src must be non-nil.
func WithIDSource(src IDSource) Option {
	return func(r *Region) { r.ids = src }
}

// New constructs an empty Region.
//
// Postcondition: Params and Mods are fresh, empty, and owned by the returned Region.
func New(name string, opts ...Option) *Region {
	r := &Region{
		Name:   name,
		Params: make(map[string]string),
		Mods:   make([]*Mod, 0),
		ids:    NewUUIDSource(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddMod appends a new Mod owned by r. Nil maps are replaced with fresh empty
// maps; non-nil maps are owned by the Mod afterwards.
//
// Postcondition: the returned Mod is the last element of r.Mods and has a new id.
func (r *Region) AddMod(identifier string, params, additional map[string]string) *Mod {
	if params == nil {
		params = make(map[string]string)
	}
	if additional == nil {
		additional = make(map[string]string)
	}
	m := &Mod{
		region:           r,
		Identifier:       identifier,
		Params:           params,
		AdditionalParams: additional,
		ID:               r.ids.NewID(),
	}
	r.Mods = append(r.Mods, m)
	return m
}

// ContextName returns the region's context reference, "context-<name>".
func (r *Region) ContextName() string {
	return contextRefPrefix + r.Name
}

// String returns a diagnostic summary of the region.
func (r *Region) String() string {
	mods := make([]string, len(r.Mods))
	for i, m := range r.Mods {
		mods[i] = m.String()
	}
	return fmt.Sprintf("<Region(name=%q, params=%s, mods=[%s])>", r.Name, formatParams(r.Params), strings.Join(mods, ", "))
}

// Region returns the owning region.
func (m *Mod) Region() *Region { return m.region }

// String returns a diagnostic summary of the mod.
func (m *Mod) String() string {
	return fmt.Sprintf("<Mod(identifier=%q, params=%s)>", m.Identifier, formatParams(m.Params))
}

// formatParams renders params with sorted keys so output is stable.
func formatParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s:%q", k, params[k])
	}
	return "{" + strings.Join(parts, " ") + "}"
}
