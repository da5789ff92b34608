// Package neohabitat describes the content loader's region document schema
// and checks serialised documents against it before they are written.
package neohabitat

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a decoded region document: one context followed by its items.
type Document struct {
	Context Context
	Items   []Item
}

// Context is the region-level container object.
type Context struct {
	Type     string
	Ref      string
	Capacity int
	Name     string
	Mods     []RegionMod
}

// RegionMod is the single mod carried by a Context.
type RegionMod struct {
	Type      string
	TownDir   string
	PortDir   string
	NittyBits int
	Neighbors []string
}

// Item is one placed object.
type Item struct {
	Type string
	Ref  string
	Name string
	In   string
	Mods []ItemMod
}

// ItemMod is the body of an Item. Style and GrState are nil when absent.
type ItemMod struct {
	Type        string
	X           int
	Y           int
	Orientation int
	Style       *int
	GrState     *int
	Ascii       []int
}

// element is the union of every object shape in a document. Pointer fields
// distinguish absent keys from zero values.
type element struct {
	Type     string       `json:"type" yaml:"type"`
	Ref      string       `json:"ref" yaml:"ref"`
	Name     string       `json:"name" yaml:"name"`
	In       *string      `json:"in" yaml:"in"`
	Capacity *int         `json:"capacity" yaml:"capacity"`
	Mods     []elementMod `json:"mods" yaml:"mods"`
}

type elementMod struct {
	Type        string   `json:"type" yaml:"type"`
	TownDir     *string  `json:"town_dir" yaml:"town_dir"`
	PortDir     *string  `json:"port_dir" yaml:"port_dir"`
	NittyBits   *int     `json:"nitty_bits" yaml:"nitty_bits"`
	Neighbors   []string `json:"neighbors" yaml:"neighbors"`
	X           *int     `json:"x" yaml:"x"`
	Y           *int     `json:"y" yaml:"y"`
	Orientation *int     `json:"orientation" yaml:"orientation"`
	Style       *int     `json:"style" yaml:"style"`
	GrState     *int     `json:"gr_state" yaml:"gr_state"`
	Ascii       []int    `json:"ascii" yaml:"ascii"`
}

// LoadDocument decodes and validates a JSON region document.
//
// Precondition: data must be a JSON array of objects.
// Postcondition: returns a validated Document or a non-nil error listing every violation.
func LoadDocument(data []byte) (*Document, error) {
	var elems []element
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("parsing document JSON: %w", err)
	}
	return build(elems)
}

// LoadDocumentYAML decodes and validates a YAML region document.
//
// Precondition: data must be a YAML sequence of mappings.
// Postcondition: returns a validated Document or a non-nil error listing every violation.
func LoadDocumentYAML(data []byte) (*Document, error) {
	var elems []element
	if err := yaml.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("parsing document YAML: %w", err)
	}
	return build(elems)
}

func build(elems []element) (*Document, error) {
	if len(elems) == 0 {
		return nil, fmt.Errorf("validating document: document is empty")
	}
	var errs []string

	ctxElem := elems[0]
	doc := &Document{Context: Context{Type: ctxElem.Type, Ref: ctxElem.Ref, Name: ctxElem.Name}}
	errs = append(errs, validateContext(ctxElem)...)
	if ctxElem.Capacity != nil {
		doc.Context.Capacity = *ctxElem.Capacity
	}
	for _, m := range ctxElem.Mods {
		rm := RegionMod{Type: m.Type, Neighbors: m.Neighbors}
		if m.TownDir != nil {
			rm.TownDir = *m.TownDir
		}
		if m.PortDir != nil {
			rm.PortDir = *m.PortDir
		}
		if m.NittyBits != nil {
			rm.NittyBits = *m.NittyBits
		}
		doc.Context.Mods = append(doc.Context.Mods, rm)
	}

	doc.Items = make([]Item, 0, len(elems)-1)
	for i, e := range elems[1:] {
		errs = append(errs, validateItem(i+1, e, ctxElem.Ref)...)
		item := Item{Type: e.Type, Ref: e.Ref, Name: e.Name}
		if e.In != nil {
			item.In = *e.In
		}
		for _, m := range e.Mods {
			im := ItemMod{Type: m.Type, Style: m.Style, GrState: m.GrState, Ascii: m.Ascii}
			if m.X != nil {
				im.X = *m.X
			}
			if m.Y != nil {
				im.Y = *m.Y
			}
			if m.Orientation != nil {
				im.Orientation = *m.Orientation
			}
			item.Mods = append(item.Mods, im)
		}
		doc.Items = append(doc.Items, item)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("validating document: %s", strings.Join(errs, "; "))
	}
	return doc, nil
}

func validateContext(e element) []string {
	var errs []string
	if e.Type != "context" {
		errs = append(errs, fmt.Sprintf("element 0: type must be \"context\", got %q", e.Type))
	}
	if !strings.HasPrefix(e.Ref, "context-") {
		errs = append(errs, fmt.Sprintf("element 0: ref %q must start with \"context-\"", e.Ref))
	}
	if e.Capacity == nil {
		errs = append(errs, "element 0: capacity must be present")
	}
	if e.Name == "" {
		errs = append(errs, "element 0: name must not be empty")
	}
	if len(e.Mods) != 1 {
		errs = append(errs, fmt.Sprintf("element 0: must carry exactly one mod, got %d", len(e.Mods)))
		return errs
	}
	m := e.Mods[0]
	if m.Type != "Region" {
		errs = append(errs, fmt.Sprintf("element 0: mod type must be \"Region\", got %q", m.Type))
	}
	if m.TownDir == nil || m.PortDir == nil || m.NittyBits == nil {
		errs = append(errs, "element 0: region mod must carry town_dir, port_dir and nitty_bits")
	}
	if len(m.Neighbors) != 4 {
		errs = append(errs, fmt.Sprintf("element 0: neighbors must have 4 slots, got %d", len(m.Neighbors)))
	}
	for i, n := range m.Neighbors {
		if n != "" && !strings.HasPrefix(n, "context-") {
			errs = append(errs, fmt.Sprintf("element 0: neighbor %d %q must be empty or start with \"context-\"", i, n))
		}
	}
	return errs
}

func validateItem(idx int, e element, contextRef string) []string {
	var errs []string
	if e.Type != "item" {
		errs = append(errs, fmt.Sprintf("element %d: type must be \"item\", got %q", idx, e.Type))
	}
	if e.In == nil || *e.In != contextRef {
		errs = append(errs, fmt.Sprintf("element %d: in must equal %q", idx, contextRef))
	}
	if !strings.HasPrefix(e.Ref, "item-") || !strings.HasSuffix(e.Ref, "."+contextRef) {
		errs = append(errs, fmt.Sprintf("element %d: ref %q must match item-<id>.%s", idx, e.Ref, contextRef))
	}
	if len(e.Mods) != 1 {
		errs = append(errs, fmt.Sprintf("element %d: must carry exactly one mod, got %d", idx, len(e.Mods)))
		return errs
	}
	m := e.Mods[0]
	if m.Type != e.Name {
		errs = append(errs, fmt.Sprintf("element %d: mod type %q must equal name %q", idx, m.Type, e.Name))
	}
	if m.X == nil || m.Y == nil || m.Orientation == nil {
		errs = append(errs, fmt.Sprintf("element %d: mod must carry x, y and orientation", idx))
	}
	return errs
}
