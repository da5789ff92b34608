package region

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DisplayNameFormat is applied to the region name to produce the context's display name.
const DisplayNameFormat = "%s - Generated by Regionator"

const (
	contextCapacity  = 6
	regionNittyBits  = 3
	itemRefPrefix    = "item-"
	contextRefPrefix = "context-"
)

// neighborKeys lists the directional parameters in neighbors slot order.
var neighborKeys = [4]string{"east", "south", "west", "north"}

// Object is one rendered JSON object: string keys, values of string, int,
// []int, []string, or []Object.
type Object = map[string]any

// Document is the ordered sequence of objects produced for one Region.
type Document []Object

// Name returns the identifier with its first character upper-cased.
func (m *Mod) Name() string {
	r, size := utf8.DecodeRuneInString(m.Identifier)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + m.Identifier[size:]
}

// Ref returns "item-<identifier><id>.<context>".
func (m *Mod) Ref() string {
	return itemRefPrefix + m.Identifier + m.ID + "." + m.region.ContextName()
}

// AsciiParams returns the integer values of AdditionalParams ordered by their
// integer keys. Gaps in the key sequence are closed up.
//
// Postcondition: one entry per distinct integer key, or a *FieldError for the
// first non-integer key or value. When two raw keys denote the same integer
// the lexically greater raw key wins.
func (m *Mod) AsciiParams() ([]int, error) {
	raw := make([]string, 0, len(m.AdditionalParams))
	for k := range m.AdditionalParams {
		raw = append(raw, k)
	}
	sort.Strings(raw)

	byKey := make(map[int]string, len(raw))
	for _, k := range raw {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, &FieldError{Identifier: m.Identifier, Field: "ascii", Value: k, Err: ErrNotInteger}
		}
		byKey[n] = m.AdditionalParams[k]
	}

	keys := make([]int, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]int, 0, len(keys))
	for _, k := range keys {
		v, err := strconv.Atoi(byKey[k])
		if err != nil {
			return nil, &FieldError{Identifier: m.Identifier, Field: fmt.Sprintf("ascii[%d]", k), Value: byKey[k], Err: ErrNotInteger}
		}
		out = append(out, v)
	}
	return out, nil
}

// Render produces the item object for m.
//
// Postcondition: returns an Object with type, ref, name, in, and a one-element
// mods list, or a *FieldError if x, y, or or is missing or not an integer,
// or if style, gr_state, or an additional param is not an integer.
func (m *Mod) Render() (Object, error) {
	body := Object{"type": m.Name()}
	for _, f := range []struct{ src, dst string }{
		{"x", "x"},
		{"y", "y"},
		{"or", "orientation"},
	} {
		v, err := m.requiredInt(f.src)
		if err != nil {
			return nil, err
		}
		body[f.dst] = v
	}
	for _, key := range []string{"style", "gr_state"} {
		if _, ok := m.Params[key]; !ok {
			continue
		}
		v, err := m.requiredInt(key)
		if err != nil {
			return nil, err
		}
		body[key] = v
	}
	if len(m.AdditionalParams) > 0 {
		ascii, err := m.AsciiParams()
		if err != nil {
			return nil, err
		}
		body["ascii"] = ascii
	}

	return Object{
		"type": "item",
		"ref":  m.Ref(),
		"name": m.Name(),
		"in":   m.region.ContextName(),
		"mods": []Object{body},
	}, nil
}

func (m *Mod) requiredInt(key string) (int, error) {
	raw, ok := m.Params[key]
	if !ok {
		return 0, &FieldError{Identifier: m.Identifier, Field: key, Err: ErrMissingField}
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Identifier: m.Identifier, Field: key, Value: raw, Err: ErrNotInteger}
	}
	return v, nil
}

// Neighbors returns the neighbor context refs in [east, south, west, north]
// order. A slot is empty unless its direction parameter is present, in which
// case it is "context-" plus the value's text before the first dot.
func (r *Region) Neighbors() []string {
	out := make([]string, len(neighborKeys))
	for i, key := range neighborKeys {
		v, ok := r.Params[key]
		if !ok {
			continue
		}
		first, _, _ := strings.Cut(v, ".")
		out[i] = contextRefPrefix + first
	}
	return out
}

// DisplayName returns the context's display name.
func (r *Region) DisplayName() string {
	return fmt.Sprintf(DisplayNameFormat, r.Name)
}

// Render produces the full document for r: the context object followed by one
// item object per mod in r.Mods order.
//
// Postcondition: returns a Document of len(r.Mods)+1 objects, or the first
// *FieldError and a nil Document.
func (r *Region) Render() (Document, error) {
	regionMod := Object{
		"town_dir":   "",
		"port_dir":   "",
		"type":       "Region",
		"nitty_bits": regionNittyBits,
		"neighbors":  r.Neighbors(),
	}
	doc := make(Document, 0, len(r.Mods)+1)
	doc = append(doc, Object{
		"type":     "context",
		"ref":      r.ContextName(),
		"capacity": contextCapacity,
		"name":     r.DisplayName(),
		"mods":     []Object{regionMod},
	})
	for _, m := range r.Mods {
		obj, err := m.Render()
		if err != nil {
			return nil, err
		}
		doc = append(doc, obj)
	}
	return doc, nil
}
