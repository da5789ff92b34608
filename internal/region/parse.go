package region

import (
	"fmt"

	"github.com/cory-johannsen/regionator/internal/rdl"
)

// FromParseTree builds a Region from a parse tree: region parameters first,
// then one Mod per mod block in source order. Field values are not validated
// here; see Render.
//
// Precondition: tree must be non-nil.
// Postcondition: returns a non-nil Region and a (possibly empty) slice of
// decoder warnings, each prefixed with the block it came from.
func FromParseTree(name string, tree *rdl.Tree, opts ...Option) (*Region, []string) {
	r := New(name, opts...)
	var warnings []string

	params, ws := DecodeParams(tree.RegionParams.Tokens)
	r.Params = params
	for _, w := range ws {
		warnings = append(warnings, fmt.Sprintf("region %q: %s", name, w))
	}

	for _, node := range tree.Mods {
		id := node.Identifier.Text
		core, ws := decodeBlock(node.Params)
		for _, w := range ws {
			warnings = append(warnings, fmt.Sprintf("mod %q params: %s", id, w))
		}
		additional, ws := decodeBlock(node.Additional)
		for _, w := range ws {
			warnings = append(warnings, fmt.Sprintf("mod %q additional params: %s", id, w))
		}
		r.AddMod(id, core, additional)
	}
	return r, warnings
}

// FromRDL parses text and builds a Region named name.
//
// Postcondition: returns a non-nil Region and its warnings, or a *rdl.GrammarError.
func FromRDL(name, text string, opts ...Option) (*Region, []string, error) {
	tree, err := rdl.Parse(text)
	if err != nil {
		return nil, nil, err
	}
	r, warnings := FromParseTree(name, tree, opts...)
	return r, warnings, nil
}

func decodeBlock(b *rdl.Block) (map[string]string, []string) {
	if b == nil {
		return make(map[string]string), nil
	}
	return DecodeParams(b.Tokens)
}
