package region

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/regionator/internal/rdl"
)

// DecodeParams folds a parameter token stream into a name/value map.
//
// Newline tokens are skipped. Any token containing ':' switches from name to
// value without being stored, quoted strings included. A Semicolon commits the
// pending pair and switches back to name. Any other token replaces
// the pending name or value, so only the last token before a switch is kept.
// The pending pair is not cleared on commit. A repeated name keeps its last value.
//
// Postcondition: returns a non-nil map and one warning per statement whose
// name or value spanned more than one token.
func DecodeParams(tokens []rdl.Token) (map[string]string, []string) {
	params := make(map[string]string)
	var warnings []string

	var name, value string
	var names, values int
	var start rdl.Position
	onName := true
	for _, tok := range tokens {
		switch {
		case tok.Kind == rdl.Newline:
		case tok.Kind == rdl.Colon || strings.Contains(tok.Text, ":"):
			onName = false
		case tok.Kind == rdl.Semicolon:
			params[name] = value
			if names > 1 || values > 1 {
				warnings = append(warnings, fmt.Sprintf(
					"%s: statement %q spans %d name and %d value tokens; keeping the last of each",
					start, name, names, values,
				))
			}
			names, values = 0, 0
			onName = true
		case onName:
			if names == 0 {
				start = tok.Pos
			}
			name = tok.Text
			names++
		default:
			value = tok.Text
			values++
		}
	}
	return params, warnings
}
