package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/regionator/internal/rdl"
	"github.com/cory-johannsen/regionator/internal/region"
)

func mustTokens(t require.TestingT, src string) []rdl.Token {
	toks, err := rdl.Tokenize(src)
	require.NoError(t, err)
	return toks[:len(toks)-1] // drop EOF
}

func TestDecodeParams_Basic(t *testing.T) {
	params, warnings := region.DecodeParams(mustTokens(t, "x: 10;\ny:20;\n  or : 1 ;"))
	assert.Empty(t, warnings)
	assert.Equal(t, map[string]string{"x": "10", "y": "20", "or": "1"}, params)
}

func TestDecodeParams_Empty(t *testing.T) {
	params, warnings := region.DecodeParams(nil)
	assert.NotNil(t, params)
	assert.Empty(t, params)
	assert.Empty(t, warnings)
}

func TestDecodeParams_LastWriteWins(t *testing.T) {
	params, _ := region.DecodeParams(mustTokens(t, "x:1; x:2;"))
	assert.Equal(t, map[string]string{"x": "2"}, params)
}

func TestDecodeParams_MultiTokenKeepsLast(t *testing.T) {
	params, warnings := region.DecodeParams(mustTokens(t, "display name: Town Square;"))
	assert.Equal(t, map[string]string{"name": "Square"}, params)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `statement "name"`)
	assert.Contains(t, warnings[0], "line 1, column 1")
}

func TestDecodeParams_StringValue(t *testing.T) {
	params, warnings := region.DecodeParams(mustTokens(t, `text: "a; b";`))
	assert.Empty(t, warnings)
	assert.Equal(t, map[string]string{"text": "a; b"}, params)
}

func TestDecodeParams_ColonInStringFlipsMode(t *testing.T) {
	// The string token only switches to value mode, so the semicolon
	// commits the value still pending from the previous statement.
	params, warnings := region.DecodeParams(mustTokens(t, `a: 1; text: "x:y";`))
	assert.Empty(t, warnings)
	assert.Equal(t, map[string]string{"a": "1", "text": "1"}, params)
}

func TestDecodeParams_PendingPairNotCleared(t *testing.T) {
	// A bare ';' re-commits the previous pair rather than an empty one.
	toks := []rdl.Token{
		{Kind: rdl.Word, Text: "a"},
		{Kind: rdl.Colon, Text: ":"},
		{Kind: rdl.Word, Text: "1"},
		{Kind: rdl.Semicolon, Text: ";"},
		{Kind: rdl.Word, Text: "b"},
		{Kind: rdl.Semicolon, Text: ";"},
	}
	params, _ := region.DecodeParams(toks)
	assert.Equal(t, map[string]string{"a": "1", "b": "1"}, params)
}

// TestDecodeParams_SingleTokenStatements verifies that any sequence of
// single-token statements decodes to the map of their last assignments.
func TestDecodeParams_SingleTokenStatements(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 10).Draw(rt, "n")
		var toks []rdl.Token
		want := make(map[string]string)
		for i := 0; i < n; i++ {
			name := rapid.StringMatching(`[a-z_]{1,6}`).Draw(rt, "name")
			value := rapid.StringMatching(`-?[0-9]{1,4}`).Draw(rt, "value")
			want[name] = value
			toks = append(toks,
				rdl.Token{Kind: rdl.Word, Text: name},
				rdl.Token{Kind: rdl.Newline, Text: "\n"},
				rdl.Token{Kind: rdl.Colon, Text: ":"},
				rdl.Token{Kind: rdl.Word, Text: value},
				rdl.Token{Kind: rdl.Semicolon, Text: ";"},
				rdl.Token{Kind: rdl.Newline, Text: "\n"},
			)
		}
		got, warnings := region.DecodeParams(toks)
		assert.Empty(rt, warnings)
		assert.Equal(rt, want, got)
	})
}
