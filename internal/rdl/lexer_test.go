package rdl_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/regionator/internal/rdl"
)

func kinds(toks []rdl.Token) []rdl.Kind {
	out := make([]rdl.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenize_Statement(t *testing.T) {
	toks, err := rdl.Tokenize("north: village.rdl;\n")
	require.NoError(t, err)
	assert.Equal(t, []rdl.Kind{rdl.Word, rdl.Colon, rdl.Word, rdl.Semicolon, rdl.Newline, rdl.EOF}, kinds(toks))
	assert.Equal(t, "north", toks[0].Text)
	assert.Equal(t, "village.rdl", toks[2].Text)
}

func TestTokenize_Positions(t *testing.T) {
	toks, err := rdl.Tokenize("a:1;\n  b : 2;")
	require.NoError(t, err)
	b := toks[5]
	require.Equal(t, "b", b.Text)
	assert.Equal(t, 2, b.Pos.Line)
	assert.Equal(t, 3, b.Pos.Column)
	assert.Equal(t, 7, b.Pos.Offset)
}

func TestTokenize_String(t *testing.T) {
	toks, err := rdl.Tokenize(`text: "Hello: \"World\"";`)
	require.NoError(t, err)
	require.Equal(t, rdl.String, toks[2].Kind)
	assert.Equal(t, `Hello: "World"`, toks[2].Text)
}

func TestTokenize_CommentKeepsNewline(t *testing.T) {
	toks, err := rdl.Tokenize("# header\nx:1;")
	require.NoError(t, err)
	assert.Equal(t, []rdl.Kind{rdl.Newline, rdl.Word, rdl.Colon, rdl.Word, rdl.Semicolon, rdl.EOF}, kinds(toks))
}

func TestTokenize_CRLF(t *testing.T) {
	toks, err := rdl.Tokenize("x:1;\r\ny:2;")
	require.NoError(t, err)
	assert.Equal(t, rdl.Newline, toks[4].Kind)
	assert.Equal(t, 2, toks[5].Pos.Line)
}

func TestTokenize_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  int
		col   int
	}{
		{"bad character", "x: @;", 1, 4},
		{"unterminated string", "x: \"abc\ny;", 1, 4},
		{"bad escape", `x: "a\n";`, 1, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rdl.Tokenize(tc.input)
			require.Error(t, err)
			var gerr *rdl.GrammarError
			require.True(t, errors.As(err, &gerr))
			assert.Equal(t, tc.line, gerr.Pos.Line)
			assert.Equal(t, tc.col, gerr.Pos.Column)
		})
	}
}

// TestTokenize_AlwaysEndsWithEOF verifies every successful tokenization ends
// in exactly one EOF token.
func TestTokenize_AlwaysEndsWithEOF(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := rapid.StringMatching(`[a-z0-9 :;{}\n.]{0,40}`).Draw(rt, "src")
		toks, err := rdl.Tokenize(src)
		require.NoError(rt, err)
		require.NotEmpty(rt, toks)
		assert.Equal(rt, rdl.EOF, toks[len(toks)-1].Kind)
		for _, tok := range toks[:len(toks)-1] {
			assert.NotEqual(rt, rdl.EOF, tok.Kind)
		}
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "';'", rdl.Semicolon.String())
	assert.Equal(t, "Kind(99)", rdl.Kind(99).String())
}
