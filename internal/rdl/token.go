// Package rdl implements the Region Definition Language grammar: a lexer and
// a recursive-descent parser producing a parse tree of region parameters and
// mod blocks.
package rdl

import "fmt"

// Kind classifies a Token.
type Kind int

const (
	// EOF marks the end of input.
	EOF Kind = iota
	// Word is a bare run of identifier, number, or dotted-reference characters.
	Word
	// String is a double-quoted literal; Token.Text holds the unquoted body.
	String
	// Colon separates a statement name from its value.
	Colon
	// Semicolon terminates a statement.
	Semicolon
	// LBrace opens a block.
	LBrace
	// RBrace closes a block.
	RBrace
	// Newline is a line break. It carries no meaning inside statements.
	Newline
)

var kindNames = map[Kind]string{
	EOF:       "end of input",
	Word:      "word",
	String:    "string",
	Colon:     "':'",
	Semicolon: "';'",
	LBrace:    "'{'",
	RBrace:    "'}'",
	Newline:   "newline",
}

// String returns a human-readable name for k.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Position locates a token in the source text.
//
// Invariant: Line and Column are 1-based; Offset is a 0-based byte offset.
type Position struct {
	Offset int
	Line   int
	Column int
}

// String returns "line L, column C".
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Token is one lexical element of RDL source.
type Token struct {
	Kind Kind
	Text string
	Pos  Position
}

// String returns a diagnostic rendering of the token.
func (t Token) String() string {
	switch t.Kind {
	case Word:
		return t.Text
	case String:
		return fmt.Sprintf("%q", t.Text)
	default:
		return t.Kind.String()
	}
}

// IsAtom reports whether t may appear as a statement name or value.
func (t Token) IsAtom() bool {
	return t.Kind == Word || t.Kind == String
}
