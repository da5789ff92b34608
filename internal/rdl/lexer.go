package rdl

import (
	"strings"
	"unicode/utf8"
)

// lexer splits RDL source into tokens.
type lexer struct {
	src  string
	off  int
	line int
	col  int
}

// Tokenize splits text into tokens, terminated by a single EOF token.
//
// Precondition: text is UTF-8.
// Postcondition: returns a token slice ending in EOF, or a *GrammarError
// locating the first character that cannot start a token.
func Tokenize(text string) ([]Token, error) {
	lx := &lexer{src: text, line: 1, col: 1}
	var toks []Token
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

func (lx *lexer) pos() Position {
	return Position{Offset: lx.off, Line: lx.line, Column: lx.col}
}

func (lx *lexer) peek() (rune, int) {
	if lx.off >= len(lx.src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(lx.src[lx.off:])
}

func (lx *lexer) advance(r rune, size int) {
	lx.off += size
	if r == '\n' {
		lx.line++
		lx.col = 1
		return
	}
	lx.col++
}

func (lx *lexer) next() (Token, error) {
	for {
		r, size := lx.peek()
		if size == 0 {
			return Token{Kind: EOF, Pos: lx.pos()}, nil
		}
		switch {
		case r == ' ' || r == '\t' || r == '\r':
			lx.advance(r, size)
			continue
		case r == '#':
			for {
				r, size = lx.peek()
				if size == 0 || r == '\n' {
					break
				}
				lx.advance(r, size)
			}
			continue
		}

		start := lx.pos()
		switch r {
		case '\n':
			lx.advance(r, size)
			return Token{Kind: Newline, Text: "\n", Pos: start}, nil
		case ':':
			lx.advance(r, size)
			return Token{Kind: Colon, Text: ":", Pos: start}, nil
		case ';':
			lx.advance(r, size)
			return Token{Kind: Semicolon, Text: ";", Pos: start}, nil
		case '{':
			lx.advance(r, size)
			return Token{Kind: LBrace, Text: "{", Pos: start}, nil
		case '}':
			lx.advance(r, size)
			return Token{Kind: RBrace, Text: "}", Pos: start}, nil
		case '"':
			return lx.quoted(start)
		}

		if !isWordRune(r) {
			return Token{}, errorf(start, "unexpected character %q", r)
		}
		for {
			r, size = lx.peek()
			if size == 0 || !isWordRune(r) {
				break
			}
			lx.advance(r, size)
		}
		return Token{Kind: Word, Text: lx.src[start.Offset:lx.off], Pos: start}, nil
	}
}

// quoted consumes a double-quoted string starting at the opening quote.
func (lx *lexer) quoted(start Position) (Token, error) {
	r, size := lx.peek()
	lx.advance(r, size)

	var b strings.Builder
	for {
		r, size = lx.peek()
		switch {
		case size == 0 || r == '\n':
			return Token{}, errorf(start, "unterminated string")
		case r == '"':
			lx.advance(r, size)
			return Token{Kind: String, Text: b.String(), Pos: start}, nil
		case r == '\\':
			lx.advance(r, size)
			esc, escSize := lx.peek()
			if escSize == 0 || (esc != '"' && esc != '\\') {
				return Token{}, errorf(lx.pos(), "invalid escape in string")
			}
			lx.advance(esc, escSize)
			b.WriteRune(esc)
		default:
			lx.advance(r, size)
			b.WriteRune(r)
		}
	}
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '_', '.', '-', '+', '/':
		return true
	}
	return false
}
