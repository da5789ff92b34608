package rdl

// modsKeyword opens the mods section when followed by '{'.
const modsKeyword = "mods"

// Block is the raw token stream of one parameter block, newlines included.
type Block struct {
	// Pos is the position of the block's first token, or of its opening
	// brace for braced blocks.
	Pos    Position
	Tokens []Token
}

// ModNode is one mod block of the mods section.
//
// Invariant: Identifier.Kind == Word. Additional != nil implies Params != nil.
type ModNode struct {
	Identifier Token
	// Params is the first braced block after the identifier, or nil.
	Params *Block
	// Additional is the second braced block after the identifier, or nil.
	Additional *Block
}

// Tree is the parse result for one RDL source unit.
type Tree struct {
	RegionParams Block
	Mods         []ModNode
}

type parser struct {
	toks []Token
	i    int
}

// Parse parses one complete RDL source unit.
//
// Precondition: text is the full contents of one region source.
// Postcondition: returns a non-nil Tree, or a nil Tree and a *GrammarError
// describing the first nonconformance.
func Parse(text string) (*Tree, error) {
	toks, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	tree, gerr := p.parseSource()
	if gerr != nil {
		return nil, gerr
	}
	return tree, nil
}

func (p *parser) cur() Token { return p.toks[p.i] }

func (p *parser) bump() Token {
	t := p.toks[p.i]
	if t.Kind != EOF {
		p.i++
	}
	return t
}

// peekPastNewlines returns the first non-newline token at or after index i.
func (p *parser) peekPastNewlines(i int) Token {
	for i < len(p.toks)-1 && p.toks[i].Kind == Newline {
		i++
	}
	return p.toks[i]
}

func (p *parser) skipNewlines() {
	for p.cur().Kind == Newline {
		p.i++
	}
}

func (p *parser) atModsSection() bool {
	t := p.cur()
	return t.Kind == Word && t.Text == modsKeyword && p.peekPastNewlines(p.i+1).Kind == LBrace
}

func (p *parser) parseSource() (*Tree, *GrammarError) {
	tree := &Tree{RegionParams: Block{Pos: p.cur().Pos}}

	toks, err := p.parseStatements(func() bool {
		return p.cur().Kind == EOF || p.atModsSection()
	})
	if err != nil {
		return nil, err
	}
	tree.RegionParams.Tokens = toks

	if !p.atModsSection() {
		return nil, errorf(p.cur().Pos, "expected %q section, found %s", modsKeyword, p.cur())
	}
	p.bump()
	p.skipNewlines()
	p.bump() // '{'

	mods, err := p.parseMods()
	if err != nil {
		return nil, err
	}
	tree.Mods = mods

	p.skipNewlines()
	if t := p.cur(); t.Kind != EOF {
		return nil, errorf(t.Pos, "unexpected %s after %q section", t, modsKeyword)
	}
	return tree, nil
}

// parseStatements collects statement tokens until done reports true. The
// collected stream preserves newlines.
func (p *parser) parseStatements(done func() bool) ([]Token, *GrammarError) {
	toks := make([]Token, 0)
	for {
		if p.cur().Kind == Newline {
			toks = append(toks, p.bump())
			continue
		}
		if done() {
			return toks, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		toks = append(toks, stmt...)
	}
}

// parseStatement consumes `atom+ ':' atom+ ';'`, allowing newlines between parts.
func (p *parser) parseStatement() ([]Token, *GrammarError) {
	start := p.cur()
	var toks []Token

	names := 0
	for {
		t := p.cur()
		if t.Kind == Newline {
			toks = append(toks, p.bump())
			continue
		}
		if t.IsAtom() {
			toks = append(toks, p.bump())
			names++
			continue
		}
		if t.Kind != Colon {
			if names == 0 {
				return nil, errorf(t.Pos, "expected parameter name, found %s", t)
			}
			return nil, errorf(t.Pos, "expected ':' after parameter name, found %s", t)
		}
		if names == 0 {
			return nil, errorf(t.Pos, "expected parameter name before ':'")
		}
		toks = append(toks, p.bump())
		break
	}

	values := 0
	for {
		t := p.cur()
		if t.Kind == Newline {
			toks = append(toks, p.bump())
			continue
		}
		if t.IsAtom() {
			toks = append(toks, p.bump())
			values++
			continue
		}
		if t.Kind != Semicolon {
			if t.Kind == EOF || t.Kind == RBrace {
				return nil, errorf(start.Pos, "unterminated statement: expected ';' before %s", t)
			}
			return nil, errorf(t.Pos, "expected ';' after parameter value, found %s", t)
		}
		if values == 0 {
			return nil, errorf(t.Pos, "expected parameter value before ';'")
		}
		toks = append(toks, p.bump())
		return toks, nil
	}
}

// parseMods consumes mod blocks up to and including the section's closing brace.
func (p *parser) parseMods() ([]ModNode, *GrammarError) {
	mods := make([]ModNode, 0)
	for {
		p.skipNewlines()
		t := p.cur()
		switch t.Kind {
		case RBrace:
			p.bump()
			return mods, nil
		case EOF:
			return nil, errorf(t.Pos, "unbalanced braces: %q section is not closed", modsKeyword)
		case Word:
			mod, err := p.parseMod()
			if err != nil {
				return nil, err
			}
			mods = append(mods, mod)
		default:
			return nil, errorf(t.Pos, "expected mod identifier, found %s", t)
		}
	}
}

func (p *parser) parseMod() (ModNode, *GrammarError) {
	id := p.cur()
	if !isIdentifier(id.Text) {
		return ModNode{}, errorf(id.Pos, "malformed mod identifier %q", id.Text)
	}
	p.bump()
	mod := ModNode{Identifier: id}

	for n := 0; ; n++ {
		if p.peekPastNewlines(p.i).Kind != LBrace {
			return mod, nil
		}
		p.skipNewlines()
		if n == 2 {
			return ModNode{}, errorf(p.cur().Pos, "mod %q has more than two parameter blocks", id.Text)
		}
		block, err := p.parseBlock()
		if err != nil {
			return ModNode{}, err
		}
		if n == 0 {
			mod.Params = block
		} else {
			mod.Additional = block
		}
	}
}

// parseBlock consumes `'{' param_block '}'`.
func (p *parser) parseBlock() (*Block, *GrammarError) {
	open := p.bump()
	block := &Block{Pos: open.Pos}
	toks, err := p.parseStatements(func() bool {
		switch p.cur().Kind {
		case RBrace, EOF:
			return true
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	if p.cur().Kind == EOF {
		return nil, errorf(open.Pos, "unbalanced braces: block is not closed")
	}
	p.bump()
	block.Tokens = toks
	return block, nil
}

// isIdentifier reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
