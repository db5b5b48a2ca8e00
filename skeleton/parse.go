package skeleton

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/versegen/constraint"
)

var (
	// ErrSyntax reports malformed skeleton text.
	ErrSyntax = errors.New("skeleton: syntax error")

	// ErrUnknownOperator reports an operator code with no relation.
	ErrUnknownOperator = errors.New("skeleton: unknown operator")
)

// ParseError represents a parsing error with location.
type ParseError struct {
	Pos Position
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("skeleton: %s at %s", e.Msg, e.Pos)
}

// Unwrap returns ErrSyntax or ErrUnknownOperator.
func (e *ParseError) Unwrap() error { return e.Err }

// Poem is a parsed skeleton. Indices in Constraints are absolute across
// lines, so a constraint may tie words of different lines together.
type Poem struct {
	// LineLengths holds the slot count of each non-empty line.
	LineLengths []int

	// Length is the total slot count.
	Length int

	// Constraints lists one constraint per (operator, id) group that occurs
	// at least twice, in order of first appearance.
	Constraints []constraint.Constraint

	// Unpaired names groups that occur only once, e.g. "rh3". They relate
	// nothing and are left out of Constraints.
	Unpaired []string
}

// Split cuts a flat sequence into lines following p.LineLengths.
// A short sequence yields short or missing trailing lines.
func Split[T any](p *Poem, items []T) [][]T {
	out := make([][]T, 0, len(p.LineLengths))
	at := 0
	for _, n := range p.LineLengths {
		if at >= len(items) {
			break
		}
		end := at + n
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[at:end])
		at = end
	}
	return out
}

// group accumulates the indices of one (operator, id) pair.
type group struct {
	name    string
	rel     constraint.Relation
	indices []int
}

type parser struct {
	toks []Token
	pos  int

	index  int // next slot index
	inLine int // slots in the current line
	order  []string
	groups map[string]*group
	poem   Poem
}

// ParsePoem parses a multi-line skeleton such as
//
//	___[rh1]
//	_[al2]_[al2][rh1]
//
// Each '_' or bracket is one word slot. Blank lines are ignored.
func ParsePoem(text string) (*Poem, error) {
	toks, err := NewLexer(text).Tokenize()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, groups: make(map[string]*group)}
	if err = p.parse(); err != nil {
		return nil, err
	}
	return &p.poem, nil
}

// ParseLine parses a skeleton and returns its total length and constraints.
// Newlines are allowed and simply continue the sequence.
func ParseLine(s string) (int, []constraint.Constraint, error) {
	poem, err := ParsePoem(s)
	if err != nil {
		return 0, nil, err
	}
	return poem.Length, poem.Constraints, nil
}

func (p *parser) peek() Token { return p.toks[p.pos] }

func (p *parser) take() Token {
	t := p.toks[p.pos]
	if t.Type != TokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) fail(t Token, err error, format string, args ...interface{}) error {
	return &ParseError{Pos: t.Pos, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (p *parser) parse() error {
	for {
		t := p.take()
		switch t.Type {
		case TokenEOF:
			p.endLine()
			return p.finish()
		case TokenNewline:
			p.endLine()
		case TokenBlank:
			p.slot()
		case TokenLBracket:
			if err := p.bracket(t); err != nil {
				return err
			}
			p.slot()
		default:
			return p.fail(t, ErrSyntax, "unexpected %s", t)
		}
	}
}

// bracket parses "(OPERATOR IDENT)+ ]" for the slot at p.index.
func (p *parser) bracket(open Token) error {
	if p.peek().Type == TokenRBracket {
		return p.fail(p.peek(), ErrSyntax, "empty brackets")
	}
	for {
		t := p.take()
		switch t.Type {
		case TokenRBracket:
			return nil
		case TokenOperator:
			rel, err := constraint.ParseRelation(t.Value)
			if err != nil {
				return p.fail(t, ErrUnknownOperator, "unknown operator %q", t.Value)
			}
			id := p.take()
			if id.Type != TokenIdent {
				return p.fail(id, ErrSyntax, "operator %q needs an id, got %s", t.Value, id)
			}
			p.add(rel.Code()+id.Value, rel)
		case TokenEOF, TokenNewline:
			return p.fail(open, ErrSyntax, "unclosed bracket")
		default:
			return p.fail(t, ErrSyntax, "unexpected %s in brackets", t)
		}
	}
}

func (p *parser) add(name string, rel constraint.Relation) {
	g, ok := p.groups[name]
	if !ok {
		g = &group{name: name, rel: rel}
		p.groups[name] = g
		p.order = append(p.order, name)
	}
	// "[rh1 rh1]" names the same slot twice; keep it once.
	if n := len(g.indices); n > 0 && g.indices[n-1] == p.index {
		return
	}
	g.indices = append(g.indices, p.index)
}

func (p *parser) slot() {
	p.index++
	p.inLine++
}

func (p *parser) endLine() {
	if p.inLine > 0 {
		p.poem.LineLengths = append(p.poem.LineLengths, p.inLine)
	}
	p.inLine = 0
}

func (p *parser) finish() error {
	p.poem.Length = p.index
	for _, name := range p.order {
		g := p.groups[name]
		if len(g.indices) < 2 {
			p.poem.Unpaired = append(p.poem.Unpaired, name)
			continue
		}
		c, err := constraint.NewConstraint(g.rel, g.indices...)
		if err != nil {
			return fmt.Errorf("skeleton: group %s: %w", name, err)
		}
		p.poem.Constraints = append(p.poem.Constraints, c)
	}
	return nil
}
