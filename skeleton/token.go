package skeleton

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexer token.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenError

	TokenBlank    // _
	TokenLBracket // [
	TokenRBracket // ]
	TokenOperator // rh, al, as, st
	TokenIdent    // 1, 42
	TokenNewline  // \n
)

// String returns the token type name.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "ERROR"
	case TokenBlank:
		return "_"
	case TokenLBracket:
		return "["
	case TokenRBracket:
		return "]"
	case TokenOperator:
		return "OPERATOR"
	case TokenIdent:
		return "IDENT"
	case TokenNewline:
		return "NEWLINE"
	default:
		return "UNKNOWN"
	}
}

// Position is a 1-based line/column location plus a byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexer token.
type Token struct {
	Type  TokenType
	Value string
	Pos   Position
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Value == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Value)
}

// Lexer tokenizes skeleton text. Spaces, tabs and carriage returns are
// ignored; '#' starts a comment that runs to the end of the line.
type Lexer struct {
	input string
	pos   int
	line  int
	col   int
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, line: 1, col: 1}
}

// Tokenize returns all tokens up to and including EOF. On an illegal
// character it stops and returns a *ParseError wrapping ErrSyntax.
func (l *Lexer) Tokenize() ([]Token, error) {
	var out []Token
	for {
		tok := l.next()
		if tok.Type == TokenError {
			return out, &ParseError{Pos: tok.Pos, Msg: fmt.Sprintf("illegal character %q", tok.Value), Err: ErrSyntax}
		}
		out = append(out, tok)
		if tok.Type == TokenEOF {
			return out, nil
		}
	}
}

func (l *Lexer) current() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) advance() byte {
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) skipSpaceAndComments() {
	for l.pos < len(l.input) {
		switch ch := l.input[l.pos]; {
		case ch == ' ' || ch == '\t' || ch == '\r':
			l.advance()
		case ch == '#':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// next returns the next token.
func (l *Lexer) next() Token {
	l.skipSpaceAndComments()
	start := l.current()
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: start}
	}

	ch := l.input[l.pos]
	switch {
	case ch == '\n':
		l.advance()
		return Token{Type: TokenNewline, Pos: start}
	case ch == '_':
		l.advance()
		return Token{Type: TokenBlank, Value: "_", Pos: start}
	case ch == '[':
		l.advance()
		return Token{Type: TokenLBracket, Value: "[", Pos: start}
	case ch == ']':
		l.advance()
		return Token{Type: TokenRBracket, Value: "]", Pos: start}
	case isLetter(ch):
		return Token{Type: TokenOperator, Value: strings.ToLower(l.scan(isLetter)), Pos: start}
	case isDigit(ch):
		return Token{Type: TokenIdent, Value: l.scan(isDigit), Pos: start}
	}

	l.advance()
	return Token{Type: TokenError, Value: string(ch), Pos: start}
}

func (l *Lexer) scan(ok func(byte) bool) string {
	begin := l.pos
	for l.pos < len(l.input) && ok(l.input[l.pos]) {
		l.advance()
	}
	return l.input[begin:l.pos]
}

func isLetter(ch byte) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }
func isDigit(ch byte) bool  { return ch >= '0' && ch <= '9' }
