package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/silisk/pkg/token"
)

// Lexer tokenizes SQL input.
//
// Malformed input never stops the lexer: it emits an ILLEGAL token and
// remembers why, so the parser can report the real cause instead of an
// unexpected-token message.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based, in bytes)

	illegal map[int]string // offset of ILLEGAL token -> reason
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   1,
	}
	l.readChar()
	return l
}

// readChar advances to the next character. At the end of input ch stays 0
// and the position stays on len(input).
func (l *Lexer) readChar() {
	if l.readPos > 0 {
		if l.pos >= len(l.input) {
			return
		}
		if l.ch == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
	l.pos = l.readPos
	l.readPos++
	if l.pos < len(l.input) {
		l.ch = l.input[l.pos]
	} else {
		l.ch = 0
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token. After the end of input it keeps
// returning EOF.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	pos := l.currentPos()

	switch l.ch {
	case 0:
		if l.atEOF() {
			return token.Token{Type: token.EOF, Pos: pos}
		}
		return l.readIllegal(pos)
	case '+':
		return l.single(token.PLUS, pos)
	case '-':
		return l.single(token.MINUS, pos)
	case '*':
		return l.single(token.STAR, pos)
	case '/':
		return l.single(token.SLASH, pos)
	case '%':
		return l.single(token.PERCENT, pos)
	case '=':
		return l.single(token.EQ, pos)
	case '<':
		switch l.peekChar() {
		case '=':
			return l.double(token.LE, pos)
		case '>':
			return l.double(token.NE, pos)
		default:
			return l.single(token.LT, pos)
		}
	case '>':
		if l.peekChar() == '=' {
			return l.double(token.GE, pos)
		}
		return l.single(token.GT, pos)
	case '.':
		return l.single(token.DOT, pos)
	case ',':
		return l.single(token.COMMA, pos)
	case ';':
		return l.single(token.SEMICOLON, pos)
	case '(':
		return l.single(token.LPAREN, pos)
	case ')':
		return l.single(token.RPAREN, pos)
	case '\'':
		return l.readString(pos)
	default:
		switch {
		case isLetter(l.ch):
			lit := l.readIdentifier()
			return token.Token{Type: token.LookupIdent(lit), Literal: lit, Pos: pos}
		case isDigit(l.ch):
			return l.readNumber(pos)
		default:
			return l.readIllegal(pos)
		}
	}
}

// single consumes a one-byte token.
func (l *Lexer) single(t token.TokenType, pos token.Position) token.Token {
	lit := string(l.ch)
	l.readChar()
	return token.Token{Type: t, Literal: lit, Pos: pos}
}

// double consumes a two-byte operator.
func (l *Lexer) double(t token.TokenType, pos token.Position) token.Token {
	lit := l.input[l.pos : l.pos+2]
	l.readChar()
	l.readChar()
	return token.Token{Type: t, Literal: lit, Pos: pos}
}

// Reason returns why tok was lexed as ILLEGAL, or "" for any other token.
func (l *Lexer) Reason(tok token.Token) string {
	if tok.Type != token.ILLEGAL {
		return ""
	}
	return l.illegal[tok.Pos.Offset]
}

// illegalToken builds an ILLEGAL token spanning input[pos.Offset:l.pos].
func (l *Lexer) illegalToken(pos token.Position, reason string) token.Token {
	if l.illegal == nil {
		l.illegal = make(map[int]string)
	}
	l.illegal[pos.Offset] = reason
	return token.Token{Type: token.ILLEGAL, Literal: l.input[pos.Offset:l.pos], Pos: pos}
}

// readIllegal consumes one character that cannot start a token. A non-ASCII
// character is consumed as a whole rune.
func (l *Lexer) readIllegal(pos token.Position) token.Token {
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	for range size {
		l.readChar()
	}
	return l.illegalToken(pos, fmt.Sprintf(ErrIllegalCharacter, r))
}

// skipWhitespace skips spaces, tabs and line breaks.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readString reads a single-quoted string literal.
// Handles doubled single quotes as escape: 'it''s' -> it's
// A string may not span lines.
func (l *Lexer) readString(pos token.Position) token.Token {
	l.readChar() // skip opening quote

	var result strings.Builder
	for {
		switch {
		case l.atEOF():
			return l.illegalToken(pos, ErrUnterminatedString)
		case l.ch == '\n':
			return l.illegalToken(pos, ErrNewlineInString)
		case l.ch == '\'':
			if l.peekChar() == '\'' {
				result.WriteByte('\'')
				l.readChar() // skip first quote
				l.readChar() // skip second quote
				continue
			}
			l.readChar() // skip closing quote
			return token.Token{Type: token.STRING, Literal: result.String(), Pos: pos}
		default:
			result.WriteByte(l.ch)
			l.readChar()
		}
	}
}

// readIdentifier reads an unquoted identifier or keyword.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads an unsigned numeric literal: 0 or a digit run without a
// leading zero, optionally followed by '.' and at least one digit.
// Anything glued to the literal makes the whole run malformed.
func (l *Lexer) readNumber(pos token.Position) token.Token {
	start := l.pos
	malformed := false

	for isDigit(l.ch) {
		l.readChar()
	}
	if l.input[start] == '0' && l.pos-start > 1 {
		malformed = true // leading zero
	}

	if l.ch == '.' {
		l.readChar() // skip '.'
		if !isDigit(l.ch) {
			malformed = true // fractional part is mandatory
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if isLetter(l.ch) || l.ch == '_' || l.ch == '.' {
		malformed = true
		for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '.' {
			l.readChar()
		}
	}

	lit := l.input[start:l.pos]
	if malformed {
		return l.illegalToken(pos, fmt.Sprintf(ErrInvalidNumber, lit))
	}
	return token.Token{Type: token.NUMBER, Literal: lit, Pos: pos}
}

// isLetter returns true if ch is an ASCII letter.
func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// isDigit returns true if ch is a digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens from the input, ending with EOF.
func Tokenize(input string) []token.Token {
	l := NewLexer(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens
}
