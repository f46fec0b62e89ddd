// Package dsl parses seatbelt2 generator descriptions: a small DSL that
// declares polymorphic type hierarchies (abstract types, their variants,
// shared operations) together with verbatim prelude, type-definition and
// postlude blocks destined for the C++ emitter.
package dsl

import (
	"fmt"
	"unicode"
)

// Lexer tokenizes generator description input.
type Lexer struct {
	input   string
	pos     int
	readPos int
	ch      byte
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) skipTrivia() {
	for {
		switch l.ch {
		case ' ', '\t', '\n', '\r', ':', ',':
			// ':' and ',' are member-list sugar: "radius: "double"" lexes
			// the same as "radius "double"".
			l.readChar()
		case '#':
			for l.ch != 0 && l.ch != '\n' {
				l.readChar()
			}
		default:
			return
		}
	}
}

// NextToken returns the next token from the input. After the input is
// exhausted it keeps returning TokenEndOfInput.
func (l *Lexer) NextToken() (Token, error) {
	l.skipTrivia()

	pos := l.pos

	switch {
	case l.ch == 0:
		return Token{Kind: TokenEndOfInput, Pos: pos}, nil
	case l.ch == '(':
		l.readChar()
		return Token{Kind: TokenLParen, Lexeme: "(", Pos: pos}, nil
	case l.ch == ')':
		l.readChar()
		return Token{Kind: TokenRParen, Lexeme: ")", Pos: pos}, nil
	case l.ch == '=':
		l.readChar()
		return Token{Kind: TokenEquals, Lexeme: "=", Pos: pos}, nil
	case l.ch == '|':
		l.readChar()
		return Token{Kind: TokenPipe, Lexeme: "|", Pos: pos}, nil
	case l.ch == '"':
		return l.readString()
	case isIdentifierStart(l.ch):
		lexeme := l.readIdentifier()
		if kind, ok := keywords[lexeme]; ok {
			return Token{Kind: kind, Lexeme: lexeme, Pos: pos}, nil
		}
		return Token{Kind: TokenIdentifier, Lexeme: lexeme, Pos: pos}, nil
	default:
		return Token{}, fmt.Errorf("dsl: unexpected character %q at position %d", l.ch, pos)
	}
}

// readString consumes a quoted literal, quotes included. Payloads are
// verbatim target-language text: they may span lines and no escape
// sequences are interpreted.
func (l *Lexer) readString() (Token, error) {
	start := l.pos
	l.readChar() // opening quote
	for l.ch != 0 && l.ch != '"' {
		l.readChar()
	}
	if l.ch == 0 {
		return Token{}, fmt.Errorf("dsl: unterminated string literal at position %d", start)
	}
	l.readChar() // closing quote
	return Token{Kind: TokenString, Lexeme: l.input[start:l.pos], Pos: start}, nil
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isIdentifierChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func isIdentifierStart(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

func isIdentifierChar(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || unicode.IsDigit(rune(ch)) || ch == '_'
}

// Tokenize returns all tokens from the input, ending with an end-of-input
// token.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEndOfInput {
			return tokens, nil
		}
	}
}
