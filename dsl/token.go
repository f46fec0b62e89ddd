package dsl

import "fmt"

// TokenKind identifies the syntactic class of a lexed token.
type TokenKind int

const (
	TokenEndOfInput TokenKind = iota
	TokenIdentifier           // Shape, radius, area
	TokenString               // "..." including the delimiting quotes
	TokenType                 // type
	TokenFunction             // function
	TokenImplement            // implement
	TokenByMove               // by_move
	TokenLParen               // (
	TokenRParen               // )
	TokenEquals               // =
	TokenPipe                 // |
)

var tokenKindNames = map[TokenKind]string{
	TokenEndOfInput: "end of input",
	TokenIdentifier: "identifier",
	TokenString:     "string literal",
	TokenType:       `"type"`,
	TokenFunction:   `"function"`,
	TokenImplement:  `"implement"`,
	TokenByMove:     `"by_move"`,
	TokenLParen:     `"("`,
	TokenRParen:     `")"`,
	TokenEquals:     `"="`,
	TokenPipe:       `"|"`,
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// keywords maps reserved identifier spellings to their token kinds.
var keywords = map[string]TokenKind{
	"type":      TokenType,
	"function":  TokenFunction,
	"implement": TokenImplement,
	"by_move":   TokenByMove,
}

// Token is a single lexical unit of a generator description source file.
// String tokens keep their surrounding quote characters in Lexeme; the
// parser strips them when it stores the payload.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Pos    int
}

func (t Token) String() string {
	return fmt.Sprintf("Token{%v, %q, %d}", t.Kind, t.Lexeme, t.Pos)
}
