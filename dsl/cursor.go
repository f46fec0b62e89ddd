package dsl

// Cursor is a forward-only reader over a fixed token sequence. It is the
// only parser state; productions advance it exclusively through Expect, so
// no unvalidated skip can occur and no backtracking exists.
type Cursor struct {
	tokens []Token
	pos    int
}

// NewCursor wraps an already-materialized token sequence. The sequence is
// never mutated; running off its end behaves like end-of-input even without
// an explicit terminator token.
func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// AtEnd reports whether the cursor is at or past end-of-input. An explicit
// end-of-input token counts as terminal.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.tokens) || c.tokens[c.pos].Kind == TokenEndOfInput
}

// Current returns the token at the cursor position without advancing.
func (c *Cursor) Current() (Token, error) {
	if c.AtEnd() {
		return Token{}, ErrUnexpectedEndOfInput
	}
	return c.tokens[c.pos], nil
}

// kind returns the current token's kind, or TokenEndOfInput when exhausted.
// Productions dispatch on this without having to handle a sentinel error.
func (c *Cursor) kind() TokenKind {
	if c.AtEnd() {
		return TokenEndOfInput
	}
	return c.tokens[c.pos].Kind
}

// Peek returns the token after the current one, if any.
func (c *Cursor) Peek() (Token, bool) {
	if c.AtEnd() || c.pos+1 >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[c.pos+1], true
}

// Expect consumes and returns the current token if it has the given kind.
func (c *Cursor) Expect(kind TokenKind) (Token, error) {
	if c.AtEnd() {
		return Token{}, ErrUnexpectedEndOfInput
	}
	tok := c.tokens[c.pos]
	if tok.Kind != kind {
		return Token{}, &UnexpectedTokenError{
			Expected: kind,
			Actual:   tok.Kind,
			Lexeme:   tok.Lexeme,
			Pos:      tok.Pos,
		}
	}
	c.pos++
	return tok, nil
}

// advance moves past the current token unconditionally. Only used after the
// caller has already dispatched on the current kind.
func (c *Cursor) advance() {
	if !c.AtEnd() {
		c.pos++
	}
}
