package marshal

// Cursor is a forward-only position into the argument tokens.
// One cursor is shared by every marshaller during a parse, so a value
// consumed by one flag is never seen as a token by the parser.
type Cursor struct {
	tokens []string
	pos    int
}

// NewCursor returns a cursor positioned before the first token.
func NewCursor(tokens []string) *Cursor {
	return &Cursor{tokens: tokens}
}

// Next returns the token at the current position and advances past it.
// It returns false once the tokens are exhausted.
func (c *Cursor) Next() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, true
}

// Pos returns the index of the next token to be read.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns how many tokens are left.
func (c *Cursor) Remaining() int { return len(c.tokens) - c.pos }
