package activity

// Cursor allocates digit groups from a block's PER string, strictly left to
// right. Each block extraction owns its own cursor.
type Cursor struct {
	code string
	pos  int
}

// NewCursor returns a cursor positioned at the start of code.
func NewCursor(code string) *Cursor {
	return &Cursor{code: code}
}

// Take consumes the digits, starting at the cursor, whose sum equals span.
// Digits are accumulated until the sum reaches span or a non-digit is met.
// On a mismatch Take returns "" and the cursor does not move, so the same
// digits are offered to the next call.
func (c *Cursor) Take(span int) string {
	sum, end := 0, c.pos
	for end < len(c.code) && sum < span && isDigit(c.code[end]) {
		sum += int(c.code[end] - '0')
		end++
	}
	if sum != span {
		return ""
	}
	taken := c.code[c.pos:end]
	c.pos = end
	return taken
}

// Offset returns the index of the next unconsumed byte.
func (c *Cursor) Offset() int {
	return c.pos
}

// Rest returns the unconsumed tail of the code.
func (c *Cursor) Rest() string {
	return c.code[c.pos:]
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
