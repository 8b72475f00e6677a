// Package lexer implements a single-pass, AST-free scanner for the named
// exports and re-exported module specifiers of a CommonJS JavaScript module.
package lexer

// cursor walks an immutable source buffer one byte at a time. It never
// copies the buffer; every output byte range is a subrange of src.
//
// pos points at the byte last consumed by advance(), a "current" position
// rather than a "next" position: most helpers below peek at cur() before
// deciding whether to advance past it.
type cursor struct {
	src []byte
	pos int // index of the last-consumed byte; -1 before the first byte
	end int
}

func newCursor(src []byte) *cursor {
	return &cursor{src: src, pos: -1, end: len(src)}
}

// advance consumes the next byte and returns it, or 0 if the buffer is
// exhausted.
func (c *cursor) advance() (byte, bool) {
	c.pos++
	if c.pos >= c.end {
		return 0, false
	}
	return c.src[c.pos], true
}

// cur returns the byte at pos, or 0 if pos is out of range.
func (c *cursor) cur() byte {
	if c.pos < 0 || c.pos >= c.end {
		return 0
	}
	return c.src[c.pos]
}

// at returns the byte at absolute index i, or 0 if out of range.
func (c *cursor) at(i int) byte {
	if i < 0 || i >= c.end {
		return 0
	}
	return c.src[i]
}

// peek returns the byte n positions past pos without consuming it.
func (c *cursor) peek(n int) byte {
	return c.at(c.pos + n)
}

// --- character classifiers -------------------------------------------------

func isLineTerminator(ch byte) bool {
	return ch == '\r' || ch == '\n'
}

// isWhitespaceOrControl matches line terminators, the other C0
// whitespace-ish control bytes (9 through 13), space, and tab.
func isWhitespaceOrControl(ch byte) bool {
	return (ch > 8 && ch < 14) || ch == 32
}

// isPunctuator covers the ASCII punctuator ranges used by keywordStart.
func isPunctuator(ch byte) bool {
	switch {
	case ch == '!' || ch == '%' || ch == '&':
		return true
	case ch > 39 && ch < 48: // ( ) * + , - . /
		return true
	case ch > 57 && ch < 64: // : ; < = > ?
		return true
	case ch == '[' || ch == ']' || ch == '^':
		return true
	case ch > 122 && ch < 127: // { | } ~
		return true
	}
	return false
}

// isExpressionPunctuator reports the punctuators after which a following
// `/` begins a regex literal, excluding
// `)` (handled separately via isParenKeyword) and `}` (handled separately
// via isExpressionTerminator/class detection).
func isExpressionPunctuator(ch byte) bool {
	switch {
	case ch == '!' || ch == '%' || ch == '&':
		return true
	case ch > 39 && ch < 47 && ch != 41: // ( * + , - . but not )
		return true
	case ch > 57 && ch < 64: // : ; < = > ?
		return true
	case ch == '[' || ch == '^':
		return true
	case ch > 122 && ch < 127 && ch != '}': // { | ~ but not }
		return true
	}
	return false
}

func isBrOrWsOrPunctuatorNotDot(ch byte) bool {
	return isWhitespaceOrControl(ch) || (isPunctuator(ch) && ch != '.')
}

func isIdentifierStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$' || ch >= 0x80
}

func isIdentifierChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') || ch == '_' || ch == '$' || ch >= 0x80
}

// matchesAt reports whether src[pos:] starts with want, without allocating.
func (c *cursor) matchesAt(pos int, want string) bool {
	if pos < 0 || pos+len(want) > c.end {
		return false
	}
	return string(c.src[pos:pos+len(want)]) == want
}

// keywordStart reports whether the byte at p begins a bareword keyword: p is
// the start of the buffer, or the byte immediately before it is whitespace/
// line-terminator or a punctuator other than `.` (so `a.export` does not
// qualify as the keyword `export`).
func (c *cursor) keywordStart(p int) bool {
	if p <= 0 {
		return true
	}
	return isBrOrWsOrPunctuatorNotDot(c.at(p - 1))
}

// lineOf returns the 1-based line number of byte offset pos, counting '\n'
// and '\r' as line terminators with a '\r\n' pair counted once.
func lineOf(src []byte, pos int) uint32 {
	line, _ := lineColOf(src, pos)
	return line
}

// lineColOf additionally returns the 1-based byte column of pos within its
// line.
func lineColOf(src []byte, pos int) (uint32, uint32) {
	if pos > len(src) {
		pos = len(src)
	}
	if pos < 0 {
		pos = 0
	}
	line := uint32(1)
	lineStart := 0
	for i := 0; i < pos; i++ {
		switch src[i] {
		case '\n':
			line++
			lineStart = i + 1
		case '\r':
			if i+1 >= pos || src[i+1] != '\n' {
				line++
				lineStart = i + 1
			}
		}
	}
	return line, uint32(pos-lineStart) + 1
}
