package lexer

// This file holds the backwards keyword probes behind the regex-vs-division
// decision. They all read to the LEFT of a position the main loop has
// already visited, so they never move the cursor.

// readPrecedingKeyword reports whether the bytes ending at p spell keyword,
// with a keyword boundary on the left.
func (s *scanner) readPrecedingKeyword(p int, keyword string) bool {
	start := p - len(keyword) + 1
	if start < 0 {
		return false
	}
	return s.c.matchesAt(start, keyword) && (start == 0 || isBrOrWsOrPunctuatorNotDot(s.c.at(start-1)))
}

// isExpressionKeyword reports whether the bareword ending at p is one of the
// keywords after which a `/` begins a regex literal: void, yield, in, typeof,
// instanceof, case, else, delete, return, do, debugger, await, throw, new.
// The dispatch works backwards from the last byte, the cheapest test first.
func (s *scanner) isExpressionKeyword(p int) bool {
	c := s.c
	switch c.at(p) {
	case 'd':
		switch c.at(p - 1) {
		case 'i':
			return s.readPrecedingKeyword(p-2, "vo")
		case 'l':
			return s.readPrecedingKeyword(p-2, "yie")
		}
	case 'e':
		switch c.at(p - 1) {
		case 's':
			switch c.at(p - 2) {
			case 'l':
				return p-3 >= 0 && c.at(p-3) == 'e' && c.keywordStart(p-3)
			case 'a':
				return p-3 >= 0 && c.at(p-3) == 'c' && c.keywordStart(p-3)
			}
		case 't':
			return s.readPrecedingKeyword(p-2, "dele")
		}
	case 'f':
		if c.at(p-1) != 'o' || c.at(p-2) != 'e' {
			return false
		}
		switch c.at(p - 3) {
		case 'c':
			return s.readPrecedingKeyword(p-4, "instan")
		case 'p':
			return s.readPrecedingKeyword(p-4, "ty")
		}
	case 'n':
		return (p-1 >= 0 && c.at(p-1) == 'i' && c.keywordStart(p-1)) ||
			s.readPrecedingKeyword(p-1, "retur")
	case 'o':
		return p-1 >= 0 && c.at(p-1) == 'd' && c.keywordStart(p-1)
	case 'r':
		return s.readPrecedingKeyword(p-1, "debugge")
	case 't':
		return s.readPrecedingKeyword(p-1, "awai")
	case 'w':
		switch c.at(p - 1) {
		case 'e':
			return p-2 >= 0 && c.at(p-2) == 'n' && c.keywordStart(p-2)
		case 'o':
			return s.readPrecedingKeyword(p-2, "thr")
		}
	}
	return false
}

// isParenKeyword reports whether the token ending at p is while/for/if, so
// that a `/` after the matching `)` reads as a regex literal.
func (s *scanner) isParenKeyword(p int) bool {
	return s.readPrecedingKeyword(p, "while") ||
		s.readPrecedingKeyword(p, "for") ||
		s.readPrecedingKeyword(p, "if")
}

// isExpressionTerminator reports whether the token ending at p terminates an
// expression statement (`;`, `)`, `=>`, catch, finally, else), so that the
// brace it precedes opens a block rather than an object literal.
func (s *scanner) isExpressionTerminator(p int) bool {
	switch s.c.at(p) {
	case '>':
		return s.c.at(p-1) == '='
	case ';', ')':
		return true
	case 'h':
		return s.readPrecedingKeyword(p-1, "catc")
	case 'y':
		return s.readPrecedingKeyword(p-1, "finall")
	case 'e':
		return s.readPrecedingKeyword(p-1, "els")
	}
	return false
}
