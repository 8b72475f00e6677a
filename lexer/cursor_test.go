package lexer

import "testing"

func TestLineOfCountsTerminators(t *testing.T) {
	src := []byte("a\nb\r\nc\rd")
	cases := []struct {
		pos  int
		want uint32
	}{
		{0, 1}, // a
		{2, 2}, // b
		{5, 3}, // c
		{7, 4}, // d
	}
	for _, c := range cases {
		if got := lineOf(src, c.pos); got != c.want {
			t.Errorf("lineOf(%d) = %d, want %d", c.pos, got, c.want)
		}
	}
}

func TestLineColOf(t *testing.T) {
	src := []byte("ab\ncde")
	line, col := lineColOf(src, 4)
	if line != 2 || col != 2 {
		t.Errorf("lineColOf(4) = %d:%d, want 2:2", line, col)
	}
	line, col = lineColOf(src, 0)
	if line != 1 || col != 1 {
		t.Errorf("lineColOf(0) = %d:%d, want 1:1", line, col)
	}
}

func TestKeywordStartBoundaries(t *testing.T) {
	c := newCursor([]byte("foo.import import a,import"))
	if c.keywordStart(4) {
		t.Error("member access after '.' should not be a keyword start")
	}
	if !c.keywordStart(11) {
		t.Error("word after space should be a keyword start")
	}
	if !c.keywordStart(0) {
		t.Error("start of buffer should be a keyword start")
	}
	if !c.keywordStart(20) {
		t.Error("word after ',' should be a keyword start")
	}
}

func TestIdentifierClassifiersAcceptHighBytes(t *testing.T) {
	// bytes >= 0x80 are identifier characters: non-ASCII identifiers pass
	// through without any UTF-8 decoding
	if !isIdentifierStart(0xc3) || !isIdentifierChar(0xa9) {
		t.Error("high bytes should classify as identifier characters")
	}
	if isIdentifierStart('1') {
		t.Error("digit should not start an identifier")
	}
	if !isIdentifierChar('1') {
		t.Error("digit should continue an identifier")
	}
}

func TestNonASCIIExportName(t *testing.T) {
	expectExports(t, "exports.caf\xc3\xa9 = 1;", []string{"caf\xc3\xa9"})
}

func TestExpressionPunctuatorExcludesClosers(t *testing.T) {
	if isExpressionPunctuator(')') || isExpressionPunctuator('}') || isExpressionPunctuator(']') {
		t.Error("closing brackets are handled separately from expression punctuators")
	}
	for _, ch := range []byte("!%&(*+,-.:;<=>?[^{|~") {
		if !isExpressionPunctuator(ch) {
			t.Errorf("%q should be an expression punctuator", ch)
		}
	}
}
