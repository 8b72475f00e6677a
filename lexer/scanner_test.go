package lexer

import (
	"strings"
	"testing"
)

func codeToString(code string) string {
	str := "\n\n"

	lines := strings.Split(code, "\n")

	for _, line := range lines {
		str += strings.TrimSpace(line) + "\n"
	}

	return str + "\n\n"
}

func parseForTests(t *testing.T, code string) *Result {
	t.Helper()

	result, err := Parse([]byte(code))
	if err != nil {
		t.Fatalf(`Parse failed %s -> %v`, codeToString(code), err)
	}
	return result
}

func expectExports(t *testing.T, code string, want []string) *Result {
	t.Helper()

	result := parseForTests(t, code)
	got := result.ExportNames()
	if len(got) != len(want) {
		t.Errorf(`Exports invalid %s -> got %v, want %v`, codeToString(code), got, want)
		return result
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf(`Exports invalid %s -> got %v, want %v`, codeToString(code), got, want)
			return result
		}
	}
	return result
}

func expectReexports(t *testing.T, code string, want []string) *Result {
	t.Helper()

	result := parseForTests(t, code)
	got := result.ReexportSpecifiers()
	if len(got) != len(want) {
		t.Errorf(`Reexports invalid %s -> got %v, want %v`, codeToString(code), got, want)
		return result
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf(`Reexports invalid %s -> got %v, want %v`, codeToString(code), got, want)
			return result
		}
	}
	return result
}

func expectParseError(t *testing.T, code string, kind ErrorKind) {
	t.Helper()

	result, err := Parse([]byte(code))
	if err == nil {
		t.Errorf(`Parse should fail %s -> got %d exports`, codeToString(code), len(result.Exports))
		return
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Errorf(`Parse error has wrong type %s -> %T`, codeToString(code), err)
		return
	}
	if perr.Kind != kind {
		t.Errorf(`Parse error invalid %s -> got %s, want %s`, codeToString(code), perr.Kind, kind)
	}
}

// The end-to-end scenarios every conforming scan must get exactly right.

func TestScanBasicExports(t *testing.T) {
	code := `exports.foo = 1; exports.bar = 2;`
	result := expectExports(t, code, []string{"foo", "bar"})
	if len(result.Reexports) != 0 {
		t.Errorf(`Reexports should be empty %s`, codeToString(code))
	}
}

func TestScanObjectLiteralShorthand(t *testing.T) {
	expectExports(t, `module.exports = { a, b, c };`, []string{"a", "b", "c"})
}

func TestScanModuleExportsRequire(t *testing.T) {
	code := `module.exports = require('./dep');`
	result := expectReexports(t, code, []string{"./dep"})
	if len(result.Exports) != 0 {
		t.Errorf(`Exports should be empty %s -> %v`, codeToString(code), result.ExportNames())
	}
}

func TestScanConditionalExportsAndStar(t *testing.T) {
	code := `0 && (module.exports = {a,b,c}) && __exportStar(require('fs'));`
	expectExports(t, code, []string{"a", "b", "c"})
	expectReexports(t, code, []string{"fs"})
}

func TestScanESMImportFails(t *testing.T) {
	expectParseError(t, `import 'x';`, ErrUnexpectedESMImport)
}

func TestScanImportMetaFails(t *testing.T) {
	expectParseError(t, `import.meta.url`, ErrUnexpectedESMImportMeta)
}

func TestScanDefinePropertyEnumerable(t *testing.T) {
	code := `Object.defineProperty(exports,'a',{enumerable:true,get:function(){return q.p;}}); ` +
		`Object.defineProperty(exports,'b',{enumerable:false,get:function(){return q.p;}}); ` +
		`Object.defineProperty(exports,"c",{get:function(){return q['p'];}});`
	expectExports(t, code, []string{"a", "c"})
}

func TestScanShebang(t *testing.T) {
	code := "#! hashbang\nexports.asdf = 'asdf';"
	result := expectExports(t, code, []string{"asdf"})
	if result.Exports[0].Line != 2 {
		t.Errorf(`Export line invalid %s -> got %d, want 2`, codeToString(code), result.Exports[0].Line)
	}
}

func TestScanShebangOnly(t *testing.T) {
	expectExports(t, "#!", []string{})
}

func TestScanEmptyInput(t *testing.T) {
	result := parseForTests(t, "")
	if len(result.Exports) != 0 || len(result.Reexports) != 0 {
		t.Errorf(`Empty input should produce empty outputs -> %v, %v`, result.ExportNames(), result.ReexportSpecifiers())
	}
}

func TestScanWhitespaceOnly(t *testing.T) {
	result := parseForTests(t, " \t\r\n  \n")
	if len(result.Exports) != 0 || len(result.Reexports) != 0 {
		t.Errorf(`Whitespace input should produce empty outputs`)
	}
}

func TestScanESMExportFails(t *testing.T) {
	expectParseError(t, `export default foo;`, ErrUnexpectedESMExport)
	expectParseError(t, `export { a };`, ErrUnexpectedESMExport)
	expectParseError(t, `export const a = 1;`, ErrUnexpectedESMExport)
}

func TestScanExportsBarewordIsFine(t *testing.T) {
	// `exports` is an identifier, not the ESM keyword
	expectExports(t, `exports.a = 1;`, []string{"a"})
	result := parseForTests(t, `var exportsList = [];`)
	if len(result.Exports) != 0 {
		t.Errorf(`exportsList should not export -> %v`, result.ExportNames())
	}
}

func TestScanDynamicImportIsHarmless(t *testing.T) {
	expectExports(t, `import('./mod').then(function (m) {}); exports.a = 1;`, []string{"a"})
}

func TestScanImportMetaLookalike(t *testing.T) {
	// import.metaData is a plain member access, not import.meta
	expectExports(t, `import.metaData; exports.a = 1;`, []string{"a"})
}

func TestScanMemberImportIsNotKeyword(t *testing.T) {
	expectExports(t, `foo.import('x'); exports.a = 1;`, []string{"a"})
	expectExports(t, `a.export = 1; exports.b = 2;`, []string{"b"})
}

func TestScanUnterminatedString(t *testing.T) {
	expectParseError(t, `var a = 'abc`, ErrUnterminatedStringLiteral)
	expectParseError(t, "var a = 'ab\nc'", ErrUnterminatedStringLiteral)
}

func TestScanUnterminatedTemplate(t *testing.T) {
	expectParseError(t, "var a = `abc", ErrUnterminatedTemplateString)
	expectParseError(t, "var a = `abc${1}", ErrUnterminatedTemplateString)
}

func TestScanUnterminatedRegex(t *testing.T) {
	expectParseError(t, `var re = /abc`, ErrUnterminatedRegex)
	expectParseError(t, `var re = /a[bc;`, ErrUnterminatedRegexCharacterClass)
}

func TestScanStrayBrackets(t *testing.T) {
	expectParseError(t, `)`, ErrUnexpectedParen)
	expectParseError(t, `}`, ErrUnexpectedBrace)
	expectParseError(t, `(a`, ErrUnterminatedParen)
	expectParseError(t, `{a: 1`, ErrUnterminatedBrace)
}

func TestScanErrorLocation(t *testing.T) {
	_, err := Parse([]byte("var a = 1;\nimport 'x';"))
	if err == nil {
		t.Fatal("Parse should fail")
	}
	perr := err.(*Error)
	if perr.Kind != ErrUnexpectedESMImport {
		t.Errorf("error kind invalid -> %s", perr.Kind)
	}
	if perr.Line != 2 {
		t.Errorf("error line invalid -> got %d, want 2", perr.Line)
	}
}

func TestScanTemplateExpressionExports(t *testing.T) {
	expectExports(t, "var s = `a${exports.q = 1}b`;", []string{"q"})
}

func TestScanNestedTemplates(t *testing.T) {
	expectExports(t, "var s = `a${`inner${exports.x = 1}`}b`; exports.y = 2;", []string{"x", "y"})
}

func TestScanRegexVsDivision(t *testing.T) {
	// division must not swallow the following exports
	expectExports(t, `const a = b / c / d; exports.x = 1;`, []string{"x"})
	// a regex after if (...) contains what would otherwise be an unterminated string
	expectExports(t, `if (a) /b'c/.test(a); exports.y = 1;`, []string{"y"})
	// regex after an opening paren
	expectExports(t, `var m = a.split(/,'/); exports.z = 1;`, []string{"z"})
}

func TestScanClassBodyRegex(t *testing.T) {
	code := "class A { m() { return 1 } }\n/regex'/.test(s); exports.a = 1;"
	expectExports(t, code, []string{"a"})
}

func TestScanCommentsBetweenTokens(t *testing.T) {
	expectExports(t, "exports/* c */./* c */foo/* c */=/* c */1;", []string{"foo"})
	expectExports(t, "module/* c */./* c */exports = { a };", []string{"a"})
	expectExports(t, "exports\n// comment\n.bar = 2;", []string{"bar"})
}

func TestScanLastErrorSlot(t *testing.T) {
	if _, err := Parse([]byte(`import 'x';`)); err == nil {
		t.Fatal("Parse should fail")
	}
	last := LastError()
	if last == nil || last.Kind != ErrUnexpectedESMImport {
		t.Errorf("LastError invalid -> %v", last)
	}

	parseForTests(t, `exports.ok = 1;`)
	if LastError() != nil {
		t.Errorf("LastError should be nil after success -> %v", LastError())
	}
}

func TestScanErrorString(t *testing.T) {
	err := &Error{Kind: ErrUnterminatedRegex, Line: 3, Col: 7}
	if err.Error() != "UNTERMINATED_REGEX at line 3, column 7" {
		t.Errorf("Error() invalid -> %q", err.Error())
	}
	bare := &Error{Kind: ErrUnexpectedBrace}
	if bare.Error() != "UNEXPECTED_BRACE" {
		t.Errorf("Error() invalid -> %q", bare.Error())
	}
}
