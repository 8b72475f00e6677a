package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"cjslex/lexer"
)

func scannedReport(t *testing.T, file, code string) FileReport {
	t.Helper()

	result, err := lexer.Parse([]byte(code))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return FromResult(file, result)
}

func TestFromResultMaterializesStrings(t *testing.T) {
	fr := scannedReport(t, "a.cjs", "exports.foo = 1;\nmodule.exports = require('./dep');")
	// the reset rule dropped nothing here: reexport assignment came second
	if len(fr.Exports) != 1 || fr.Exports[0].Name != "foo" || fr.Exports[0].Line != 1 {
		t.Errorf("exports invalid -> %+v", fr.Exports)
	}
	if len(fr.Reexports) != 1 || fr.Reexports[0].Specifier != "./dep" || fr.Reexports[0].Line != 2 {
		t.Errorf("reexports invalid -> %+v", fr.Reexports)
	}
}

func TestFromErrorKeepsKindAndLocation(t *testing.T) {
	_, err := lexer.Parse([]byte("import 'x';"))
	if err == nil {
		t.Fatal("parse should fail")
	}
	fr := FromError("esm.js", err)
	if fr.Error != "UNEXPECTED_ESM_IMPORT" {
		t.Errorf("error invalid -> %s", fr.Error)
	}
	if fr.ErrorLine != 1 {
		t.Errorf("error line invalid -> %d", fr.ErrorLine)
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	reports := []FileReport{scannedReport(t, "b.cjs", "exports.b = 1;"), scannedReport(t, "a.cjs", "exports.a = 1;")}
	var buf bytes.Buffer
	if err := Write(&buf, reports, FormatJSON); err != nil {
		t.Fatal(err)
	}
	var decoded []FileReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 || decoded[0].File != "a.cjs" {
		t.Errorf("json output not sorted by file -> %+v", decoded)
	}
}

func TestWriteYAML(t *testing.T) {
	reports := []FileReport{scannedReport(t, "a.cjs", "exports.a = 1;")}
	var buf bytes.Buffer
	if err := Write(&buf, reports, FormatYAML); err != nil {
		t.Fatal(err)
	}
	var decoded []FileReport
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 1 || decoded[0].Exports[0].Name != "a" {
		t.Errorf("yaml output invalid -> %+v", decoded)
	}
}

func TestWriteTextIncludesRecords(t *testing.T) {
	reports := []FileReport{scannedReport(t, "a.cjs", "exports.a = 1;\n__exportStar(require('fs'));")}
	var buf bytes.Buffer
	if err := Write(&buf, reports, FormatText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"a.cjs: 1 exports, 1 reexports", "export", "reexport", "fs"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, nil, "xml"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestSummary(t *testing.T) {
	reports := []FileReport{
		scannedReport(t, "a.cjs", "exports.a = 1; exports.b = 2;"),
		{File: "bad.js", Error: "UNEXPECTED_ESM_IMPORT"},
	}
	got := Summary(reports)
	if got != "2 files scanned, 2 exports, 0 reexports, 1 failed" {
		t.Errorf("summary invalid -> %q", got)
	}
}
