// Package report renders scan results for the CLI in plain-text, JSON and
// YAML forms. All three views are built from the same FileReport records so
// the formats never drift apart.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"cjslex/lexer"
)

type ExportRecord struct {
	Name string `json:"name" yaml:"name"`
	Line uint32 `json:"line" yaml:"line"`
}

type ReexportRecord struct {
	Specifier string `json:"specifier" yaml:"specifier"`
	Line      uint32 `json:"line" yaml:"line"`
}

// FileReport is the outcome of scanning one file. Error holds the error
// string when the scan failed; Exports and Reexports are nil in that case.
type FileReport struct {
	File      string           `json:"file" yaml:"file"`
	Exports   []ExportRecord   `json:"exports,omitempty" yaml:"exports,omitempty"`
	Reexports []ReexportRecord `json:"reexports,omitempty" yaml:"reexports,omitempty"`
	Error     string           `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorLine uint32           `json:"error_line,omitempty" yaml:"error_line,omitempty"`
	ErrorCol  uint32           `json:"error_col,omitempty" yaml:"error_col,omitempty"`
}

// FromResult copies a lexer result into a FileReport. The lexer's byte
// slices alias the source buffer, which does not outlive the scan here, so
// names are materialized as strings.
func FromResult(file string, result *lexer.Result) FileReport {
	fr := FileReport{File: file}
	for _, e := range result.Exports {
		fr.Exports = append(fr.Exports, ExportRecord{Name: string(e.Name), Line: e.Line})
	}
	for _, r := range result.Reexports {
		fr.Reexports = append(fr.Reexports, ReexportRecord{Specifier: string(r.Specifier), Line: r.Line})
	}
	return fr
}

// FromError builds the failure record for a file.
func FromError(file string, err error) FileReport {
	fr := FileReport{File: file}
	if perr, ok := err.(*lexer.Error); ok {
		fr.Error = perr.Kind.String()
		fr.ErrorLine = perr.Line
		fr.ErrorCol = perr.Col
	} else {
		fr.Error = err.Error()
	}
	return fr
}

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Write renders reports in the requested format. Reports are sorted by file
// path so output is stable regardless of scan order.
func Write(w io.Writer, reports []FileReport, format string) error {
	sorted := make([]FileReport, len(reports))
	copy(sorted, reports)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].File < sorted[j].File })

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sorted)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(sorted)
	case FormatText, "":
		return writeText(w, sorted)
	default:
		return fmt.Errorf("unknown format '%s'. Use %s, %s or %s", format, FormatText, FormatJSON, FormatYAML)
	}
}

func writeText(w io.Writer, reports []FileReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, fr := range reports {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		if fr.Error != "" {
			loc := ""
			if fr.ErrorLine > 0 {
				loc = fmt.Sprintf(" at %d:%d", fr.ErrorLine, fr.ErrorCol)
			}
			fmt.Fprintf(tw, "%s: %s%s\n", fr.File, fr.Error, loc)
			continue
		}
		fmt.Fprintf(tw, "%s: %d exports, %d reexports\n", fr.File, len(fr.Exports), len(fr.Reexports))
		for _, e := range fr.Exports {
			fmt.Fprintf(tw, "  export\t%s\tL%d\n", e.Name, e.Line)
		}
		for _, r := range fr.Reexports {
			fmt.Fprintf(tw, "  reexport\t%s\tL%d\n", r.Specifier, r.Line)
		}
	}
	return tw.Flush()
}

// Summary is the one-line tail printed after a batch scan.
func Summary(reports []FileReport) string {
	files := len(reports)
	failed := 0
	exportCount := 0
	reexportCount := 0
	for _, fr := range reports {
		if fr.Error != "" {
			failed++
			continue
		}
		exportCount += len(fr.Exports)
		reexportCount += len(fr.Reexports)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d files scanned, %d exports, %d reexports", files, exportCount, reexportCount)
	if failed > 0 {
		fmt.Fprintf(&b, ", %d failed", failed)
	}
	return b.String()
}
