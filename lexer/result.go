package lexer

// Export is a single named-export record. Name aliases the source buffer
// passed to Parse; it outlives the Result but not the caller's buffer.
type Export struct {
	Name []byte
	Line uint32
}

// Reexport is a single re-exported module specifier, the raw bytes between
// its surrounding quotes.
type Reexport struct {
	Specifier []byte
	Line      uint32
}

// Result is the populated output of a successful Parse: the deduplicated,
// first-recognition-ordered list of named exports, and the source-ordered,
// non-deduplicated list of re-export specifiers.
type Result struct {
	Exports   []Export
	Reexports []Reexport
}

// ExportNames returns the export names as strings, in first-recognition
// order. Provided for callers that don't need zero-copy byte slices.
func (r *Result) ExportNames() []string {
	names := make([]string, len(r.Exports))
	for i, e := range r.Exports {
		names[i] = string(e.Name)
	}
	return names
}

// ReexportSpecifiers returns the re-export specifiers as strings, in source
// order, duplicates included.
func (r *Result) ReexportSpecifiers() []string {
	specs := make([]string, len(r.Reexports))
	for i, re := range r.Reexports {
		specs[i] = string(re.Specifier)
	}
	return specs
}

func (r *Result) addExport(name []byte, line uint32) {
	for _, existing := range r.Exports {
		if string(existing.Name) == string(name) {
			return
		}
	}
	r.Exports = append(r.Exports, Export{Name: name, Line: line})
}

func (r *Result) addReexport(specifier []byte, line uint32) {
	r.Reexports = append(r.Reexports, Reexport{Specifier: specifier, Line: line})
}

// clearReexports implements the "module.exports = …" reset rule:
// re-exports accumulated so far are dropped the moment a new assignment to
// module.exports is recognized (at any bracket depth), before its right-hand
// side is parsed.
func (r *Result) clearReexports() {
	r.Reexports = r.Reexports[:0]
}
