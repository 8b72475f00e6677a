// Package main builds the C ABI for the scanner as a c-shared library:
//
//	go build -buildmode=c-shared -o libcjslex.so ./cmd/libcjslex
//
// The surface mirrors the primary Go API through an opaque handle: one parse
// per handle, index-based accessors, a process-wide last-error slot for
// callers that only see the absence of a result. Export names and specifiers
// are copied onto the C heap at parse time, so they stay valid for exactly
// as long as the handle — callers never need to keep the input buffer alive.
package main

/*
#include <stdint.h>
#include <stdlib.h>

typedef struct {
  const char* data;
  size_t length;
} cjslex_string;

typedef struct {
  int major;
  int minor;
  int revision;
} cjslex_version_components;

typedef struct {
  uint32_t line;
  uint32_t column;
} cjslex_error_loc;
*/
import "C"

import (
	"runtime/cgo"
	"sync"
	"unsafe"

	"cjslex/lexer"
)

type record struct {
	data *C.char
	len  C.size_t
	line C.uint32_t
}

type analysis struct {
	valid     bool
	exports   []record
	reexports []record
}

func newRecord(bytes []byte, line uint32) record {
	return record{
		data: (*C.char)(C.CBytes(bytes)),
		len:  C.size_t(len(bytes)),
		line: C.uint32_t(line),
	}
}

func (a *analysis) release() {
	for _, r := range a.exports {
		C.free(unsafe.Pointer(r.data))
	}
	for _, r := range a.reexports {
		C.free(unsafe.Pointer(r.data))
	}
	a.exports = nil
	a.reexports = nil
}

func emptyString() C.cjslex_string {
	return C.cjslex_string{data: nil, length: 0}
}

// lookup resolves a handle to its analysis, returning nil for the zero
// handle, foreign handles, and handles already freed (cgo.Handle panics on
// those rather than returning an error).
func lookup(handle C.uintptr_t) (a *analysis) {
	if handle == 0 {
		return nil
	}
	defer func() {
		if recover() != nil {
			a = nil
		}
	}()
	value, ok := cgo.Handle(handle).Value().(*analysis)
	if !ok {
		return nil
	}
	return value
}

//export cjslex_parse_commonjs
func cjslex_parse_commonjs(input *C.char, length C.size_t, outErr *C.cjslex_error_loc) C.uintptr_t {
	if outErr != nil {
		outErr.line = 0
		outErr.column = 0
	}

	var src []byte
	if input != nil && length > 0 {
		src = C.GoBytes(unsafe.Pointer(input), C.int(length))
	}

	a := &analysis{}
	result, err := lexer.Parse(src)
	if err == nil {
		a.valid = true
		for _, e := range result.Exports {
			a.exports = append(a.exports, newRecord(e.Name, e.Line))
		}
		for _, r := range result.Reexports {
			a.reexports = append(a.reexports, newRecord(r.Specifier, r.Line))
		}
	} else if outErr != nil {
		if perr, ok := err.(*lexer.Error); ok {
			outErr.line = C.uint32_t(perr.Line)
			outErr.column = C.uint32_t(perr.Col)
		}
	}

	return C.uintptr_t(cgo.NewHandle(a))
}

//export cjslex_is_valid
func cjslex_is_valid(handle C.uintptr_t) C.int {
	a := lookup(handle)
	if a != nil && a.valid {
		return 1
	}
	return 0
}

//export cjslex_free
func cjslex_free(handle C.uintptr_t) {
	a := lookup(handle)
	if a == nil {
		return
	}
	a.release()
	cgo.Handle(handle).Delete()
}

//export cjslex_get_exports_count
func cjslex_get_exports_count(handle C.uintptr_t) C.size_t {
	a := lookup(handle)
	if a == nil || !a.valid {
		return 0
	}
	return C.size_t(len(a.exports))
}

//export cjslex_get_reexports_count
func cjslex_get_reexports_count(handle C.uintptr_t) C.size_t {
	a := lookup(handle)
	if a == nil || !a.valid {
		return 0
	}
	return C.size_t(len(a.reexports))
}

//export cjslex_get_export_name
func cjslex_get_export_name(handle C.uintptr_t, index C.size_t) C.cjslex_string {
	a := lookup(handle)
	if a == nil || !a.valid || int(index) >= len(a.exports) {
		return emptyString()
	}
	r := a.exports[index]
	return C.cjslex_string{data: r.data, length: r.len}
}

//export cjslex_get_export_line
func cjslex_get_export_line(handle C.uintptr_t, index C.size_t) C.uint32_t {
	a := lookup(handle)
	if a == nil || !a.valid || int(index) >= len(a.exports) {
		return 0
	}
	return a.exports[index].line
}

//export cjslex_get_reexport_name
func cjslex_get_reexport_name(handle C.uintptr_t, index C.size_t) C.cjslex_string {
	a := lookup(handle)
	if a == nil || !a.valid || int(index) >= len(a.reexports) {
		return emptyString()
	}
	r := a.reexports[index]
	return C.cjslex_string{data: r.data, length: r.len}
}

//export cjslex_get_reexport_line
func cjslex_get_reexport_line(handle C.uintptr_t, index C.size_t) C.uint32_t {
	a := lookup(handle)
	if a == nil || !a.valid || int(index) >= len(a.reexports) {
		return 0
	}
	return a.reexports[index].line
}

//export cjslex_get_last_error
func cjslex_get_last_error() C.int {
	last := lexer.LastError()
	if last == nil {
		return -1
	}
	return C.int(last.Kind)
}

var (
	versionOnce sync.Once
	versionC    *C.char
)

//export cjslex_get_version
func cjslex_get_version() *C.char {
	versionOnce.Do(func() {
		versionC = C.CString(lexer.Version)
	})
	return versionC
}

//export cjslex_get_version_components
func cjslex_get_version_components() C.cjslex_version_components {
	vc := lexer.GetVersionComponents()
	return C.cjslex_version_components{
		major:    C.int(vc.Major),
		minor:    C.int(vc.Minor),
		revision: C.int(vc.Revision),
	}
}

func main() {}
