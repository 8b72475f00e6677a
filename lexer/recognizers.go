package lexer

import "bytes"

// The idiom recognizers. Each one saves the cursor on entry and restores it
// on any mismatch, so a failed match costs nothing but the bytes it looked
// at; nothing is emitted before a recognizer's commit point.

// requireType selects what a successful require("...") parse emits: an
// import records a candidate star-export binding specifier, the export-assign
// and export-star forms emit a re-export immediately.
type requireType int

const (
	requireImport requireType = iota
	requireExportAssign
	requireExportStar
)

// addExportRange records the bytes [start,end) as a named export, stripping
// one level of surrounding quotes. An 8-byte \u{Dxxx} escape whose code point
// is a lone surrogate (D800 through DFFF) is suppressed entirely: it cannot
// stand alone as an export name.
func (s *scanner) addExportRange(start, end int) {
	src := s.c.src
	if start < end && (src[start] == '\'' || src[start] == '"') {
		start++
		end--
	}
	name := src[start:end]
	if len(name) == 8 && name[0] == '\\' && name[1] == 'u' && name[2] == '{' && name[7] == '}' {
		if name[3] == 'D' && ((name[4] >= '8' && name[4] <= '9') || (name[4] >= 'A' && name[4] <= 'F')) {
			return
		}
	}
	s.result.addExport(name, lineOf(src, start))
}

// addReexportRange records the bytes [start,end), quotes stripped, as a
// re-exported module specifier.
func (s *scanner) addReexportRange(start, end int) {
	src := s.c.src
	if start < end && (src[start] == '\'' || src[start] == '"') {
		start++
		end--
	}
	s.result.addReexport(src[start:end], lineOf(src, start))
}

// matchBytes consumes want if the bytes at pos equal it exactly. Used to
// re-match a captured identifier (the loop variable of a forEach re-export
// loop) at later occurrences.
func (s *scanner) matchBytes(want []byte) bool {
	c := s.c
	if c.pos < 0 || c.pos+len(want) > c.end {
		return false
	}
	if !bytes.Equal(c.src[c.pos:c.pos+len(want)], want) {
		return false
	}
	c.pos += len(want)
	return true
}

// readExportsOrModuleDotExports consumes a valid export target: the bareword
// `exports`, or `module` `.` `exports` with arbitrary whitespace/comments
// between the tokens. ch is the significant byte at pos.
func (s *scanner) readExportsOrModuleDotExports(ch byte) bool {
	c := s.c
	revertPos := c.pos
	if ch == 'm' && c.matchesAt(c.pos+1, "odule") {
		c.pos += 6
		ch = s.commentWhitespace()
		if ch != '.' {
			c.pos = revertPos
			return false
		}
		c.pos++
		ch = s.commentWhitespace()
	}
	if ch == 'e' && c.matchesAt(c.pos+1, "xports") {
		c.pos += 7
		return true
	}
	c.pos = revertPos
	return false
}

// tryParseRequire parses `require ( "specifier" )` with pos at the `r`. The
// argument must be a plain single- or double-quoted string; templates,
// identifiers and concatenations do not match. On success pos is left at the
// closing `)`.
func (s *scanner) tryParseRequire(rt requireType) bool {
	c := s.c
	revertPos := c.pos
	if !c.matchesAt(c.pos+1, "equire") {
		return false
	}
	c.pos += 7
	ch := s.commentWhitespace()
	if ch == '(' {
		c.pos++
		ch = s.commentWhitespace()
		reexportStart := c.pos
		if ch == '\'' || ch == '"' {
			s.stringLiteral(ch)
			c.pos++
			reexportEnd := c.pos
			ch = s.commentWhitespace()
			if ch == ')' {
				switch rt {
				case requireExportAssign, requireExportStar:
					s.addReexportRange(reexportStart, reexportEnd)
					return true
				default:
					// Candidate star-export binding: the specifier is staged
					// in the next free slot, committed (and the slot counter
					// advanced) only if tryBacktrackAddStarExportBinding
					// finds a `var/let/const <ident> =` to its left.
					if s.starExportsLen < maxStarExports {
						s.starExports[s.starExportsLen].specStart = reexportStart
						s.starExports[s.starExportsLen].specEnd = reexportEnd
					}
					return true
				}
			}
		}
	}
	c.pos = revertPos
	return false
}

// tryParsePropertyValue accepts an object-literal property value: an
// identifier, or require("…") which additionally emits a re-export. Returns
// the significant byte after the value.
func (s *scanner) tryParsePropertyValue(ch byte) (byte, bool) {
	if ch == 'r' && s.tryParseRequire(requireExportAssign) {
		s.c.pos++
		return s.commentWhitespace(), true
	}
	if s.identifier(ch) {
		return s.commentWhitespace(), true
	}
	return ch, false
}

// tryParseLiteralExports walks a `module.exports = { … }` object literal with
// pos at the `{`. A bareword `get` followed by an identifier and `(`
// aborts the literal entirely: a getter means lazy exports this scanner will
// not claim. Exports committed before the abort are kept.
func (s *scanner) tryParseLiteralExports() {
	c := s.c
	revertPos := c.pos - 1
	for c.pos < c.end {
		c.pos++
		ch := s.commentWhitespace()
		startPos := c.pos
		if s.identifier(ch) {
			endPos := c.pos
			ch = s.commentWhitespace()
			if ch != ':' && endPos-startPos == 3 && c.matchesAt(startPos, "get") {
				if s.identifier(ch) {
					ch = s.commentWhitespace()
					if ch == '(' {
						c.pos = revertPos
						return
					}
				}
				c.pos = revertPos
				return
			}
			if ch == ':' {
				c.pos++
				ch = s.commentWhitespace()
				var ok bool
				if ch, ok = s.tryParsePropertyValue(ch); !ok {
					c.pos = revertPos
					return
				}
			}
			s.addExportRange(startPos, endPos)
		} else if ch == '\'' || ch == '"' {
			start := c.pos
			s.stringLiteral(ch)
			c.pos++
			endPos := c.pos
			ch = s.commentWhitespace()
			if ch == ':' {
				c.pos++
				ch = s.commentWhitespace()
				var ok bool
				if ch, ok = s.tryParsePropertyValue(ch); !ok {
					c.pos = revertPos
					return
				}
				s.addExportRange(start, endPos)
			}
		} else if ch == '.' && c.matchesAt(c.pos+1, "..") {
			c.pos += 3
			if c.pos < c.end && c.at(c.pos) == 'r' && s.tryParseRequire(requireExportAssign) {
				c.pos++
			} else if c.pos < c.end && !s.identifier(c.at(c.pos)) {
				c.pos = revertPos
				return
			}
			ch = s.commentWhitespace()
		} else {
			c.pos = revertPos
			return
		}

		if ch == '}' {
			return
		}
		if ch != ',' {
			c.pos = revertPos
			return
		}
	}
}

// tryParseExportsDotAssign handles `exports.X =`, `exports["X"] =` and, when
// assign is set (the module.exports path), `exports = …`. pos is at
// the `e` of `exports` on entry.
func (s *scanner) tryParseExportsDotAssign(assign bool) {
	c := s.c
	c.pos += 7
	revertPos := c.pos - 1
	ch := s.commentWhitespace()
	switch ch {
	case '.':
		c.pos++
		ch = s.commentWhitespace()
		startPos := c.pos
		if s.identifier(ch) {
			endPos := c.pos
			ch = s.commentWhitespace()
			if ch == '=' {
				s.addExportRange(startPos, endPos)
				return
			}
		}
	case '[':
		c.pos++
		ch = s.commentWhitespace()
		if ch == '\'' || ch == '"' {
			startPos := c.pos
			s.stringLiteral(ch)
			c.pos++
			endPos := c.pos
			ch = s.commentWhitespace()
			if ch != ']' {
				break
			}
			c.pos++
			ch = s.commentWhitespace()
			if ch != '=' {
				break
			}
			s.addExportRange(startPos, endPos)
		}
	case '=':
		if assign {
			// Last assignment wins: a fresh `module.exports =` overwrites
			// whatever star re-exports were accumulated against the old
			// value.
			s.result.clearReexports()
			c.pos++
			ch = s.commentWhitespace()
			if ch == '{' {
				s.tryParseLiteralExports()
				return
			}
			if ch == 'r' {
				s.tryParseRequire(requireExportAssign)
			}
		}
	}
	c.pos = revertPos
}

// tryParseModuleExportsDotAssign recognizes the `module . exports` prefix
// with pos at the `m` and hands off to tryParseExportsDotAssign with
// assignment allowed.
func (s *scanner) tryParseModuleExportsDotAssign() {
	c := s.c
	c.pos += 6
	revertPos := c.pos - 1
	ch := s.commentWhitespace()
	if ch == '.' {
		c.pos++
		ch = s.commentWhitespace()
		if ch == 'e' && c.matchesAt(c.pos+1, "xports") {
			s.tryParseExportsDotAssign(true)
			return
		}
	}
	c.pos = revertPos
}

// tryParseObjectHasOwnProperty matches the
// `Object(.prototype)?.hasOwnProperty.call(<names>, <it>)` guard inside a
// transpiled re-export loop.
func (s *scanner) tryParseObjectHasOwnProperty(itID []byte) bool {
	c := s.c
	ch := s.commentWhitespace()
	if ch != 'O' || !c.matchesAt(c.pos+1, "bject") {
		return false
	}
	c.pos += 6
	ch = s.commentWhitespace()
	if ch != '.' {
		return false
	}
	c.pos++
	ch = s.commentWhitespace()
	if ch == 'p' {
		if !c.matchesAt(c.pos+1, "rototype") {
			return false
		}
		c.pos += 9
		ch = s.commentWhitespace()
		if ch != '.' {
			return false
		}
		c.pos++
		ch = s.commentWhitespace()
	}
	if ch != 'h' || !c.matchesAt(c.pos+1, "asOwnProperty") {
		return false
	}
	c.pos += 14
	ch = s.commentWhitespace()
	if ch != '.' {
		return false
	}
	c.pos++
	ch = s.commentWhitespace()
	if ch != 'c' || !c.matchesAt(c.pos+1, "all") {
		return false
	}
	c.pos += 4
	ch = s.commentWhitespace()
	if ch != '(' {
		return false
	}
	c.pos++
	ch = s.commentWhitespace()
	if !s.identifier(ch) {
		return false
	}
	ch = s.commentWhitespace()
	if ch != ',' {
		return false
	}
	c.pos++
	s.commentWhitespace()
	if !s.matchBytes(itID) {
		return false
	}
	ch = s.commentWhitespace()
	if ch != ')' {
		return false
	}
	c.pos++
	return true
}

// tryParseObjectDefineOrKeys dispatches on `Object.` with pos at the `O`:
// `Object.defineProperty(exports, "X", {…})` records an export when the
// descriptor is an `enumerable: true` value or a narrow-shape getter;
// `Object.keys(<local>).forEach(function (<it>) {…})` matches the
// transpiler-generated star re-export loop and resolves <local> against the
// star-export binding table. keys gates the latter to top level.
func (s *scanner) tryParseObjectDefineOrKeys(keys bool) {
	c := s.c
	c.pos += 6
	revertPos := c.pos - 1
	ch := s.commentWhitespace()
	if ch == '.' {
		c.pos++
		ch = s.commentWhitespace()
		if ch == 'd' && c.matchesAt(c.pos+1, "efineProperty") {
			var exportStart, exportEnd int
			for {
				c.pos += 14
				revertPos = c.pos - 1
				ch = s.commentWhitespace()
				if ch != '(' {
					break
				}
				c.pos++
				ch = s.commentWhitespace()
				if !s.readExportsOrModuleDotExports(ch) {
					break
				}
				ch = s.commentWhitespace()
				if ch != ',' {
					break
				}
				c.pos++
				ch = s.commentWhitespace()
				if ch != '\'' && ch != '"' {
					break
				}
				exportStart = c.pos
				s.stringLiteral(ch)
				c.pos++
				exportEnd = c.pos
				ch = s.commentWhitespace()
				if ch != ',' {
					break
				}
				c.pos++
				ch = s.commentWhitespace()
				if ch != '{' {
					break
				}
				c.pos++
				ch = s.commentWhitespace()
				if ch == 'e' {
					if !c.matchesAt(c.pos+1, "numerable") {
						break
					}
					c.pos += 10
					ch = s.commentWhitespace()
					if ch != ':' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					// enumerable must be literally true; `enumerable: false`
					// is housekeeping, not an export.
					if ch != 't' || !c.matchesAt(c.pos+1, "rue") {
						break
					}
					c.pos += 4
					ch = s.commentWhitespace()
					if ch != ',' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
				}
				if ch == 'v' {
					if !c.matchesAt(c.pos+1, "alue") {
						break
					}
					c.pos += 5
					ch = s.commentWhitespace()
					if ch != ':' {
						break
					}
					if exportEnd > exportStart {
						s.addExportRange(exportStart, exportEnd)
					}
					c.pos = revertPos
					return
				} else if ch == 'g' {
					if !c.matchesAt(c.pos+1, "et") {
						break
					}
					c.pos += 3
					ch = s.commentWhitespace()
					if ch == ':' {
						c.pos++
						ch = s.commentWhitespace()
						if ch != 'f' {
							break
						}
						if !c.matchesAt(c.pos+1, "unction") {
							break
						}
						c.pos += 8
						lastPos := c.pos
						ch = s.commentWhitespace()
						if ch != '(' && (lastPos == c.pos || !s.identifier(ch)) {
							break
						}
						ch = s.commentWhitespace()
					}
					if ch != '(' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch != ')' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch != '{' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					// The getter body must be exactly `return <ident>`,
					// optionally indexed by `.ident` or `["str"]`, optionally
					// `;`-terminated. Anything else aborts.
					if ch != 'r' {
						break
					}
					if !c.matchesAt(c.pos+1, "eturn") {
						break
					}
					c.pos += 6
					ch = s.commentWhitespace()
					if !s.identifier(ch) {
						break
					}
					ch = s.commentWhitespace()
					if ch == '.' {
						c.pos++
						ch = s.commentWhitespace()
						if !s.identifier(ch) {
							break
						}
						ch = s.commentWhitespace()
					} else if ch == '[' {
						c.pos++
						ch = s.commentWhitespace()
						if ch == '\'' || ch == '"' {
							s.stringLiteral(ch)
						} else {
							break
						}
						c.pos++
						ch = s.commentWhitespace()
						if ch != ']' {
							break
						}
						c.pos++
						ch = s.commentWhitespace()
					}
					if ch == ';' {
						c.pos++
						ch = s.commentWhitespace()
					}
					if ch != '}' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch == ',' {
						c.pos++
						ch = s.commentWhitespace()
					}
					if ch != '}' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch != ')' {
						break
					}
					if exportEnd > exportStart {
						s.addExportRange(exportStart, exportEnd)
					}
					return
				}
				break
			}
		} else if keys && ch == 'k' && c.matchesAt(c.pos+1, "eys") {
			for {
				c.pos += 4
				revertPos = c.pos - 1
				ch = s.commentWhitespace()
				if ch != '(' {
					break
				}
				c.pos++
				ch = s.commentWhitespace()
				idStart := c.pos
				if !s.identifier(ch) {
					break
				}
				id := c.src[idStart:c.pos]
				ch = s.commentWhitespace()
				if ch != ')' {
					break
				}

				revertPos = c.pos
				c.pos++
				ch = s.commentWhitespace()
				if ch != '.' {
					break
				}
				c.pos++
				ch = s.commentWhitespace()
				if ch != 'f' || !c.matchesAt(c.pos+1, "orEach") {
					break
				}
				c.pos += 7
				ch = s.commentWhitespace()
				revertPos = c.pos - 1
				if ch != '(' {
					break
				}
				c.pos++
				ch = s.commentWhitespace()
				if ch != 'f' || !c.matchesAt(c.pos+1, "unction") {
					break
				}
				c.pos += 8
				ch = s.commentWhitespace()
				if ch != '(' {
					break
				}
				c.pos++
				ch = s.commentWhitespace()
				itStart := c.pos
				if !s.identifier(ch) {
					break
				}
				itID := c.src[itStart:c.pos]
				ch = s.commentWhitespace()
				if ch != ')' {
					break
				}
				c.pos++
				ch = s.commentWhitespace()
				if ch != '{' {
					break
				}
				c.pos++
				ch = s.commentWhitespace()
				if ch != 'i' || c.at(c.pos+1) != 'f' {
					break
				}
				c.pos += 2
				ch = s.commentWhitespace()
				if ch != '(' {
					break
				}
				c.pos++
				s.commentWhitespace()
				if !s.matchBytes(itID) {
					break
				}
				ch = s.commentWhitespace()

				if ch == '=' {
					// if (<it> === "default" || <it> === "__esModule") return;
					if !c.matchesAt(c.pos+1, "==") {
						break
					}
					c.pos += 3
					ch = s.commentWhitespace()
					if ch != '"' && ch != '\'' {
						break
					}
					quot := ch
					if !c.matchesAt(c.pos+1, "default") {
						break
					}
					c.pos += 8
					ch = s.commentWhitespace()
					if ch != quot {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch != '|' || c.at(c.pos+1) != '|' {
						break
					}
					c.pos += 2
					s.commentWhitespace()
					if !s.matchBytes(itID) {
						break
					}
					ch = s.commentWhitespace()
					if ch != '=' || !c.matchesAt(c.pos+1, "==") {
						break
					}
					c.pos += 3
					ch = s.commentWhitespace()
					if ch != '"' && ch != '\'' {
						break
					}
					quot = ch
					if !c.matchesAt(c.pos+1, "__esModule") {
						break
					}
					c.pos += 11
					ch = s.commentWhitespace()
					if ch != quot {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch != ')' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch != 'r' || !c.matchesAt(c.pos+1, "eturn") {
						break
					}
					c.pos += 6
					ch = s.commentWhitespace()
					if ch == ';' {
						c.pos++
					}
					ch = s.commentWhitespace()

					if ch == 'i' && c.at(c.pos+1) == 'f' {
						// Optional hasOwnProperty / key-in-exports guards
						// emitted by newer Babel and TypeScript helpers.
						inIf := true
						c.pos += 2
						ch = s.commentWhitespace()
						if ch != '(' {
							break
						}
						c.pos++
						ifInnerPos := c.pos

						if s.tryParseObjectHasOwnProperty(itID) {
							ch = s.commentWhitespace()
							if ch != ')' {
								break
							}
							c.pos++
							ch = s.commentWhitespace()
							if ch != 'r' || !c.matchesAt(c.pos+1, "eturn") {
								break
							}
							c.pos += 6
							ch = s.commentWhitespace()
							if ch == ';' {
								c.pos++
							}
							ch = s.commentWhitespace()
							if ch == 'i' && c.at(c.pos+1) == 'f' {
								c.pos += 2
								ch = s.commentWhitespace()
								if ch != '(' {
									break
								}
								c.pos++
							} else {
								inIf = false
							}
						} else {
							c.pos = ifInnerPos
						}

						if inIf {
							// if (<it> in exports && exports[<it>] === <local>[<it>]) return;
							s.commentWhitespace()
							if !s.matchBytes(itID) {
								break
							}
							ch = s.commentWhitespace()
							if ch != 'i' || !c.matchesAt(c.pos+1, "n ") {
								break
							}
							c.pos += 3
							ch = s.commentWhitespace()
							if !s.readExportsOrModuleDotExports(ch) {
								break
							}
							ch = s.commentWhitespace()
							if ch != '&' || c.at(c.pos+1) != '&' {
								break
							}
							c.pos += 2
							ch = s.commentWhitespace()
							if !s.readExportsOrModuleDotExports(ch) {
								break
							}
							ch = s.commentWhitespace()
							if ch != '[' {
								break
							}
							c.pos++
							s.commentWhitespace()
							if !s.matchBytes(itID) {
								break
							}
							ch = s.commentWhitespace()
							if ch != ']' {
								break
							}
							c.pos++
							ch = s.commentWhitespace()
							if ch != '=' || !c.matchesAt(c.pos+1, "==") {
								break
							}
							c.pos += 3
							s.commentWhitespace()
							if !s.matchBytes(id) {
								break
							}
							ch = s.commentWhitespace()
							if ch != '[' {
								break
							}
							c.pos++
							s.commentWhitespace()
							if !s.matchBytes(itID) {
								break
							}
							ch = s.commentWhitespace()
							if ch != ']' {
								break
							}
							c.pos++
							ch = s.commentWhitespace()
							if ch != ')' {
								break
							}
							c.pos++
							ch = s.commentWhitespace()
							if ch != 'r' || !c.matchesAt(c.pos+1, "eturn") {
								break
							}
							c.pos += 6
							ch = s.commentWhitespace()
							if ch == ';' {
								c.pos++
							}
							ch = s.commentWhitespace()
						}
					}
				} else if ch == '!' {
					// if (<it> !== "default" && !<guard>(<it>)) ...
					if !c.matchesAt(c.pos+1, "==") {
						break
					}
					c.pos += 3
					ch = s.commentWhitespace()
					if ch != '"' && ch != '\'' {
						break
					}
					quot := ch
					if !c.matchesAt(c.pos+1, "default") {
						break
					}
					c.pos += 8
					ch = s.commentWhitespace()
					if ch != quot {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch == '&' {
						if c.at(c.pos+1) != '&' {
							break
						}
						c.pos += 2
						ch = s.commentWhitespace()
						if ch != '!' {
							break
						}
						c.pos++
						ch = s.commentWhitespace()
						if ch == 'O' && c.matchesAt(c.pos+1, "bject.") {
							if !s.tryParseObjectHasOwnProperty(itID) {
								break
							}
						} else if s.identifier(ch) {
							ch = s.commentWhitespace()
							if ch != '.' {
								break
							}
							c.pos++
							ch = s.commentWhitespace()
							if ch != 'h' || !c.matchesAt(c.pos+1, "asOwnProperty") {
								break
							}
							c.pos += 14
							ch = s.commentWhitespace()
							if ch != '(' {
								break
							}
							c.pos++
							s.commentWhitespace()
							if !s.matchBytes(itID) {
								break
							}
							ch = s.commentWhitespace()
							if ch != ')' {
								break
							}
							c.pos++
						}
						ch = s.commentWhitespace()
					}
					if ch != ')' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
				} else {
					break
				}

				if s.readExportsOrModuleDotExports(ch) {
					// exports[<it>] = <local>[<it>];
					ch = s.commentWhitespace()
					if ch != '[' {
						break
					}
					c.pos++
					s.commentWhitespace()
					if !s.matchBytes(itID) {
						break
					}
					ch = s.commentWhitespace()
					if ch != ']' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch != '=' {
						break
					}
					c.pos++
					s.commentWhitespace()
					if !s.matchBytes(id) {
						break
					}
					ch = s.commentWhitespace()
					if ch != '[' {
						break
					}
					c.pos++
					s.commentWhitespace()
					if !s.matchBytes(itID) {
						break
					}
					ch = s.commentWhitespace()
					if ch != ']' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch == ';' {
						c.pos++
						ch = s.commentWhitespace()
					}
				} else if ch == 'O' {
					// Object.defineProperty(exports, <it>, { enumerable:
					// true, get: function () { return <local>[<it>]; } })
					if !c.matchesAt(c.pos+1, "bject") {
						break
					}
					c.pos += 6
					ch = s.commentWhitespace()
					if ch != '.' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch != 'd' || !c.matchesAt(c.pos+1, "efineProperty") {
						break
					}
					c.pos += 14
					ch = s.commentWhitespace()
					if ch != '(' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if !s.readExportsOrModuleDotExports(ch) {
						break
					}
					ch = s.commentWhitespace()
					if ch != ',' {
						break
					}
					c.pos++
					s.commentWhitespace()
					if !s.matchBytes(itID) {
						break
					}
					ch = s.commentWhitespace()
					if ch != ',' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch != '{' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch != 'e' || !c.matchesAt(c.pos+1, "numerable") {
						break
					}
					c.pos += 10
					ch = s.commentWhitespace()
					if ch != ':' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch != 't' || !c.matchesAt(c.pos+1, "rue") {
						break
					}
					c.pos += 4
					ch = s.commentWhitespace()
					if ch != ',' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch != 'g' || !c.matchesAt(c.pos+1, "et") {
						break
					}
					c.pos += 3
					ch = s.commentWhitespace()
					if ch == ':' {
						c.pos++
						ch = s.commentWhitespace()
						if ch != 'f' {
							break
						}
						if !c.matchesAt(c.pos+1, "unction") {
							break
						}
						c.pos += 8
						lastPos := c.pos
						ch = s.commentWhitespace()
						if ch != '(' && (lastPos == c.pos || !s.identifier(ch)) {
							break
						}
						ch = s.commentWhitespace()
					}
					if ch != '(' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch != ')' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch != '{' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch != 'r' || !c.matchesAt(c.pos+1, "eturn") {
						break
					}
					c.pos += 6
					s.commentWhitespace()
					if !s.matchBytes(id) {
						break
					}
					ch = s.commentWhitespace()
					if ch != '[' {
						break
					}
					c.pos++
					s.commentWhitespace()
					if !s.matchBytes(itID) {
						break
					}
					ch = s.commentWhitespace()
					if ch != ']' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch == ';' {
						c.pos++
						ch = s.commentWhitespace()
					}
					if ch != '}' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch == ',' {
						c.pos++
						ch = s.commentWhitespace()
					}
					if ch != '}' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch != ')' {
						break
					}
					c.pos++
					ch = s.commentWhitespace()
					if ch == ';' {
						c.pos++
						ch = s.commentWhitespace()
					}
				} else {
					break
				}

				if ch != '}' {
					break
				}
				c.pos++
				ch = s.commentWhitespace()
				if ch != ')' {
					break
				}

				// Resolve <local> against the star-export binding table; a
				// hit re-exports the specifier captured at require() time.
				for i := 0; i < s.starExportsLen; i++ {
					b := &s.starExports[i]
					if bytes.Equal(id, c.src[b.idStart:b.idEnd]) {
						s.addReexportRange(b.specStart, b.specEnd)
						c.pos = revertPos
						return
					}
				}
				return
			}
		}
	}
	c.pos = revertPos
}

// tryBacktrackAddStarExportBinding looks left of a successful top-level
// require() for a `var/let/const <ident> =` pattern and, if found, commits
// the staged specifier as a star-export binding. bPos is the byte
// immediately before the `r` of require.
func (s *scanner) tryBacktrackAddStarExportBinding(bPos int) {
	c := s.c
	for c.at(bPos) == ' ' && bPos > 0 {
		bPos--
	}
	if c.at(bPos) != '=' {
		return
	}
	bPos--
	for c.at(bPos) == ' ' && bPos > 0 {
		bPos--
	}
	idEnd := bPos
	identifierStart := false
	for bPos > 0 {
		ch := c.at(bPos)
		if !isIdentifierChar(ch) {
			break
		}
		identifierStart = isIdentifierStart(ch)
		bPos--
	}
	if identifierStart && c.at(bPos) == ' ' {
		if s.starExportsLen >= maxStarExports {
			return
		}
		b := &s.starExports[s.starExportsLen]
		b.idStart = bPos + 1
		b.idEnd = idEnd + 1
		for c.at(bPos) == ' ' && bPos > 0 {
			bPos--
		}
		switch c.at(bPos) {
		case 'r':
			if !s.readPrecedingKeyword(bPos-1, "va") {
				return
			}
		case 't':
			if !s.readPrecedingKeyword(bPos-1, "le") && !s.readPrecedingKeyword(bPos-1, "cons") {
				return
			}
		default:
			return
		}
		s.starExportsLen++
	}
}

// throwIfImportStatement classifies a top-level bareword `import`:
// dynamic import() is harmless, `import.meta` and static import forms are
// ESM syntax and fail the parse.
func (s *scanner) throwIfImportStatement() {
	c := s.c
	startPos := c.pos
	c.pos += 6
	ch := s.commentWhitespace()
	switch ch {
	case '(':
		if s.openTokenDepth >= stackDepth {
			s.syntaxError(ErrUnterminatedParen)
			return
		}
		s.openTokenPosStack[s.openTokenDepth] = startPos
		s.openParenStack[s.openTokenDepth] = true
		s.openTokenDepth++
		return
	case '.':
		c.pos++
		ch = s.commentWhitespace()
		if ch == 'm' && c.pos+4 <= c.end && c.matchesAt(c.pos+1, "eta") {
			if c.pos+4 < c.end && isIdentifierChar(c.at(c.pos+4)) {
				// import.metaSomething is just a member access
				return
			}
			s.syntaxError(ErrUnexpectedESMImportMeta)
		}
		return
	case '"', '\'', '{', '*':
		s.esmImportError()
	default:
		if c.pos == startPos+6 {
			// `import` ran straight into more identifier-ish bytes with no
			// separator; it was never the keyword.
			return
		}
		s.esmImportError()
	}
}

func (s *scanner) esmImportError() {
	if s.openTokenDepth != 0 {
		s.c.pos--
		return
	}
	s.syntaxError(ErrUnexpectedESMImport)
}

// throwIfExportStatement flags a top-level bareword `export` that is not the
// start of the identifier `exports`.
func (s *scanner) throwIfExportStatement() {
	c := s.c
	c.pos += 6
	curPos := c.pos
	ch := s.commentWhitespace()
	if c.pos == curPos && !isPunctuator(ch) {
		return
	}
	s.syntaxError(ErrUnexpectedESMExport)
}
