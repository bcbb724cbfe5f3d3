// Package ignore handles //wrapunion:ignore directives.
package ignore

import (
	"go/ast"
	"go/token"
	"strings"
)

// Name identifies a diagnostic kind that can be ignored. The valid names are
// owned by the diag package; this package treats them opaquely.
type Name string

// Entry tracks one ignore directive and its usage.
type Entry struct {
	pos   token.Pos     // position of the directive comment
	names []Name        // kinds the directive covers (empty = all)
	used  map[Name]bool // which kinds actually consulted it
}

// Map tracks ignore entries by line number.
type Map map[int]*Entry

// Build scans a file for ignore directives and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			names, ok := parseDirective(c.Text)
			if !ok {
				continue
			}
			line := fset.Position(c.Pos()).Line
			m[line] = &Entry{
				pos:   c.Pos(),
				names: names,
				used:  make(map[Name]bool),
			}
		}
	}

	return m
}

// parseDirective parses an ignore directive and returns the covered kinds.
// A nil slice means the directive covers every kind.
//
// Supported formats:
//   - //wrapunion:ignore                       -> ignore all kinds
//   - //wrapunion:ignore badWrap               -> ignore one kind
//   - //wrapunion:ignore badWrap,unwrapNotInWrap
//   - //wrapunion:ignore - reason
//   - //wrapunion:ignore badWrap - reason
func parseDirective(text string) ([]Name, bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	rest, ok := strings.CutPrefix(text, "wrapunion:ignore")
	if !ok {
		return nil, false
	}
	rest = strings.TrimSpace(rest)

	// Strip a trailing human-readable reason.
	if idx := strings.Index(rest, " - "); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, " //"); idx >= 0 {
		rest = rest[:idx]
	}
	if strings.HasPrefix(rest, "//") || strings.HasPrefix(rest, "- ") || rest == "-" {
		rest = ""
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, true
	}

	parts := strings.Split(rest, ",")
	names := make([]Name, 0, len(parts))
	for _, part := range parts {
		if name := Name(strings.TrimSpace(part)); name != "" {
			names = append(names, name)
		}
	}

	return names, true
}

// Suppressed reports whether a diagnostic of the given kind at the given
// line is covered by a directive on the same line or the line above.
// Consulted directives are marked used.
func (m Map) Suppressed(line int, name Name) bool {
	return m.suppressedBy(m[line], name) || m.suppressedBy(m[line-1], name)
}

func (m Map) suppressedBy(entry *Entry, name Name) bool {
	if entry == nil {
		return false
	}

	if len(entry.names) == 0 {
		entry.used[name] = true
		return true
	}

	for _, n := range entry.names {
		if n == name {
			entry.used[name] = true
			return true
		}
	}

	return false
}

// Unused describes a directive (or part of one) that suppressed nothing.
type Unused struct {
	Pos   token.Pos
	Names []Name // unused kind names; empty when the whole directive is unused
}

// UnusedEntries returns directives that were never consulted. Named kinds
// absent from known are reported too, so typos surface instead of silently
// suppressing nothing.
func (m Map) UnusedEntries(known map[Name]bool) []Unused {
	var unused []Unused

	for _, entry := range m {
		if len(entry.names) == 0 {
			if len(entry.used) == 0 {
				unused = append(unused, Unused{Pos: entry.pos})
			}
			continue
		}

		var stale []Name
		for _, name := range entry.names {
			if !known[name] || !entry.used[name] {
				stale = append(stale, name)
			}
		}
		if len(stale) > 0 {
			unused = append(unused, Unused{Pos: entry.pos, Names: stale})
		}
	}

	return unused
}
