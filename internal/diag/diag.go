// Package diag defines the diagnostic catalog of the wrapunion analyzer
// and the reporter that routes diagnostics through ignore directives.
package diag

import (
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/analysis"

	"github.com/wrapunion/wrapunion/internal/directive/ignore"
)

// Kind identifies one diagnostic category. The values are stable and appear
// as analysis.Diagnostic.Category, so downstream tooling can filter on them.
type Kind string

const (
	// BadWrap is the umbrella diagnostic on the wrap callee. It carries the
	// suggested fix and fires whenever any other kind fired for the same
	// construct.
	BadWrap Kind = "badWrap"

	// MissingTypeParamInWrap fires when a wrap call declares nothing even
	// though its body unwraps at least one function.
	MissingTypeParamInWrap Kind = "missingTypeParamInWrap"

	// BadUnwrapArg fires when an unwrap argument is not a direct call to a
	// named function (after peeling at most one channel receive).
	BadUnwrapArg Kind = "badUnwrapArg"

	// BadWrapTypeArg fires when a declared member is not a bare identifier.
	BadWrapTypeArg Kind = "badWrapTypeArg"

	// DuplicatedWrapArg fires on the second and later declarations of the
	// same function.
	DuplicatedWrapArg Kind = "duplicatedWrapArg"

	// UnwrapNotInWrap fires when a function is unwrapped in the body but
	// missing from the declaration list.
	UnwrapNotInWrap Kind = "unwrapNotInWrap"

	// WrappedFnNotUnwrapped fires when a declared function is never
	// unwrapped in the body.
	WrappedFnNotUnwrapped Kind = "wrappedFnNotUnwrapped"
)

// Kinds returns every diagnostic kind the analyzer can emit.
func Kinds() []Kind {
	return []Kind{
		BadWrap,
		MissingTypeParamInWrap,
		BadUnwrapArg,
		BadWrapTypeArg,
		DuplicatedWrapArg,
		UnwrapNotInWrap,
		WrappedFnNotUnwrapped,
	}
}

// Catalog renders diagnostic messages for the configured identifier names.
type Catalog struct {
	WrapName   string
	UnwrapName string
}

// MissingDecl is the MissingTypeParamInWrap message.
func (c Catalog) MissingDecl() string {
	return fmt.Sprintf("%s() does not declare the fallible functions unwrapped in its body", c.WrapName)
}

// BadDeclArg is the BadWrapTypeArg message.
func (c Catalog) BadDeclArg() string {
	return fmt.Sprintf("%s() arguments must be bare references to fallible functions", c.WrapName)
}

// DuplicatedDeclArg is the DuplicatedWrapArg message.
func (c Catalog) DuplicatedDeclArg(name string) string {
	return fmt.Sprintf("%q is declared more than once in %s()", name, c.WrapName)
}

// NotDeclared is the UnwrapNotInWrap message.
func (c Catalog) NotDeclared(name string) string {
	return fmt.Sprintf("%q is unwrapped but not declared in the enclosing %s()", name, c.WrapName)
}

// NeverUnwrapped is the WrappedFnNotUnwrapped message.
func (c Catalog) NeverUnwrapped(name string) string {
	return fmt.Sprintf("%q is declared in %s() but never unwrapped", name, c.WrapName)
}

// Inconsistent is the BadWrap message.
func (c Catalog) Inconsistent() string {
	return fmt.Sprintf("%s() declarations do not match the %s() calls in its body", c.WrapName, c.UnwrapName)
}

// BadUnwrapArg is the BadUnwrapArg message.
func (c Catalog) BadUnwrapArg() string {
	return fmt.Sprintf("%s() argument must be a direct call to a fallible function", c.UnwrapName)
}

// Reporter emits diagnostics on a pass, honoring per-line ignore directives.
type Reporter struct {
	Pass    *analysis.Pass
	Ignores map[string]ignore.Map
}

// Report emits one diagnostic of the given kind anchored at node.
func (r *Reporter) Report(kind Kind, node ast.Node, msg string, fixes ...analysis.SuggestedFix) {
	if r.suppressed(node, kind) {
		return
	}

	r.Pass.Report(analysis.Diagnostic{
		Pos:            node.Pos(),
		End:            node.End(),
		Category:       string(kind),
		Message:        msg,
		SuggestedFixes: fixes,
	})
}

// suppressed checks the node's line against the file's ignore directives.
func (r *Reporter) suppressed(node ast.Node, kind Kind) bool {
	position := r.Pass.Fset.Position(node.Pos())

	m, ok := r.Ignores[position.Filename]
	if !ok {
		return false
	}

	return m.Suppressed(position.Line, ignore.Name(kind))
}
