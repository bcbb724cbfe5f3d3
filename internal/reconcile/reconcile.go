// Package reconcile compares a wrap construct's declared function list
// against the unwrap calls observed in its body.
package reconcile

import (
	"go/ast"

	"github.com/wrapunion/wrapunion/internal/diag"
	"github.com/wrapunion/wrapunion/internal/scope"
)

// Violation is one detected inconsistency. Name is set for the per-function
// kinds and empty otherwise.
type Violation struct {
	Kind diag.Kind
	Node ast.Node
	Name string
}

// Check reconciles the declared members of w against its recorded unwrap
// calls and returns every violation found, in report order. No violation is
// fatal; a single pass surfaces all of them at once. An empty result means
// the construct is consistent.
func Check(w *scope.Wrap) []Violation {
	// A construct that declares nothing is a single violation, not one per
	// unwrapped function; the fix regenerates the whole list anyway. When
	// the body unwraps nothing either, the empty list is consistent, which
	// also keeps the fix idempotent when it empties a stale list.
	if len(w.Decl.Args) == 0 {
		if len(w.Names()) == 0 {
			return nil
		}
		return []Violation{{Kind: diag.MissingTypeParamInWrap, Node: w.Callee}}
	}

	var violations []Violation
	declared := declaredMembers(w.Decl, &violations)

	// Unwrapped but not declared.
	for _, name := range w.Names() {
		if _, ok := declared[name]; !ok {
			violations = append(violations, Violation{
				Kind: diag.UnwrapNotInWrap,
				Node: w.Call(name),
				Name: name,
			})
		}
	}

	// Declared but never unwrapped. Iterate the argument list, not the map,
	// to keep report order deterministic.
	for _, arg := range w.Decl.Args {
		ident, ok := arg.(*ast.Ident)
		if !ok || declared[ident.Name] != arg {
			continue // malformed or duplicate, already reported above
		}
		if w.Call(ident.Name) == nil {
			violations = append(violations, Violation{
				Kind: diag.WrappedFnNotUnwrapped,
				Node: arg,
				Name: ident.Name,
			})
		}
	}

	return violations
}

// declaredMembers validates the declaration list shape and returns the
// well-formed members keyed by name, first occurrence winning. Malformed
// and repeated members are reported but excluded, so the cross-check runs
// on what was legibly declared.
func declaredMembers(decl *ast.CallExpr, violations *[]Violation) map[string]ast.Expr {
	members := make(map[string]ast.Expr, len(decl.Args))

	for i, arg := range decl.Args {
		ident, ok := arg.(*ast.Ident)
		if !ok || spread(decl, i) {
			*violations = append(*violations, Violation{
				Kind: diag.BadWrapTypeArg,
				Node: arg,
			})
			continue
		}
		if _, dup := members[ident.Name]; dup {
			*violations = append(*violations, Violation{
				Kind: diag.DuplicatedWrapArg,
				Node: arg,
				Name: ident.Name,
			})
			continue
		}
		members[ident.Name] = arg
	}

	return members
}

// spread reports whether the i-th argument is expanded with "...": such a
// member is a slice, not a bare function reference.
func spread(call *ast.CallExpr, i int) bool {
	return call.Ellipsis.IsValid() && i == len(call.Args)-1
}
