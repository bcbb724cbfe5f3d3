// Package recognize classifies call expressions against the wrap/unwrap
// call shapes.
//
// Matching is purely syntactic. The configured wrap and unwrap names may
// refer to any package-local helper, so type information cannot identify
// them; a bare identifier with the right name and the right call shape is
// the whole contract. Anything that fails a predicate is silently not a
// match; the analyzer only polices constructs it positively recognizes.
package recognize

import (
	"go/ast"
	"go/token"
)

// Open describes a recognized wrap construct opening: the inner declaration
// call, immediately invoked with a single context-taking function literal.
//
//	wrap(doThis, doThat)(func(ctx context.Context) (any, error) { ... })
type Open struct {
	Callee *ast.Ident    // the wrap identifier
	Decl   *ast.CallExpr // the inner wrap(...) call
	Fn     *ast.FuncLit  // the body literal
}

// MatchOpen reports whether call is the outer call of a wrap construct.
func MatchOpen(call *ast.CallExpr, wrapName string) (Open, bool) {
	decl, ok := call.Fun.(*ast.CallExpr)
	if !ok {
		return Open{}, false
	}

	callee, ok := decl.Fun.(*ast.Ident)
	if !ok || callee.Name != wrapName {
		return Open{}, false
	}

	if len(call.Args) != 1 {
		return Open{}, false
	}

	fn, ok := call.Args[0].(*ast.FuncLit)
	if !ok || !hasContextParam(fn.Type) {
		return Open{}, false
	}

	return Open{Callee: callee, Decl: decl, Fn: fn}, true
}

// IsUnwrap reports whether call has the unwrap shape: a bare callee with
// the configured name and exactly one argument.
func IsUnwrap(call *ast.CallExpr, unwrapName string) bool {
	callee, ok := call.Fun.(*ast.Ident)
	return ok && callee.Name == unwrapName && len(call.Args) == 1
}

// Target resolves the fallible call inside an unwrap argument, peeling at
// most one channel receive:
//
//	unwrap(doThis(ctx))
//	unwrap(<-doThat(ctx))
//
// The peel is a single fixed step, not a general expression unwrapper.
// ok is false when the argument is not a direct call to a named function.
func Target(call *ast.CallExpr) (name string, target *ast.CallExpr, ok bool) {
	arg := call.Args[0]

	if recv, isRecv := arg.(*ast.UnaryExpr); isRecv && recv.Op == token.ARROW {
		arg = recv.X
	}

	target, ok = arg.(*ast.CallExpr)
	if !ok {
		return "", nil, false
	}

	callee, ok := target.Fun.(*ast.Ident)
	if !ok {
		return "", nil, false
	}

	return callee.Name, target, true
}

// hasContextParam reports whether the function type declares a
// context.Context parameter. This is the shape that marks a wrap body as
// asynchronous-capable; literals without one never open a scope.
func hasContextParam(ft *ast.FuncType) bool {
	if ft == nil || ft.Params == nil {
		return false
	}
	for _, field := range ft.Params.List {
		if isContextSelector(field.Type) {
			return true
		}
	}
	return false
}

func isContextSelector(expr ast.Expr) bool {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "context" && sel.Sel.Name == "Context"
}
