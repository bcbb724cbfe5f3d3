// Package checker drives the traversal that recognizes wrap constructs and
// reconciles each one when the traversal leaves its body.
package checker

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/wrapunion/wrapunion/internal/diag"
	"github.com/wrapunion/wrapunion/internal/fix"
	"github.com/wrapunion/wrapunion/internal/recognize"
	"github.com/wrapunion/wrapunion/internal/reconcile"
	"github.com/wrapunion/wrapunion/internal/scope"
)

// Checker holds the per-pass state of the wrap/unwrap consistency check.
type Checker struct {
	catalog   diag.Catalog
	reporter  *diag.Reporter
	skipFiles map[string]bool
	stack     scope.Stack
}

// New creates a checker for the configured wrap and unwrap names.
func New(wrapName, unwrapName string, reporter *diag.Reporter, skipFiles map[string]bool) *Checker {
	return &Checker{
		catalog:   diag.Catalog{WrapName: wrapName, UnwrapName: unwrapName},
		reporter:  reporter,
		skipFiles: skipFiles,
	}
}

// Run executes the check, reacting to the inspector's enter/exit events.
// The traversal order is owned by the inspector; the checker only mutates
// the scope stack in response.
func (c *Checker) Run(pass *analysis.Pass, insp *inspector.Inspector) {
	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
		(*ast.FuncLit)(nil),
	}

	insp.Nodes(nodeFilter, func(n ast.Node, push bool) bool {
		filename := pass.Fset.Position(n.Pos()).Filename
		if c.skipFiles[filename] {
			return true
		}

		switch node := n.(type) {
		case *ast.CallExpr:
			if push {
				c.enterCall(node)
			}
		case *ast.FuncLit:
			if push {
				c.enterFuncLit(node)
			} else {
				c.exitFuncLit(node)
			}
		}

		return true
	})
}

// enterCall classifies a call expression: it either opens a wrap scope, is
// an unwrap call inside the active scope's body, or is irrelevant.
func (c *Checker) enterCall(call *ast.CallExpr) {
	if open, ok := recognize.MatchOpen(call, c.catalog.WrapName); ok {
		c.stack.Push(&scope.Wrap{
			Callee: open.Callee,
			Decl:   open.Decl,
			Fn:     open.Fn,
		})
		return
	}

	top := c.stack.Top()
	if top == nil || !top.Entered {
		return // no open construct, or still in its argument positions
	}

	if !recognize.IsUnwrap(call, c.catalog.UnwrapName) {
		return
	}

	name, target, ok := recognize.Target(call)
	if !ok {
		// Reported eagerly, independent of reconciliation, and excluded
		// from the recorded set.
		c.reporter.Report(diag.BadUnwrapArg, call.Args[0], c.catalog.BadUnwrapArg())
		return
	}

	top.Record(name, target)
}

func (c *Checker) enterFuncLit(fn *ast.FuncLit) {
	if top := c.stack.Top(); top != nil && top.Fn == fn {
		top.Entered = true
	}
}

func (c *Checker) exitFuncLit(fn *ast.FuncLit) {
	w := c.stack.PopIf(fn)
	if w == nil {
		return
	}

	violations := reconcile.Check(w)
	if len(violations) == 0 {
		return
	}

	for _, v := range violations {
		c.reporter.Report(v.Kind, v.Node, c.message(v))
	}

	// One umbrella diagnostic per inconsistent construct carries the fix,
	// in addition to the individual reports above.
	c.reporter.Report(diag.BadWrap, w.Callee, c.catalog.Inconsistent(),
		fix.Synthesize(w, c.catalog.WrapName))
}

func (c *Checker) message(v reconcile.Violation) string {
	switch v.Kind {
	case diag.MissingTypeParamInWrap:
		return c.catalog.MissingDecl()
	case diag.BadWrapTypeArg:
		return c.catalog.BadDeclArg()
	case diag.DuplicatedWrapArg:
		return c.catalog.DuplicatedDeclArg(v.Name)
	case diag.UnwrapNotInWrap:
		return c.catalog.NotDeclared(v.Name)
	case diag.WrappedFnNotUnwrapped:
		return c.catalog.NeverUnwrapped(v.Name)
	}
	return ""
}
