// Package scope tracks the stack of currently-open wrap constructs.
//
// Wrap constructs nest, so the traversal keeps one scope per open construct
// on an explicit linked stack: pushed the moment a construct is recognized,
// popped when the traversal leaves its body literal. Nothing outlives its
// construct; the stack depth always equals the current nesting depth.
package scope

import "go/ast"

// Wrap represents one currently-open wrap construct.
type Wrap struct {
	parent *Wrap

	// Callee is the wrap identifier at the call site. Diagnostics about the
	// construct as a whole anchor here.
	Callee *ast.Ident

	// Decl is the inner wrap(...) call carrying the declared function list
	// and the parenthesis positions the fix edits between.
	Decl *ast.CallExpr

	// Fn is the body literal passed to the construct. The matching exit
	// event is detected by pointer identity against this node.
	Fn *ast.FuncLit

	// Entered becomes true once the traversal enters Fn. Unwrap calls seen
	// while false sit in the construct's argument positions, not its body,
	// and are not recorded.
	Entered bool

	names []string
	calls map[string]*ast.CallExpr
}

// Record notes that the named function was unwrapped at the given call.
// The first occurrence wins; later unwraps of the same name are dropped,
// since reconciliation only needs presence per name.
func (w *Wrap) Record(name string, call *ast.CallExpr) {
	if w.calls == nil {
		w.calls = make(map[string]*ast.CallExpr)
	}
	if _, ok := w.calls[name]; ok {
		return
	}
	w.calls[name] = call
	w.names = append(w.names, name)
}

// Names returns the unwrapped function names in first-seen order.
func (w *Wrap) Names() []string {
	return w.names
}

// Call returns the recorded unwrap call for name, or nil.
func (w *Wrap) Call(name string) *ast.CallExpr {
	return w.calls[name]
}

// Stack is a linked stack of open wrap constructs.
type Stack struct {
	top *Wrap
}

// Push makes w the innermost open construct.
func (s *Stack) Push(w *Wrap) {
	w.parent = s.top
	s.top = w
}

// Top returns the innermost open construct, or nil.
func (s *Stack) Top() *Wrap {
	return s.top
}

// PopIf pops and returns the top scope when fn is its body literal.
// Exits of unrelated functions are no-ops and return nil; most function
// exits do not belong to any open construct.
func (s *Stack) PopIf(fn *ast.FuncLit) *Wrap {
	if s.top == nil || s.top.Fn != fn {
		return nil
	}
	w := s.top
	s.top = w.parent
	w.parent = nil
	return w
}
