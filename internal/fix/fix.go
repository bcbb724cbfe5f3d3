// Package fix synthesizes the edit that restores consistency between a
// wrap construct's declaration list and the unwrap calls in its body.
package fix

import (
	"fmt"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/wrapunion/wrapunion/internal/scope"
)

// Synthesize builds a fix replacing the declared list of w with the
// functions actually unwrapped in its body, in first-seen source order.
//
// The declared members are never consulted: the list is regenerated in full
// from the recorded unwrap calls, so applying the fix and re-running the
// checker always yields a clean result. The single edit spans the text
// between the declaration call's parentheses, which covers both the
// insert-into-empty-list and replace-existing-list cases.
func Synthesize(w *scope.Wrap, wrapName string) analysis.SuggestedFix {
	names := w.Names()

	var message string
	if len(names) == 0 {
		message = fmt.Sprintf("remove the stale %s() declarations", wrapName)
	} else {
		message = fmt.Sprintf("declare %s in %s()", strings.Join(names, ", "), wrapName)
	}

	return analysis.SuggestedFix{
		Message: message,
		TextEdits: []analysis.TextEdit{{
			Pos:     w.Decl.Lparen + 1,
			End:     w.Decl.Rparen,
			NewText: []byte(strings.Join(names, ", ")),
		}},
	}
}
