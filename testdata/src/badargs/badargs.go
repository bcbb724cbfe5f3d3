// Package badargs covers malformed declaration members and malformed
// unwrap arguments.
package badargs

import "context"

type res struct {
	val any
	err error
}

func wrap(fns ...any) func(any) res {
	_ = fns
	return func(any) res { return res{} }
}

func unwrap(v any) any { return v }

func doThis(ctx context.Context) res        { return res{} }
func doThat(ctx context.Context) <-chan res { return nil }

// [BAD]: a declaration member that is not a bare function reference.
func badMember(ctx context.Context) {
	wrap( // want `wrap\(\) declarations do not match the unwrap\(\) calls in its body`
		"doThis", // want `wrap\(\) arguments must be bare references to fallible functions`
		doThat,
	)(func(ctx context.Context) (any, error) {
		return unwrap(<-doThat(ctx)), nil
	})
}

// [BAD]: unwrap argument is a literal; reported eagerly and excluded from
// reconciliation, which stays consistent here.
func badUnwrapLiteral(ctx context.Context) {
	wrap(doThis)(func(ctx context.Context) (any, error) {
		v := unwrap(42) // want `unwrap\(\) argument must be a direct call to a fallible function`
		_ = v
		return unwrap(doThis(ctx)), nil
	})
}

// [BAD]: unwrap argument is a plain variable, not a call.
func badUnwrapVar(ctx context.Context) {
	pre := doThis(ctx)
	wrap(doThis)(func(ctx context.Context) (any, error) {
		v := unwrap(pre) // want `unwrap\(\) argument must be a direct call to a fallible function`
		_ = v
		return unwrap(doThis(ctx)), nil
	})
}

// [BAD]: an unwrap sitting in the declaration positions is not part of the
// body; it is a malformed member, and doThis is not recorded as unwrapped.
func badUnwrapInDeclArgs(ctx context.Context) {
	wrap(unwrap(doThis(ctx)), doThat)(func(ctx context.Context) (any, error) { // want `wrap\(\) arguments must be bare references to fallible functions` `wrap\(\) declarations do not match the unwrap\(\) calls in its body`
		return unwrap(<-doThat(ctx)), nil
	})
}
