// Package filefilter checks that generated files are skipped.
package filefilter

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

func doThis(ctx context.Context) res { return res{} }

// [BAD]: hand-written files are still checked.
func badInHandwritten(ctx context.Context) {
	wrap()(func(ctx context.Context) (any, error) { // want `wrap\(\) does not declare the fallible functions unwrapped in its body` `wrap\(\) declarations do not match the unwrap\(\) calls in its body`
		return unwrap(doThis(ctx)), nil
	})
}
