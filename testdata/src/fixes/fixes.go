// Package fixes exercises the suggested fix attached to the umbrella
// diagnostic; the .golden file is the post-fix source.
package fixes

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
func doOther(ctx context.Context) res       { return res{} }

func fixMissing(ctx context.Context) {
	wrap()(func(ctx context.Context) (any, error) { // want `wrap\(\) does not declare the fallible functions unwrapped in its body` `wrap\(\) declarations do not match the unwrap\(\) calls in its body`
		return unwrap(doThis(ctx)), nil
	})
}

func fixMismatch(ctx context.Context) {
	wrap(doThis, doOther)(func(ctx context.Context) (any, error) { // want `"doOther" is declared in wrap\(\) but never unwrapped` `wrap\(\) declarations do not match the unwrap\(\) calls in its body`
		a := unwrap(doThis(ctx))
		b := unwrap(<-doThat(ctx)) // want `"doThat" is unwrapped but not declared in the enclosing wrap\(\)`
		_ = b
		return a, nil
	})
}

func fixStale(ctx context.Context) {
	wrap(doThis)(func(ctx context.Context) (any, error) { // want `"doThis" is declared in wrap\(\) but never unwrapped` `wrap\(\) declarations do not match the unwrap\(\) calls in its body`
		return nil, nil
	})
}

func fixDuplicate(ctx context.Context) {
	wrap(doThis, doThis)(func(ctx context.Context) (any, error) { // want `"doThis" is declared more than once in wrap\(\)` `wrap\(\) declarations do not match the unwrap\(\) calls in its body`
		return unwrap(doThis(ctx)), nil
	})
}
