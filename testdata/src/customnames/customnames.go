// Package customnames exercises the -wrap-name / -unwrap-name flags: the
// analyzer polices enclose/extract here and leaves wrap/unwrap alone.
package customnames

import "context"

type res struct {
	val any
	err error
}

func enclose(fns ...any) func(any) res {
	_ = fns
	return func(any) res { return res{} }
}

func extract(v any) any { return v }

func wrap(fns ...any) func(any) res {
	_ = fns
	return func(any) res { return res{} }
}

func unwrap(v any) any { return v }

func doThis(ctx context.Context) res        { return res{} }
func doThat(ctx context.Context) <-chan res { return nil }

// [BAD]: mismatch under the configured names.
func badConfiguredNames(ctx context.Context) {
	enclose(doThis)(func(ctx context.Context) (any, error) { // want `"doThis" is declared in enclose\(\) but never unwrapped` `enclose\(\) declarations do not match the extract\(\) calls in its body`
		return extract(<-doThat(ctx)), nil // want `"doThat" is unwrapped but not declared in the enclosing enclose\(\)`
	})
}

// [GOOD]: the default names are not configured, so this stays silent.
func goodDefaultNamesInactive(ctx context.Context) {
	wrap()(func(ctx context.Context) (any, error) {
		return unwrap(doThis(ctx)), nil
	})
}
