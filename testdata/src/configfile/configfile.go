// Package configfile exercises names supplied through a YAML config file.
package configfile

import "context"

type res struct {
	val any
	err error
}

func envelop(fns ...any) func(any) res {
	_ = fns
	return func(any) res { return res{} }
}

func take(v any) any { return v }

func doThis(ctx context.Context) res { return res{} }

// [BAD]: missing declaration list under file-configured names.
func badFromConfig(ctx context.Context) {
	envelop()(func(ctx context.Context) (any, error) { // want `envelop\(\) does not declare the fallible functions unwrapped in its body` `envelop\(\) declarations do not match the take\(\) calls in its body`
		return take(doThis(ctx)), nil
	})
}
