//go:build !assertions_disabled

package assert

// True panics unless cond holds. args follow the rules of failure.
func True(cond bool, args ...any) {
	if !cond {
		panic(failure(args))
	}
}

// NotNil panics when value is an untyped nil.
func NotNil(value any, args ...any) {
	if value == nil {
		panic(failure(args))
	}
}
