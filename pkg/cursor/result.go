package cursor

// Result is the tagged success-or-failure value behind every fallible cursor
// operation. It is useful when results are collected rather than handled one
// by one, for example from a chunk sequence.
type Result[T any] struct {
	Value T
	Err   error
}

// Try wraps a (value, error) pair.
func Try[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Err: err}
}

// Ok reports whether the result holds a value.
func (r Result[T]) Ok() bool { return r.Err == nil }

// Get returns the value and error.
func (r Result[T]) Get() (T, error) { return r.Value, r.Err }

// Unwrap returns the value or panics with the error.
func (r Result[T]) Unwrap() T {
	if r.Err != nil {
		panic(r.Err)
	}
	return r.Value
}

// Must returns v or panics with err. Every MustX method is built on it.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
