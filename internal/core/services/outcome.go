package services

// outcome is the result of one fallible enrichment step.
type outcome[T any] struct {
	value T
	err   error
}

func attempt[T any](fn func() (T, error)) outcome[T] {
	v, err := fn()
	return outcome[T]{value: v, err: err}
}

// orDefault returns the value on success and def on failure.
func (o outcome[T]) orDefault(def T) T {
	if o.err != nil {
		return def
	}
	return o.value
}
