package portfolio

// Option holds a value that may be absent. The fetcher returns None when a
// resource failed to load so binders see absence in the type rather than
// through nil checks.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns the absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Present reports whether a value is held.
func (o Option[T]) Present() bool {
	return o.ok
}

// OrZero returns the value or the zero value of T.
func (o Option[T]) OrZero() T {
	return o.value
}
