package result

// Option holds either a single value of T or nothing. It is the return type
// of the Ok/Err accessors, so reading the wrong branch of a Result yields
// None instead of a panic.
type Option[T any] struct {
	value T
	some  bool
}

// Some constructs an Option containing v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the contained value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// GetOr returns the contained value, or def when the Option is empty.
func (o Option[T]) GetOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}
