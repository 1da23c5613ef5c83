package result

import (
	"time"

	"github.com/google/uuid"
)

// Result holds either an Ok value of type T or an Err value of type E,
// never both, never neither. Modelled closely after Rust's Result enum.
//
// The zero value is Err with a zero E payload; prefer the Ok/Err
// constructors, which also stamp provenance metadata.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	ok        T
	err       E
	isOk      bool
}

// Ok constructs a Result holding a success payload.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		ok:        v,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err constructs a Result holding a failure payload.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err:       e,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ErrFrom carries the Err payload of from into a Result with Ok type Out,
// keeping provenance metadata. Only meaningful when from is Err; an Ok input
// yields an Err result with a zero E payload.
func ErrFrom[Out, In, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isOk:      false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// OkFrom carries the Ok payload of from into a Result with Err type F,
// keeping provenance metadata. Only meaningful when from is Ok; an Err input
// yields an Ok result with a zero T payload.
func OkFrom[F, T, E any](from Result[T, E]) Result[T, F] {
	return Result[T, F]{
		ok:        from.ok,
		isOk:      true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// IsOk returns true if the Result holds a success payload.
func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

// IsErr returns true if the Result holds a failure payload.
func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// Ok returns the success payload, or None when the Result is Err.
func (r Result[T, E]) Ok() Option[T] {
	if r.isOk {
		return Some(r.ok)
	}
	return None[T]()
}

// Err returns the failure payload, or None when the Result is Ok.
func (r Result[T, E]) Err() Option[E] {
	if !r.isOk {
		return Some(r.err)
	}
	return None[E]()
}

// GetOr returns the success payload, or def when the Result is Err.
func (r Result[T, E]) GetOr(def T) T {
	if r.isOk {
		return r.ok
	}
	return def
}

// GetOrElse returns the success payload, or the value produced by f when the
// Result is Err. f is only invoked on the Err branch.
func (r Result[T, E]) GetOrElse(f func() T) T {
	if r.isOk {
		return r.ok
	}
	return f()
}

// Or returns r if it is Ok, otherwise alt. Both operands are already
// materialized; use OrElse when the alternative is expensive to compute.
func (r Result[T, E]) Or(alt Result[T, E]) Result[T, E] {
	if r.isOk {
		return r
	}
	return alt
}

// CreatedAt returns the creation time (UTC) of the originating constructor.
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// Id returns the provenance id stamped at construction.
func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}
