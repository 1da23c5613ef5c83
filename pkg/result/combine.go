package result

// Map transforms the Ok payload with onOk, leaving an Err payload untouched.
// onOk is never invoked on the Err branch.
//
// Can be used to compose the result of two functions.
func Map[T, U, E any](r Result[T, E], onOk func(T) U) Result[U, E] {
	if r.isOk {
		return Ok[U, E](onOk(r.ok))
	}
	return ErrFrom[U](r)
}

// MapErr transforms the Err payload with onErr, leaving an Ok payload
// untouched. onErr is never invoked on the Ok branch.
//
// Can be used to pass through a successful result while handling the error.
func MapErr[T, E, F any](r Result[T, E], onErr func(E) F) Result[T, F] {
	if !r.isOk {
		return Err[T, F](onErr(r.err))
	}
	return OkFrom[F](r)
}

// AndThen invokes onOk with the Ok payload and returns its Result directly;
// on the Err branch it short-circuits, carrying the Err payload over without
// invoking onOk. This is the bind used to sequence fallible steps.
func AndThen[T, U, E any](r Result[T, E], onOk func(T) Result[U, E]) Result[U, E] {
	if r.isOk {
		return onOk(r.ok)
	}
	return ErrFrom[U](r)
}

// OrElse invokes onErr with the Err payload and returns its Result directly;
// on the Ok branch it short-circuits, carrying the Ok payload over without
// invoking onErr.
func OrElse[T, E, F any](r Result[T, E], onErr func(E) Result[T, F]) Result[T, F] {
	if !r.isOk {
		return onErr(r.err)
	}
	return OkFrom[F](r)
}

// And returns alt if r is Ok, otherwise r's Err payload carried into alt's
// Ok type. Both operands are already materialized; use AndThen when the
// second step should only run on success.
func And[T, U, E any](r Result[T, E], alt Result[U, E]) Result[U, E] {
	if r.isOk {
		return alt
	}
	return ErrFrom[U](r)
}

// Fold collapses the Result into a single value, invoking exactly one of the
// two handlers. It is the total alternative to an unwrap.
func Fold[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.isOk {
		return onOk(r.ok)
	}
	return onErr(r.err)
}
