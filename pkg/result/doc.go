// Package result provides Result[T, E], a closed sum type holding either an
// Ok value of type T or an Err value of type E, plus the combinators to
// navigate between the two branches without panics or exceptions.
//
// Highlights:
// - Ok/Err: named constructors, the variant is always caller-declared
// - IsOk/IsErr: discriminant inspection
// - Ok()/Err(): total, Option-returning accessors
// - Map/MapErr: transform one branch, leave the other untouched
// - AndThen/OrElse: lazy, short-circuiting composition
// - And/Or: eager selection between already-materialized results
// - GetOr/GetOrElse/Fold: extraction with a fallback
//
// Type-changing combinators are package-level functions because Go methods
// cannot introduce type parameters.
package result
