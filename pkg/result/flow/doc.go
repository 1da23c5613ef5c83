// Package flow contains single-value, synchronous railway helpers that
// operate on Result[T, error]. These functions form the building blocks for
// error-aware pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[T, error]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In, error] to Result[Out, error]
// - Map/DoubleMap: transform successful values (with an optional error handler)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
// - Join: fold a sequence of steps over one input with a concat policy
package flow
