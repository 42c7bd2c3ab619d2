// Package errs provides standardized error types for the marketplace service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The application-level failure taxonomy (not found, invalid transition,
// authorization, claim conflicts) is layered on top of these primitives so
// that adapters can translate failures into transport responses without
// string matching.
package errs
