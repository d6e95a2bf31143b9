// Package errs provides the standardized error types used across the
// dispatch backend: object-not-found, invalid/required/out-of-range
// values, and invalid versions.
//
// Each error type follows the same pattern: a sentinel error variable
// (e.g. ErrObjectNotFound), a struct carrying the error details,
// constructors with and without an underlying cause, an Error() method
// for formatting, and an Unwrap() method so errors.Is can classify any
// instance against its sentinel.
//
// The application and adapter layers rely on this classification to map
// failures onto the HTTP error taxonomy (404 for not-found, 400 for
// validation, 500 for everything else).
package errs
