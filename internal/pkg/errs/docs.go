// Package errs provides the standardized error types used across the
// coffeequeue application.
//
// The core defines exactly two recoverable error kinds: validation failures
// (a required field is missing or a value is outside its closed enumeration)
// and missing objects (a referenced order id does not exist). Both are
// translated at the adapter boundary into caller-visible responses. Anything
// else (storage I/O, connectivity) propagates untouched as an internal
// failure with a single synchronous attempt and no retry.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct carrying the parameter name and an optional cause
//   - constructors with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
package errs
