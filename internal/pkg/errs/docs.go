// Package errs provides the standardized error taxonomy for the marketplace
// backend. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package defines error types for the failure classes the core
// distinguishes:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed, missing, or out-of-range input
//   - ObjectNotFoundError: an identifier could not be resolved
//   - NotAuthorizedError: the actor lacks the role or does not own the resource
//   - StateConflictError: a business guard condition was false
//   - ConcurrencyConflictError: a transactional re-check failed; retryable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for message formatting and Unwrap() for errors.Is classification
//
// Callers branch on the sentinels, never on message text.
package errs
