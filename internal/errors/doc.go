// Package errors provides structured error handling for realmd.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("world item not found")
//	err := errors.OutOfRangef("slot index %d out of range", idx)
//
// Adding metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", charID).
//	    WithMeta("user_id", userID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load character")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // item was already picked up by a concurrent session
//	}
//
// # Taxonomy
//
// The session core maps its recoverable/fatal error classes onto codes:
//   - Unauthenticated: handshake token missing or invalid (fatal, connection refused)
//   - PermissionDenied: character does not belong to the user (fatal, disconnect)
//   - InvalidArgument: rejected movement or malformed client request (recoverable)
//   - NotFound: world item already gone (recoverable, logged)
//   - ResourceExhausted: inventory full (recoverable, user-visible)
//   - OutOfRange: bad slot index (recoverable, logged)
//   - Unavailable/Internal: persistence failures (recoverable but noteworthy)
package errors
