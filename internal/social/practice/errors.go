package practice

import "errors"

// Lookup failures are recoverable: an entity temporarily outside any
// practice or a role without a display name is an expected runtime state,
// not a crash. Callers match with errors.Is; the wrapped message carries
// the offending key.
var (
	// ErrRoleNotFound reports a role with no registered display name.
	ErrRoleNotFound = errors.New("role not found")

	// ErrEntityNotFound reports an entity bound to no role in a practice.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrDuplicateEntity reports a cast that binds one entity to more
	// than one role. Rejected at construction so role lookups can never
	// be ambiguous.
	ErrDuplicateEntity = errors.New("entity bound to multiple roles")
)
