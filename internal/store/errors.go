package store

import "errors"

// Namespace operations fail with one of these sentinel errors, wrapped with
// the offending name for context. Callers match with errors.Is.
var (
	// ErrDuplicate is returned when an add or rename targets a name that
	// is already occupied in the relevant namespace.
	ErrDuplicate = errors.New("name already present")

	// ErrNotFound is returned when a lookup, rename source or removal
	// targets a name absent from the relevant namespace, or when a path
	// segment does not resolve to a container.
	ErrNotFound = errors.New("not found")

	// ErrNaughtyCharacter is returned when a name contains one of the
	// disallowed characters (see illegalNameChars).
	ErrNaughtyCharacter = errors.New("illegal character in name")

	// ErrBadPath is reserved for path validation failures. No current
	// operation returns it.
	ErrBadPath = errors.New("bad path")
)
