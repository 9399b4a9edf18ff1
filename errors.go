package cubezdd

import "errors"

// Core validation errors. These are returned to callers who can
// legitimately trigger them; they can be wrapped with additional context
// using fmt.Errorf. Invariant violations (a malformed mk call, a broken
// reduction) are not in this list: those panic, since they indicate a
// bug in this package rather than a condition a caller can recover from.
var (
	// ErrInvalidNode indicates a NodeID does not exist in the store's
	// node table.
	ErrInvalidNode = errors.New("invalid node")

	// ErrNonSingletonQuery indicates Count was called with a query
	// expression that does not denote exactly one set (one path to Top).
	ErrNonSingletonQuery = errors.New("query does not denote a singleton tree")
)
