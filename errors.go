package dropdown

import "errors"

var (
	// ErrNoMemory is returned when the allocator refuses a request.
	// The requested mutation or transition is abandoned.
	ErrNoMemory = errors.New("dropdown: out of memory")

	// ErrTruncated is returned when a caller buffer was too small to hold the
	// selected option. The buffer still holds the NUL-terminated prefix.
	ErrTruncated = errors.New("dropdown: selected text truncated")

	// ErrInvalidIndex is returned for negative indices and positions.
	ErrInvalidIndex = errors.New("dropdown: invalid index")

	// ErrDeleted is returned by operations on a deleted control.
	ErrDeleted = errors.New("dropdown: control deleted")
)
