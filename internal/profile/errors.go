package profile

import "errors"

// Sentinel errors for store operations. The CLI layer maps these to exit
// codes with errors.Is, so mutating operations must wrap rather than replace
// them.
var (
	// ErrMalformedStore marks a profiles file that exists but cannot be
	// parsed into an ordered list of unique name/backend pairs.
	ErrMalformedStore = errors.New("malformed profiles file")
	// ErrNotFound marks an operation referencing a profile name that is not
	// in the store.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName marks an add using a name that is already taken.
	ErrDuplicateName = errors.New("already exists")
)
