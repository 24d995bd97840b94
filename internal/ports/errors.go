package ports

import "errors"

// ErrNotFound reports that a requested record does not exist in the
// backing store.
var ErrNotFound = errors.New("not found")
