package catalog

import "errors"

// ErrNotFound indicates the requested URI has no catalog entry or yields no
// bytes.
var ErrNotFound = errors.New("resource not found")
