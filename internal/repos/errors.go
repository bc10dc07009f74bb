package repos

import "errors"

// ErrNotFound is surfaced to handlers as a 404; it is the only repo error the
// API maps to a client-visible condition.
var ErrNotFound = errors.New("record not found")
