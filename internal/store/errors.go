package store

import "fmt"

// PersistenceError wraps a failure to read or write application data. It is
// propagated unchanged to the caller; the operation that produced it makes
// no partial state change.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store %s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
