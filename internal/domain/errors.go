package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
)

// BulkCreateError reports the failure of an all-or-nothing batch create. The
// whole batch has been rolled back when it is returned.
type BulkCreateError struct {
	Index int
	Err   error
}

func (e *BulkCreateError) Error() string {
	return fmt.Sprintf("bulk create failed at item %d: %v", e.Index, e.Err)
}

func (e *BulkCreateError) Unwrap() error {
	return e.Err
}
