package command

import (
	"errors"
	"fmt"
)

// ErrRevertBucket is returned by a handler to signal success while refunding
// the caller's rate-limit slot, so only failed attempts count against the
// bucket.
var ErrRevertBucket = errors.New("revert bucket consumption")

// NotFoundError reports an unrecognized command name, optionally carrying
// the nearest known name as a suggestion.
type NotFoundError struct {
	Name       string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}
