package modelmap

import (
	"errors"
	"fmt"
)

var (
	ErrNilSource        = errors.New("source record is nil")
	ErrInvalidDirection = errors.New("invalid mapping direction")
	ErrUnknownEntry     = errors.New("unknown specification entry")
	ErrFactory          = errors.New("entity factory failed")
	ErrNotAStruct       = errors.New("value is not a struct or record")
)

// EntryError reports a failure while applying a single specification entry.
// The mapping call that produced it returned no record.
type EntryError struct {
	Index     int
	ModelKey  string
	Direction Direction
	Err       error
}

func (e *EntryError) Error() string {
	if e.ModelKey == "" {
		return fmt.Sprintf("entry %d (%s): %v", e.Index, e.Direction, e.Err)
	}

	return fmt.Sprintf("entry %d %q (%s): %v", e.Index, e.ModelKey, e.Direction, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
