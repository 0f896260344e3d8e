package collection

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid indicates indentation or key cells that cannot form a tree.
	ErrMalformedGrid = errors.New("malformed grid")
	// ErrAmbiguousRowShape indicates a table data row whose width differs from its header.
	ErrAmbiguousRowShape = errors.New("ambiguous row shape")
	// ErrEmptyBlock indicates a row group or row without cells.
	ErrEmptyBlock = errors.New("empty block")
)

// RowError attaches the 0-based index of the offending row within its block.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
