// Package parser reads worksheet grids and splits them into row blocks.
package parser

import (
	"fmt"

	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/models"
)

// RowReader yields worksheet rows one at a time.
type RowReader interface {
	// Next advances to the next row and reports whether one exists.
	Next() bool
	// Row returns the cells of the current row.
	Row() (models.Row, error)
	// Position returns the 1-based sheet row and column of the current row's first cell.
	Position() (row, col int)
	// Err returns the first error hit while advancing, if any.
	Err() error
}

// Segment splits the rows produced by r into blocks. Blocks are separated by
// rows whose cells are all blank; rows may have different lengths.
func Segment(r RowReader) ([]models.Block, error) {
	var blocks []models.Block
	var current models.Block

	flush := func() {
		if len(current.Rows) > 0 {
			blocks = append(blocks, current)
		}
		current = models.Block{}
	}

	for r.Next() {
		rowNum, colNum := r.Position()
		row, err := r.Row()
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", rowNum, err)
		}
		if row.IsEmpty() {
			flush()
			continue
		}
		if len(current.Rows) == 0 {
			current.StartRow = rowNum
			current.StartCol = colNum
		}
		current.Rows = append(current.Rows, row)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	flush()

	return blocks, nil
}

// SliceReader is a RowReader over rows held in memory.
type SliceReader struct {
	rows []models.Row
	pos  int
}

// NewSliceReader returns a reader yielding rows in order, starting at sheet row 1.
func NewSliceReader(rows ...models.Row) *SliceReader {
	return &SliceReader{rows: rows}
}

// Next advances to the next row.
func (s *SliceReader) Next() bool {
	if s.pos >= len(s.rows) {
		return false
	}
	s.pos++
	return true
}

// Row returns the current row.
func (s *SliceReader) Row() (models.Row, error) {
	return s.rows[s.pos-1], nil
}

// Position returns the 1-based sheet row of the current row and column 1.
func (s *SliceReader) Position() (int, int) {
	return s.pos, 1
}

// Err always returns nil.
func (s *SliceReader) Err() error {
	return nil
}
