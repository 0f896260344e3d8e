// Package models defines data structures for worksheet conversion.
package models

// Cell is a single worksheet cell: either text or blank.
type Cell struct {
	// Value is the cell text. Meaningful only when Valid is true.
	Value string
	// Valid is false for blank cells.
	Valid bool
}

// Blank is the empty cell.
var Blank = Cell{}

// Text returns a non-blank cell holding s.
func Text(s string) Cell {
	return Cell{Value: s, Valid: true}
}

// IsBlank reports whether the cell has no content.
func (c Cell) IsBlank() bool {
	return !c.Valid
}

// Row is an ordered sequence of cells. Rows may differ in length.
type Row []Cell

// IsEmpty reports whether every cell in the row is blank.
func (r Row) IsEmpty() bool {
	for _, c := range r {
		if c.Valid {
			return false
		}
	}
	return true
}

// Strings builds a row from string values, mapping "" to Blank.
// It is mostly useful for building grids in tests and adapters.
func Strings(values ...string) Row {
	row := make(Row, len(values))
	for i, v := range values {
		if v != "" {
			row[i] = Text(v)
		}
	}
	return row
}
