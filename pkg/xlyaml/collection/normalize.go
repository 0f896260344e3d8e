package collection

import "github.com/ukaji3/xlyaml-go/pkg/xlyaml/models"

// TrimRight drops trailing blank cells.
func TrimRight(row models.Row) models.Row {
	end := len(row)
	for end > 0 && row[end-1].IsBlank() {
		end--
	}
	return row[:end]
}

// TrimLeft drops leading blank cells and returns how many were dropped.
func TrimLeft(row models.Row) (models.Row, int) {
	n := 0
	for n < len(row) && row[n].IsBlank() {
		n++
	}
	return row[n:], n
}

// Normalize trims every row of a block on both sides. It returns the
// trimmed rows as scalar values and the indent depth of each row, which is
// the number of leading blank cells. Blank cells inside a row become null
// scalars.
func Normalize(rows []models.Row) ([][]Value, []int) {
	cells := make([][]Value, len(rows))
	depths := make([]int, len(rows))

	for i, row := range rows {
		trimmed, depth := TrimLeft(TrimRight(row))
		depths[i] = depth

		values := make([]Value, len(trimmed))
		for j, c := range trimmed {
			if c.IsBlank() {
				values[j] = Null()
			} else {
				values[j] = Scalar(c.Value)
			}
		}
		cells[i] = values
	}

	return cells, depths
}
