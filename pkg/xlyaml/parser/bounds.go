package parser

import (
	"fmt"

	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/models"
	"github.com/xuri/excelize/v2"
)

// BlockRange returns the A1-style range covered by a block (e.g. "A3:D8").
// It returns "" for a block without rows or coordinates.
func BlockRange(b models.Block) string {
	width := b.Width()
	if len(b.Rows) == 0 || width == 0 || b.StartRow < 1 || b.StartCol < 1 {
		return ""
	}

	startCell, err := excelize.CoordinatesToCellName(b.StartCol, b.StartRow)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(b.StartCol+width-1, b.StartRow+len(b.Rows)-1)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// CountNonEmptyCells counts non-blank cells in a block.
func CountNonEmptyCells(b models.Block) int {
	count := 0
	for _, row := range b.Rows {
		for _, cell := range row {
			if !cell.IsBlank() {
				count++
			}
		}
	}
	return count
}
