package models

// Block is a maximal run of non-empty rows in a worksheet.
type Block struct {
	// StartRow is the 1-based sheet row of the first row in the block.
	StartRow int
	// StartCol is the 1-based sheet column of the first cell of every row.
	StartCol int
	// Rows holds the block rows in sheet order.
	Rows []Row
}

// Width returns the length of the longest row.
func (b Block) Width() int {
	w := 0
	for _, r := range b.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}
