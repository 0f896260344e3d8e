package xlyaml

import (
	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/collection"
	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/models"
)

// SheetData represents the converted contents of a single sheet.
type SheetData struct {
	// Name is the worksheet title.
	Name string
	// Blocks contains the segmented row blocks.
	Blocks []models.Block
	// Collections holds one collection per block, in block order.
	Collections []*collection.Collection
}

// WorkbookData represents workbook-level container with per-sheet data.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string
	// SheetOrder lists converted sheet names in workbook order.
	SheetOrder []string
	// Sheets maps sheet name to SheetData.
	Sheets map[string]SheetData
}
