package xlyaml

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/collection"
	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/models"
	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates a requested sheet is missing from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ConversionError represents an error while converting a sheet or one of its blocks.
type ConversionError struct {
	SheetName string
	// Block is the 1-based block number, or 0 for sheet-level errors.
	Block int
	// Range is the A1 range of the block.
	Range string
	// Row is the 1-based sheet row at fault, or 0 when unknown.
	Row int
	Err error
}

func (e *ConversionError) Error() string {
	if e.Block == 0 {
		return fmt.Sprintf("sheet %q: %v", e.SheetName, e.Err)
	}
	var re *collection.RowError
	if e.Row > 0 && errors.As(e.Err, &re) {
		return fmt.Sprintf("sheet %q block %d (%s) row %d: %v", e.SheetName, e.Block, e.Range, e.Row, re.Err)
	}
	return fmt.Sprintf("sheet %q block %d (%s): %v", e.SheetName, e.Block, e.Range, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a ConversionError for a whole sheet.
func NewSheetError(sheetName string, err error) *ConversionError {
	return &ConversionError{
		SheetName: sheetName,
		Err:       err,
	}
}

// NewBlockError creates a ConversionError locating err inside a block.
func NewBlockError(sheetName string, n int, b models.Block, err error) *ConversionError {
	e := &ConversionError{
		SheetName: sheetName,
		Block:     n,
		Range:     parser.BlockRange(b),
		Err:       err,
	}
	var re *collection.RowError
	if errors.As(err, &re) && b.StartRow > 0 {
		e.Row = b.StartRow + re.Row
	}
	return e
}
