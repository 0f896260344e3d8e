package parser

import (
	"fmt"

	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/models"
	"github.com/xuri/excelize/v2"
)

// ReadOptions controls how cell values are read from a sheet.
type ReadOptions struct {
	// RawValues reads unformatted cell values instead of display text.
	RawValues bool
	// Area restricts reading to a rectangular range. Nil reads the whole sheet.
	Area *models.Area
}

// ReadSheet streams the rows of a sheet and segments them into blocks.
// Columns left of the first used column are dropped from every block, so
// indentation is measured from the sheet's used range.
func ReadSheet(f *excelize.File, sheetName string, opts ReadOptions) ([]models.Block, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sr := &sheetRows{rows: rows, area: opts.Area}
	if opts.RawValues {
		sr.opts = []excelize.Options{{RawCellValue: true}}
	}
	blocks, err := Segment(sr)
	if err != nil {
		return nil, err
	}
	trimMargin(blocks)
	return blocks, nil
}

// trimMargin removes the leading blank columns shared by every row.
func trimMargin(blocks []models.Block) {
	margin := -1
	for _, b := range blocks {
		for _, row := range b.Rows {
			if n := leadingBlanks(row); margin < 0 || n < margin {
				margin = n
			}
		}
	}
	if margin <= 0 {
		return
	}

	for i := range blocks {
		for j, row := range blocks[i].Rows {
			blocks[i].Rows[j] = row[margin:]
		}
		blocks[i].StartCol += margin
	}
}

func leadingBlanks(row models.Row) int {
	n := 0
	for n < len(row) && row[n].IsBlank() {
		n++
	}
	return n
}

// sheetRows adapts excelize's row iterator to RowReader.
type sheetRows struct {
	rows *excelize.Rows
	opts []excelize.Options
	area *models.Area
	cur  int
}

func (s *sheetRows) Next() bool {
	for s.rows.Next() {
		s.cur++
		if s.area == nil || s.area.ContainsRow(s.cur) {
			return true
		}
		if s.cur > s.area.R2 {
			return false
		}
	}
	return false
}

func (s *sheetRows) Row() (models.Row, error) {
	cols, err := s.rows.Columns(s.opts...)
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	if s.area != nil {
		cols = cropColumns(cols, s.area.C1, s.area.C2)
	}
	return models.Strings(cols...), nil
}

func (s *sheetRows) Position() (int, int) {
	if s.area != nil {
		return s.cur, s.area.C1
	}
	return s.cur, 1
}

func (s *sheetRows) Err() error {
	return s.rows.Error()
}

// cropColumns keeps the 1-based inclusive column range [c1, c2].
func cropColumns(cols []string, c1, c2 int) []string {
	if c1-1 >= len(cols) {
		return nil
	}
	if c2 > len(cols) {
		c2 = len(cols)
	}
	return cols[c1-1 : c2]
}
