package parser

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/models"
	"github.com/xuri/excelize/v2"
)

// writeFixture saves a small indented sheet and reopens it.
func writeFixture(t *testing.T) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "key1")
	f.SetCellValue(sheetName, "B1", "value1")
	// Row 2 left blank
	f.SetCellValue(sheetName, "A3", "list1")
	f.SetCellValue(sheetName, "B4", "item1")
	f.SetCellValue(sheetName, "B5", 80)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestReadSheet(t *testing.T) {
	f := writeFixture(t)

	blocks, err := ReadSheet(f, "Sheet1", ReadOptions{})
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}

	want := []models.Block{
		{StartRow: 1, StartCol: 1, Rows: []models.Row{models.Strings("key1", "value1")}},
		{StartRow: 3, StartCol: 1, Rows: []models.Row{
			models.Strings("list1"),
			models.Strings("", "item1"),
			models.Strings("", "80"),
		}},
	}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestReadSheetArea(t *testing.T) {
	f := writeFixture(t)

	area, err := ParseArea("B3:B5")
	if err != nil {
		t.Fatalf("ParseArea failed: %v", err)
	}
	blocks, err := ReadSheet(f, "Sheet1", ReadOptions{Area: area})
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}

	b := blocks[0]
	if b.StartRow != 4 || b.StartCol != 2 {
		t.Errorf("Expected block at row 4 col 2, got row %d col %d", b.StartRow, b.StartCol)
	}
	if got := BlockRange(b); got != "B4:B5" {
		t.Errorf("Expected range B4:B5, got %q", got)
	}
}

func TestReadSheetMissing(t *testing.T) {
	f := writeFixture(t)
	if _, err := ReadSheet(f, "Nope", ReadOptions{}); err == nil {
		t.Error("Expected an error for a missing sheet")
	}
}

func TestCropColumns(t *testing.T) {
	tests := []struct {
		cols     []string
		c1, c2   int
		expected []string
	}{
		{[]string{"a", "b", "c"}, 2, 3, []string{"b", "c"}},
		{[]string{"a", "b", "c"}, 2, 10, []string{"b", "c"}},
		{[]string{"a"}, 2, 3, nil},
		{[]string{"a", "b", "c"}, 1, 1, []string{"a"}},
	}

	for _, tt := range tests {
		result := cropColumns(tt.cols, tt.c1, tt.c2)
		if diff := cmp.Diff(tt.expected, result); diff != "" {
			t.Errorf("cropColumns(%v, %d, %d) mismatch (-want +got):\n%s", tt.cols, tt.c1, tt.c2, diff)
		}
	}
}

func TestTrimMargin(t *testing.T) {
	blocks := []models.Block{
		{StartRow: 2, StartCol: 1, Rows: []models.Row{
			models.Strings("", "", "a", "b"),
			models.Strings("", "", "", "c"),
		}},
		{StartRow: 5, StartCol: 1, Rows: []models.Row{
			models.Strings("", "", "d"),
		}},
	}

	trimMargin(blocks)

	want := []models.Block{
		{StartRow: 2, StartCol: 3, Rows: []models.Row{
			models.Strings("a", "b"),
			models.Strings("", "c"),
		}},
		{StartRow: 5, StartCol: 3, Rows: []models.Row{
			models.Strings("d"),
		}},
	}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("trimMargin mismatch (-want +got):\n%s", diff)
	}
}
