package collection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/models"
)

func TestTrimIsIdempotent(t *testing.T) {
	rows := []models.Row{
		models.Strings("", "", "a", "", "b", "", ""),
		models.Strings("a", "b"),
		models.Strings("", "x"),
		models.Strings("x", "", ""),
	}

	for _, row := range rows {
		right := TrimRight(row)
		if diff := cmp.Diff(right, TrimRight(right)); diff != "" {
			t.Errorf("TrimRight not idempotent for %v (-once +twice):\n%s", row, diff)
		}

		left, _ := TrimLeft(right)
		again, n := TrimLeft(left)
		if n != 0 {
			t.Errorf("TrimLeft of trimmed row %v removed %d cells", left, n)
		}
		if diff := cmp.Diff(left, again); diff != "" {
			t.Errorf("TrimLeft not idempotent for %v (-once +twice):\n%s", row, diff)
		}
	}
}

func TestNormalize(t *testing.T) {
	rows := []models.Row{
		models.Strings("key1", "value1", "", ""),
		models.Strings("list1", ""),
		models.Strings("", "item1"),
		models.Strings("", "", "deep", "", "x"),
	}

	cells, depths := Normalize(rows)

	wantDepths := []int{0, 0, 1, 2}
	if diff := cmp.Diff(wantDepths, depths); diff != "" {
		t.Errorf("depths mismatch (-want +got):\n%s", diff)
	}

	wantCells := [][]Value{
		{Scalar("key1"), Scalar("value1")},
		{Scalar("list1")},
		{Scalar("item1")},
		{Scalar("deep"), Null(), Scalar("x")},
	}
	if diff := cmp.Diff(wantCells, cells); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeLeavesDepthZeroRowsIntact(t *testing.T) {
	cells, depths := Normalize([]models.Row{models.Strings("a", "", "b")})
	if depths[0] != 0 {
		t.Fatalf("depth = %d, expected 0", depths[0])
	}
	if len(cells[0]) != 3 {
		t.Errorf("expected 3 cells, got %d", len(cells[0]))
	}
}
