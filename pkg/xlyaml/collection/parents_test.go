package collection

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParents(t *testing.T) {
	tests := []struct {
		name   string
		depths []int
		want   []int
	}{
		{"flat", []int{0, 0, 0}, []int{-1, -1, -1}},
		{"list", []int{0, 1, 1}, []int{-1, 0, 0}},
		{"nested", []int{0, 1, 2, 2, 1, 2}, []int{-1, 0, 1, 1, 0, 4}},
		{"reset at zero", []int{0, 1, 0, 1}, []int{-1, 0, -1, 2}},
		{"gap resolves through unwind", []int{0, 2, 2}, []int{-1, 0, 0}},
		{"gap unwound by depth delta", []int{0, 1, 3, 2}, []int{-1, 0, 1, 0}},
		{"empty", []int{}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parents(tt.depths)
			if err != nil {
				t.Fatalf("Parents(%v) failed: %v", tt.depths, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parents(%v) mismatch (-want +got):\n%s", tt.depths, diff)
			}
		})
	}
}

func TestParentsAreShallower(t *testing.T) {
	sequences := [][]int{
		{0, 1, 2, 3, 2, 1, 0},
		{0, 1, 1, 2, 2, 1, 2},
		{0, 3, 3, 0, 1},
	}

	for _, depths := range sequences {
		parents, err := Parents(depths)
		if err != nil {
			t.Fatalf("Parents(%v) failed: %v", depths, err)
		}
		for i, p := range parents {
			if depths[i] == 0 {
				if p != NoParent {
					t.Errorf("%v: row %d at depth 0 has parent %d", depths, i, p)
				}
				continue
			}
			if p < 0 || p >= i {
				t.Errorf("%v: row %d has parent %d, expected an earlier row", depths, i, p)
				continue
			}
			if depths[p] >= depths[i] {
				t.Errorf("%v: parent %d of row %d is not shallower", depths, p, i)
			}
		}
	}
}

func TestParentsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		depths []int
		row    int
	}{
		{"first row indented", []int{1, 1}, 0},
		{"unwind past open levels", []int{0, 2, 1}, 2},
		{"unwind to empty stack", []int{0, 1, 3, 1}, 3},
		{"negative depth", []int{0, -1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parents(tt.depths)
			if !errors.Is(err, ErrMalformedGrid) {
				t.Fatalf("expected ErrMalformedGrid, got %v", err)
			}
			var re *RowError
			if !errors.As(err, &re) {
				t.Fatalf("expected *RowError, got %T", err)
			}
			if re.Row != tt.row {
				t.Errorf("error row = %d, expected %d", re.Row, tt.row)
			}
		})
	}
}
