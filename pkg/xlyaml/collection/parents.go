package collection

import "fmt"

// NoParent marks a row at depth 0.
const NoParent = -1

// Parents resolves the parent row of every row from the indent depths.
//
// An open ancestor chain is kept on a stack: a deeper row pushes the
// previous row, a row at the same depth shares the previous parent, and a
// shallower row pops one entry per level it drops. Depth 0 clears the stack.
func Parents(depths []int) ([]int, error) {
	parents := make([]int, len(depths))
	var stack []int

	for i, d := range depths {
		if d < 0 {
			return nil, &RowError{Row: i, Err: fmt.Errorf("%w: negative depth %d", ErrMalformedGrid, d)}
		}
		if d == 0 {
			parents[i] = NoParent
			stack = stack[:0]
			continue
		}
		if i == 0 {
			return nil, &RowError{Row: i, Err: fmt.Errorf("%w: first row is indented", ErrMalformedGrid)}
		}

		prev := depths[i-1]
		switch {
		case d > prev:
			stack = append(stack, i-1)
		case d < prev:
			pop := prev - d
			if pop >= len(stack) {
				return nil, &RowError{Row: i, Err: fmt.Errorf("%w: depth %d closes %d levels but only %d are open",
					ErrMalformedGrid, d, pop, len(stack))}
			}
			stack = stack[:len(stack)-pop]
		}
		if len(stack) == 0 {
			return nil, &RowError{Row: i, Err: fmt.Errorf("%w: no open parent at depth %d", ErrMalformedGrid, d)}
		}
		parents[i] = stack[len(stack)-1]
	}

	return parents, nil
}
