package collection

import (
	"errors"
	"slices"

	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/models"
)

// Reduce builds the collection of a block.
//
// The deepest row nearest the end of the block is folded, together with its
// siblings, into its parent row; depths and parents are recomputed and the
// step repeats until every row is at depth 0. Each remaining row is then
// built on its own and the resulting mappings are merged in row order.
// Values that are not mappings are dropped.
//
// Errors are *RowError values indexed by the row's position in the block.
func (b *Builder) Reduce(block models.Block) (*Collection, error) {
	c := NewCollection()
	if len(block.Rows) == 0 {
		return c, nil
	}
	log := b.logger()

	rows, depths := Normalize(block.Rows)
	origin := make([]int, len(rows))
	for i := range origin {
		origin[i] = i
	}

	parents, err := Parents(depths)
	if err != nil {
		return nil, relocate(err, origin, 0)
	}

	for maxDepth := slices.Max(depths); maxDepth > 0; maxDepth = slices.Max(depths) {
		idx := lastIndex(depths, maxDepth)
		p := parents[idx]
		log.Debug("collapsing rows",
			"max_depth", maxDepth, "row", origin[idx], "parent", origin[p], "size", idx-p+1)

		v, err := b.Build(rows[p:idx+1], false)
		if err != nil {
			return nil, relocate(err, origin, p)
		}

		rows[p] = []Value{v}
		rows = slices.Delete(rows, p+1, idx+1)
		depths = slices.Delete(depths, p+1, idx+1)
		origin = slices.Delete(origin, p+1, idx+1)

		if parents, err = Parents(depths); err != nil {
			return nil, relocate(err, origin, 0)
		}
	}

	for i, row := range rows {
		v, err := b.Build([][]Value{row}, true)
		if err != nil {
			return nil, relocate(err, origin, i)
		}
		key, val, ok := v.entry()
		if !ok {
			log.Debug("dropping top-level value without key", "row", origin[i], "kind", v.Kind)
			continue
		}
		if c.Has(key) {
			log.Warn("duplicate key replaces earlier value", "key", key, "row", origin[i])
		}
		c.Set(key, val)
	}

	return c, nil
}

func lastIndex(depths []int, depth int) int {
	for i := len(depths) - 1; i >= 0; i-- {
		if depths[i] == depth {
			return i
		}
	}
	return -1
}

// relocate rewrites a group-relative RowError so it points at the block row.
func relocate(err error, origin []int, offset int) error {
	var re *RowError
	if errors.As(err, &re) {
		if i := offset + re.Row; i >= 0 && i < len(origin) {
			re.Row = origin[i]
		}
		return re
	}
	return &RowError{Row: origin[offset], Err: err}
}
