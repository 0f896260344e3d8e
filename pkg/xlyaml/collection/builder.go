package collection

import (
	"fmt"
	"log/slog"
	"slices"
)

// Builder turns row groups into values and blocks into collections.
// The zero value is ready to use.
type Builder struct {
	// Lenient pairs table data rows with the header's sub-keys by position
	// and drops whatever does not line up, instead of failing with
	// ErrAmbiguousRowShape.
	Lenient bool
	// Logger receives debug traces of every collapse. Nil discards them.
	Logger *slog.Logger
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return b.Logger
}

// Build turns a group of rows sharing one parent into a value. With final
// set, or with a single row, only the first row is considered:
//
//	[k]          -> the cell itself
//	[k v]        -> {k: v}
//	[k v1 v2 ..] -> {k: [v1 v2 ..]}
//
// Otherwise the first row is a header. A one-cell header maps its key to a
// sequence of the following rows, each built as a single row. A wider
// header names sub-keys, and each following row becomes a record:
//
//	[k a b]
//	[1 2]    -> {k: [{a: 1, b: 2}, {a: 3, b: 4}]}
//	[3 4]
//
// Errors are *RowError values indexed from the start of the group.
func (b *Builder) Build(rows [][]Value, final bool) (Value, error) {
	if len(rows) == 0 {
		return Value{}, ErrEmptyBlock
	}
	if len(rows) == 1 || final {
		v, err := buildRow(rows[0])
		if err != nil {
			return Value{}, &RowError{Row: 0, Err: err}
		}
		return v, nil
	}

	header := rows[0]
	if len(header) == 0 {
		return Value{}, &RowError{Row: 0, Err: ErrEmptyBlock}
	}
	key, err := keyOf(header[0])
	if err != nil {
		return Value{}, &RowError{Row: 0, Err: err}
	}

	if len(header) == 1 {
		items := make([]Value, 0, len(rows)-1)
		for i, row := range rows[1:] {
			v, err := buildRow(row)
			if err != nil {
				return Value{}, &RowError{Row: i + 1, Err: err}
			}
			items = append(items, v)
		}
		return Mapping(key, Sequence(items...)), nil
	}

	subKeys := make([]string, len(header)-1)
	for i, cell := range header[1:] {
		if subKeys[i], err = keyOf(cell); err != nil {
			return Value{}, &RowError{Row: 0, Err: fmt.Errorf("sub-key %d: %w", i+1, err)}
		}
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(subKeys) {
			if !b.Lenient {
				return Value{}, &RowError{Row: i + 1, Err: fmt.Errorf("%w: %d cells under %d sub-keys of %q",
					ErrAmbiguousRowShape, len(row), len(subKeys), key)}
			}
			b.logger().Debug("truncating table row", "key", key, "cells", len(row), "sub_keys", len(subKeys))
		}
		n := min(len(row), len(subKeys))
		rec := make(Record, n)
		for j := range n {
			rec[j] = Field{Key: subKeys[j], Value: row[j]}
		}
		records = append(records, rec)
	}
	return Table(key, records...), nil
}

func buildRow(row []Value) (Value, error) {
	switch len(row) {
	case 0:
		return Value{}, ErrEmptyBlock
	case 1:
		return row[0], nil
	}

	key, err := keyOf(row[0])
	if err != nil {
		return Value{}, err
	}
	if len(row) == 2 {
		return Mapping(key, row[1]), nil
	}
	return Mapping(key, Sequence(slices.Clone(row[1:])...)), nil
}

func keyOf(v Value) (string, error) {
	if !v.IsKey() {
		if v.Kind == KindScalar {
			return "", fmt.Errorf("%w: blank key cell", ErrMalformedGrid)
		}
		return "", fmt.Errorf("%w: key cell holds a %s", ErrMalformedGrid, v.Kind)
	}
	return v.Text, nil
}
