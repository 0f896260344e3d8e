// Package collection rebuilds nested objects from indented row blocks.
package collection

import "fmt"

// Kind identifies the shape of a Value.
type Kind int

const (
	// KindScalar is a single cell value, possibly null.
	KindScalar Kind = iota
	// KindMapping is one key mapped to a Value.
	KindMapping
	// KindSequence is an ordered list of Values.
	KindSequence
	// KindTable is one key mapped to a list of records keyed by the header's sub-keys.
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindTable:
		return "table"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field is one sub-key of a table record.
type Field struct {
	Key   string
	Value Value
}

// Record is one data row of a table.
type Record []Field

// Value is the result of building a row group. Only the fields that belong
// to Kind are set.
type Value struct {
	Kind Kind

	// Text holds a non-null scalar.
	Text string
	// Null marks a scalar built from a blank cell.
	Null bool

	// Key names a mapping or table.
	Key string
	// Elem is the value of a mapping.
	Elem *Value
	// Items are the elements of a sequence.
	Items []Value
	// Records are the rows of a table.
	Records []Record
}

// Scalar returns a text scalar.
func Scalar(s string) Value {
	return Value{Kind: KindScalar, Text: s}
}

// Null returns the null scalar.
func Null() Value {
	return Value{Kind: KindScalar, Null: true}
}

// Mapping returns a single-key mapping.
func Mapping(key string, v Value) Value {
	return Value{Kind: KindMapping, Key: key, Elem: &v}
}

// Sequence returns a sequence of items.
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: KindSequence, Items: items}
}

// Table returns a key mapped to a list of records.
func Table(key string, records ...Record) Value {
	if records == nil {
		records = []Record{}
	}
	return Value{Kind: KindTable, Key: key, Records: records}
}

// IsKey reports whether the value can name a mapping.
func (v Value) IsKey() bool {
	return v.Kind == KindScalar && !v.Null
}

// Interface lowers the value to string, nil, []any and map[string]any.
func (v Value) Interface() any {
	switch v.Kind {
	case KindScalar:
		if v.Null {
			return nil
		}
		return v.Text
	case KindMapping, KindTable:
		return map[string]any{v.Key: v.body()}
	case KindSequence:
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			out[i] = item.Interface()
		}
		return out
	}
	return nil
}

// entry returns the key and lowered value of a mapping or table.
func (v Value) entry() (string, any, bool) {
	if v.Kind != KindMapping && v.Kind != KindTable {
		return "", nil, false
	}
	return v.Key, v.body(), true
}

func (v Value) body() any {
	switch v.Kind {
	case KindMapping:
		if v.Elem == nil {
			return nil
		}
		return v.Elem.Interface()
	case KindTable:
		out := make([]any, len(v.Records))
		for i, rec := range v.Records {
			m := make(map[string]any, len(rec))
			for _, f := range rec {
				m[f.Key] = f.Value.Interface()
			}
			out[i] = m
		}
		return out
	}
	return nil
}

func (v Value) String() string {
	return fmt.Sprintf("%s(%v)", v.Kind, v.Interface())
}
