package output

import (
	"fmt"

	"github.com/itchyny/gojq"
)

// Query is a compiled jq expression applied to every document of a sheet.
type Query struct {
	code *gojq.Code
}

// CompileQuery parses and compiles a jq expression.
func CompileQuery(expr string) (*Query, error) {
	parsed, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}
	return &Query{code: code}, nil
}

// Apply runs the query on each document. Every value a query emits becomes
// one output document, so a query may drop, keep or fan out documents.
// Documents must be built from map[string]any, []any, strings and nil.
func (q *Query) Apply(docs []any) ([]any, error) {
	var out []any
	for i, doc := range docs {
		iter := q.code.Run(doc)
		for {
			v, ok := iter.Next()
			if !ok {
				break
			}
			if err, isErr := v.(error); isErr {
				return nil, fmt.Errorf("query error in document %d: %w", i+1, err)
			}
			out = append(out, v)
		}
	}
	return out, nil
}
