// Package finisher deduplicates schema type descriptors by name and prunes
// change-event payload shapes irrelevant to a query API.
package finisher

import (
	"query-schema-gen/internal/convention"
	"query-schema-gen/internal/document"
)

// Apply dedups input and output types (first occurrence wins) and drops
// subscription-payload, previous-values, and mutation-kind descriptors. The
// two passes are independent and order-insensitive.
func Apply(schema document.Schema) document.Schema {
	schema.InputTypes = finishInputTypes(schema.InputTypes)
	schema.OutputTypes = finishOutputTypes(schema.OutputTypes)
	return schema
}

func finishInputTypes(types []document.InputType) []document.InputType {
	seen := make(map[string]struct{}, len(types))
	out := make([]document.InputType, 0, len(types))
	for _, t := range types {
		if _, dup := seen[t.Name]; dup {
			continue
		}
		seen[t.Name] = struct{}{}
		if !convention.KeepInputType(t.Name) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func finishOutputTypes(types []document.OutputType) []document.OutputType {
	seen := make(map[string]struct{}, len(types))
	out := make([]document.OutputType, 0, len(types))
	for _, t := range types {
		if _, dup := seen[t.Name]; dup {
			continue
		}
		seen[t.Name] = struct{}{}
		if !convention.KeepOutputType(t.Name) {
			continue
		}
		out = append(out, t)
	}
	return out
}
