// Package ordergen rewrites naively generated order-by enums into composite
// input types and injects the shared sort-direction enum.
package ordergen

import (
	"log/slog"

	"query-schema-gen/internal/convention"
	"query-schema-gen/internal/document"
)

// Result reports one order-by enum that was rewritten into an input type.
type Result struct {
	TypeName string
	Fields   []string
}

// Apply replaces every order-by enum with an input type of the same name and
// appends the OrderByArg direction enum exactly once. Other enums pass
// through unchanged.
func Apply(schema document.Schema, logger *slog.Logger) (document.Schema, []Result) {
	if logger == nil {
		logger = slog.Default()
	}

	inputTypes := schema.InputTypes
	enums := make([]document.Enum, 0, len(schema.Enums)+1)
	var results []Result

	for _, e := range schema.Enums {
		if e.Name == convention.OrderByArgEnum {
			// Replaced below, keeping the exactly-once property.
			continue
		}
		if _, ok := convention.EntityFromOrderByInput(e.Name); !ok {
			enums = append(enums, e)
			continue
		}
		orderType := orderInputType(e)
		inputTypes = append(inputTypes, orderType)
		fields := make([]string, 0, len(orderType.Args))
		for _, a := range orderType.Args {
			fields = append(fields, a.Name)
		}
		logger.Debug("order-by enum rewritten",
			slog.String("type", e.Name),
			slog.Int("fields", len(fields)),
		)
		results = append(results, Result{TypeName: e.Name, Fields: fields})
	}

	enums = append(enums, document.Enum{
		Name:   convention.OrderByArgEnum,
		Values: []string{"asc", "desc"},
	})

	schema.InputTypes = inputTypes
	schema.Enums = enums
	return schema, results
}

// orderInputType builds the replacement input type for one order-by enum.
// Callers choose exactly one field to sort by, in one direction, so the type
// is both at-least-one and at-most-one. Each ascending value contributes one
// orderable field; descending counterparts are not independently inspected.
func orderInputType(e document.Enum) document.InputType {
	var args []document.SchemaArg
	for _, value := range e.Values {
		field, ok := convention.OrderableField(value)
		if !ok {
			continue
		}
		args = append(args, document.SchemaArg{
			Name:     field,
			Type:     []string{convention.OrderByArgEnum},
			IsScalar: true,
		})
	}
	return document.InputType{
		Name:        e.Name,
		Args:        args,
		AtLeastOne:  true,
		AtMostOne:   true,
		IsOrderType: true,
	}
}
