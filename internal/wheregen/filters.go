package wheregen

import (
	"query-schema-gen/internal/convention"
	"query-schema-gen/internal/document"
)

// filterKey identifies one filter type: the base type plus its effective
// nullability class. Relation fields are always effectively required.
type filterKey struct {
	baseType string
	required bool
}

// filterCache accumulates the filter types built during one pass. Lookup is
// by key; the entries slice preserves first-request order so the appended
// filter list is deterministic.
type filterCache struct {
	index   map[filterKey]int
	entries []document.InputType
}

func newFilterCache() *filterCache {
	return &filterCache{index: make(map[filterKey]int)}
}

// filterFor returns the filter type name for a field, building and caching
// the type on first request. Two fields sharing base type and nullability
// class reference the same instance.
func (c *filterCache) filterFor(s *Synthesizer, f document.Field) string {
	required := f.IsRequired || f.Kind == document.KindRelation
	key := filterKey{baseType: f.Type, required: required}
	if i, ok := c.index[key]; ok {
		return c.entries[i].Name
	}

	name := convention.FilterTypeName(f.Type, required)
	var args []document.SchemaArg
	if f.Kind == document.KindRelation {
		args = relationFilterArgs(f.Type)
	} else {
		args = s.scalarFilterArgs(f.Type, name, required, f.Kind == document.KindEnum)
	}

	c.index[key] = len(c.entries)
	c.entries = append(c.entries, document.InputType{Name: name, Args: args})
	return name
}

// types returns the accumulated filter types in first-request order.
func (c *filterCache) types() []document.InputType {
	return c.entries
}

// relationFilterArgs builds the quantifier surface for a list relation: each
// quantifier accepts the related entity's where-input type.
func relationFilterArgs(entity string) []document.SchemaArg {
	whereName := convention.WhereInputName(entity)
	quantifiers := []string{"every", "some", "none"}
	args := make([]document.SchemaArg, 0, len(quantifiers))
	for _, q := range quantifiers {
		args = append(args, document.SchemaArg{
			Name: q,
			Type: []string{whereName},
		})
	}
	return args
}

// operatorSet marks which optional operator groups a base type carries on top
// of the base equals/not pair.
type operatorSet struct {
	inclusion bool
	ordering  bool
	text      bool
}

// operators classifies a base type. The second return is false for
// unrecognized base types, which yield an empty operator list.
func (s *Synthesizer) operators(baseType string, isEnum bool) (operatorSet, bool) {
	if isEnum {
		return operatorSet{inclusion: true, ordering: true}, true
	}
	if _, ok := s.dm.EnumByName(baseType); ok {
		return operatorSet{inclusion: true, ordering: true}, true
	}
	switch baseType {
	case "String", "ID", "UUID":
		return operatorSet{inclusion: true, ordering: true, text: true}, true
	case "Int", "Float", "DateTime":
		return operatorSet{inclusion: true, ordering: true}, true
	case "Boolean":
		return operatorSet{}, true
	}
	return operatorSet{}, false
}

// scalarFilterArgs builds the comparison surface for a scalar or enum base
// type. The not operator admits the filter type itself, enabling recursive
// negation.
func (s *Synthesizer) scalarFilterArgs(baseType, self string, required, isEnum bool) []document.SchemaArg {
	ops, ok := s.operators(baseType, isEnum)
	if !ok {
		return nil
	}

	valueUnion := []string{baseType}
	if !required {
		valueUnion = append(valueUnion, convention.NullTypeName)
	}
	notUnion := append(append([]string{}, valueUnion...), self)

	isScalar := !isEnum
	op := func(name string, union []string, isList bool) document.SchemaArg {
		return document.SchemaArg{
			Name:     name,
			Type:     union,
			IsList:   isList,
			IsScalar: isScalar,
			IsEnum:   isEnum,
		}
	}

	args := []document.SchemaArg{
		op("equals", valueUnion, false),
		op("not", notUnion, false),
	}
	if ops.inclusion {
		args = append(args,
			op("in", []string{baseType}, true),
			op("notIn", []string{baseType}, true),
		)
	}
	if ops.ordering {
		for _, name := range []string{"lt", "lte", "gt", "gte"} {
			args = append(args, op(name, []string{baseType}, false))
		}
	}
	if ops.text {
		for _, name := range []string{"contains", "startsWith", "endsWith"} {
			args = append(args, op(name, []string{baseType}, false))
		}
	}
	return args
}
