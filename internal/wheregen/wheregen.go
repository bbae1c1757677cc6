// Package wheregen rewrites naively generated where-input types into
// composite filter types. For each entity it derives one argument per
// filterable field from the datamodel, backed by shared per-scalar-type
// filter types built by the filter factory.
package wheregen

import (
	"log/slog"

	"query-schema-gen/internal/convention"
	"query-schema-gen/internal/document"
)

// Outcome tags which path a where-input candidate took, so callers and tests
// can assert on tolerant fallbacks instead of inferring them from absence of
// an error.
type Outcome int

const (
	// OutcomePassthrough means the entity name did not resolve against the
	// datamodel and the type was carried through unmodified.
	OutcomePassthrough Outcome = iota
	// OutcomeTransformed means the type was rewritten into a composite
	// filter type.
	OutcomeTransformed
)

// Result reports the outcome for one where-input candidate.
type Result struct {
	TypeName string
	Outcome  Outcome
}

// Synthesizer rewrites where-input types for one transform invocation.
type Synthesizer struct {
	dm     document.Datamodel
	logger *slog.Logger
}

// New creates a Synthesizer over the given datamodel.
func New(dm document.Datamodel, logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{dm: dm, logger: logger}
}

// Apply rewrites every where-input type in the schema and appends each
// distinct filter type accumulated during the pass exactly once. Types whose
// entity cannot be resolved pass through unmodified.
func (s *Synthesizer) Apply(schema document.Schema) (document.Schema, []Result) {
	cache := newFilterCache()
	inputTypes := make([]document.InputType, 0, len(schema.InputTypes))
	var results []Result

	for _, t := range schema.InputTypes {
		entity, ok := convention.EntityFromWhereInput(t.Name)
		if !ok {
			inputTypes = append(inputTypes, t)
			continue
		}
		model, ok := convention.ResolveModel(s.dm, entity)
		if !ok {
			s.logger.Debug("where-input entity not in datamodel, passing through",
				slog.String("type", t.Name),
				slog.String("entity", entity),
			)
			inputTypes = append(inputTypes, t)
			results = append(results, Result{TypeName: t.Name, Outcome: OutcomePassthrough})
			continue
		}
		inputTypes = append(inputTypes, s.synthesize(model, t, cache))
		results = append(results, Result{TypeName: t.Name, Outcome: OutcomeTransformed})
	}

	schema.InputTypes = append(inputTypes, cache.types()...)
	return schema, results
}

// synthesize builds the composite where type for one model. Derived field
// filters come first, whitelisted original args follow.
func (s *Synthesizer) synthesize(model document.Model, orig document.InputType, cache *filterCache) document.InputType {
	whitelist := make(map[string]struct{})
	for _, name := range convention.Combinators() {
		whitelist[name] = struct{}{}
	}
	for _, f := range model.Fields {
		if f.Kind == document.KindRelation && !f.IsList {
			whitelist[f.Name] = struct{}{}
		}
	}

	var retained []document.SchemaArg
	for _, a := range orig.Args {
		if _, ok := whitelist[a.Name]; ok {
			a.IsRelationFilter = true
			retained = append(retained, a)
		}
	}

	var args []document.SchemaArg
	for _, f := range model.Fields {
		if !filterable(f) {
			continue
		}
		filterName := cache.filterFor(s, f)
		args = append(args, fieldArg(f, filterName))
	}

	args = append(args, retained...)
	return document.InputType{
		Name:        orig.Name,
		Args:        args,
		AtLeastOne:  true,
		IsWhereType: true,
	}
}

// filterable reports whether a field gets a synthesized filter argument:
// list-valued relations and non-list scalars/enums do. Scalar lists have no
// filter semantics, and singular relations are covered by the whitelist pass.
func filterable(f document.Field) bool {
	if f.Kind == document.KindRelation {
		return f.IsList
	}
	return !f.IsList
}

// fieldArg builds the synthesized argument for one field. Scalar and enum
// fields admit the bare base type alongside the filter, plus explicit null
// when optional.
func fieldArg(f document.Field, filterName string) document.SchemaArg {
	var union []string
	if f.Kind != document.KindRelation {
		union = append(union, f.Type)
	}
	union = append(union, filterName)
	if f.Kind != document.KindRelation && !f.IsRequired {
		union = append(union, convention.NullTypeName)
	}
	return document.SchemaArg{
		Name:     f.Name,
		Type:     union,
		IsScalar: f.Kind == document.KindScalar,
		IsEnum:   f.Kind == document.KindEnum,
	}
}
