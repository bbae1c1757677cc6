// Package emit materializes a transformed document into a graphql-go schema.
// It is a structural sanity check for the pipeline output and a convenience
// for consumers that want executable type objects instead of descriptors.
package emit

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"query-schema-gen/internal/convention"
	"query-schema-gen/internal/document"
	"query-schema-gen/internal/naming"
)

// Build constructs a graphql.Schema from the final document. Input types and
// enums come from the schema section; object types and root query fields are
// derived from the datamodel and mappings.
func Build(doc document.Document) (graphql.Schema, error) {
	if len(doc.Datamodel.Models) == 0 {
		return graphql.Schema{}, fmt.Errorf("cannot build schema: datamodel has no models")
	}

	b := &builder{
		doc:     doc,
		enums:   make(map[string]*graphql.Enum),
		inputs:  make(map[string]*graphql.InputObject),
		objects: make(map[string]*graphql.Object),
	}
	b.buildEnums()
	b.buildInputObjects()

	query := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: b.queryFields(),
	})
	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}

type builder struct {
	doc     document.Document
	enums   map[string]*graphql.Enum
	inputs  map[string]*graphql.InputObject
	objects map[string]*graphql.Object
}

func (b *builder) buildEnums() {
	for _, e := range b.doc.Schema.Enums {
		values := graphql.EnumValueConfigMap{}
		for _, v := range e.Values {
			values[v] = &graphql.EnumValueConfig{Value: v}
		}
		b.enums[e.Name] = graphql.NewEnum(graphql.EnumConfig{
			Name:   e.Name,
			Values: values,
		})
	}
}

// buildInputObjects registers every non-empty input type with a lazy field
// map so mutually recursive references (where type <-> relation filter)
// resolve. Empty filter descriptors are skipped; arguments referencing them
// fall back to the base type in their union.
func (b *builder) buildInputObjects() {
	for _, t := range b.doc.Schema.InputTypes {
		if len(t.Args) == 0 {
			continue
		}
		inputType := t
		b.inputs[t.Name] = graphql.NewInputObject(graphql.InputObjectConfig{
			Name: t.Name,
			Fields: graphql.InputObjectConfigFieldMapThunk(func() graphql.InputObjectConfigFieldMap {
				fields := graphql.InputObjectConfigFieldMap{}
				for _, a := range inputType.Args {
					fields[a.Name] = &graphql.InputObjectFieldConfig{
						Type: b.argType(a),
					}
				}
				return fields
			}),
		})
	}
}

// argType resolves an argument's type union to one concrete input type. The
// most specific referenceable name wins: unions list the bare base type
// first and the filter type after it, so resolution walks the union from the
// end, skipping the null pseudo type.
func (b *builder) argType(a document.SchemaArg) graphql.Input {
	var resolved graphql.Input
	for i := len(a.Type) - 1; i >= 0; i-- {
		name := a.Type[i]
		if name == convention.NullTypeName {
			continue
		}
		if in, ok := b.inputs[name]; ok {
			resolved = in
			break
		}
		if en, ok := b.enums[name]; ok {
			resolved = en
			break
		}
		if sc, ok := scalarType(name); ok {
			resolved = sc
			break
		}
	}
	if resolved == nil {
		resolved = graphql.String
	}
	if a.IsList {
		resolved = graphql.NewList(graphql.NewNonNull(resolved))
	}
	if a.IsRequired {
		resolved = graphql.NewNonNull(resolved)
	}
	return resolved
}

// objectType builds the output object for a model (cached, lazy fields to
// allow circular relations).
func (b *builder) objectType(model document.Model) *graphql.Object {
	if cached, ok := b.objects[model.Name]; ok {
		return cached
	}

	obj := graphql.NewObject(graphql.ObjectConfig{
		Name: model.Name,
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return b.modelFields(model)
		}),
	})
	b.objects[model.Name] = obj
	return obj
}

func (b *builder) modelFields(model document.Model) graphql.Fields {
	fields := graphql.Fields{}
	for _, f := range model.Fields {
		var fieldType graphql.Output
		switch f.Kind {
		case document.KindRelation:
			related, ok := b.doc.Datamodel.ModelByName(f.Type)
			if !ok {
				continue
			}
			fieldType = b.objectType(related)
		case document.KindEnum:
			if en, ok := b.enums[f.Type]; ok {
				fieldType = en
			} else {
				fieldType = graphql.String
			}
		default:
			if sc, ok := scalarType(f.Type); ok {
				fieldType = sc
			} else {
				fieldType = graphql.String
			}
		}
		if f.IsList {
			fieldType = graphql.NewList(graphql.NewNonNull(fieldType))
		}
		if f.IsRequired && f.Kind != document.KindRelation {
			fieldType = graphql.NewNonNull(fieldType)
		}
		fields[f.Name] = &graphql.Field{Type: fieldType}
	}
	return fields
}

// queryFields derives one collection field per model, with where and orderBy
// arguments when the corresponding input types were synthesized.
func (b *builder) queryFields() graphql.Fields {
	fields := graphql.Fields{}
	for _, model := range b.doc.Datamodel.Models {
		fieldName := b.findManyName(model.Name)
		args := graphql.FieldConfigArgument{}
		if where, ok := b.inputs[convention.WhereInputName(model.Name)]; ok {
			args["where"] = &graphql.ArgumentConfig{Type: where}
		}
		if orderBy, ok := b.inputs[convention.OrderByInputName(model.Name)]; ok {
			args["orderBy"] = &graphql.ArgumentConfig{Type: orderBy}
		}
		fields[fieldName] = &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.objectType(model)))),
			Args: args,
		}
	}
	return fields
}

// findManyName prefers the mapping's findMany operation name, falling back to
// the pluralized camelCase model name.
func (b *builder) findManyName(model string) string {
	for _, m := range b.doc.Mappings {
		if m.Model == model && m.FindMany != "" {
			return m.FindMany
		}
	}
	return naming.Pluralize(naming.Camel(model))
}

func scalarType(name string) (*graphql.Scalar, bool) {
	switch name {
	case "String":
		return graphql.String, true
	case "ID", "UUID":
		return graphql.ID, true
	case "Int":
		return graphql.Int, true
	case "Float":
		return graphql.Float, true
	case "Boolean":
		return graphql.Boolean, true
	case "DateTime":
		return graphql.DateTime, true
	}
	return nil, false
}
