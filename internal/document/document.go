// Package document defines the schema document exchanged between the
// introspection producer, the transform pipeline, and the code emitter.
// It carries the normalized datamodel, the operation mappings, and the query
// schema type descriptors.
package document

// FieldKind classifies a datamodel field.
type FieldKind string

const (
	KindScalar   FieldKind = "scalar"
	KindRelation FieldKind = "relation"
	KindEnum     FieldKind = "enum"
)

// Document is the value passed between transform passes. Each pass returns a
// new Document sharing untouched substructures; nothing mutates in place.
type Document struct {
	Datamodel Datamodel `json:"datamodel"`
	Mappings  []Mapping `json:"mappings"`
	Schema    Schema    `json:"schema"`
}

// Datamodel is the normalized entity/field/enum description. It is read-only
// input to the transform.
type Datamodel struct {
	Models []Model `json:"models"`
	Enums  []Enum  `json:"enums,omitempty"`
}

// Model represents one entity with its fields.
type Model struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Field represents one model field.
type Field struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Kind       FieldKind `json:"kind"`
	IsList     bool      `json:"isList"`
	IsRequired bool      `json:"isRequired"`
}

// Enum represents a named value set, either a datamodel enum or a schema enum.
type Enum struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Mapping links a model to the names of its generated root operations. The
// transform carries mappings through untouched.
type Mapping struct {
	Model      string `json:"model"`
	FindOne    string `json:"findOne,omitempty"`
	FindMany   string `json:"findMany,omitempty"`
	Create     string `json:"create,omitempty"`
	Update     string `json:"update,omitempty"`
	UpdateMany string `json:"updateMany,omitempty"`
	Upsert     string `json:"upsert,omitempty"`
	Delete     string `json:"delete,omitempty"`
	DeleteMany string `json:"deleteMany,omitempty"`
}

// Schema holds the query API type descriptors.
type Schema struct {
	InputTypes  []InputType  `json:"inputTypes"`
	OutputTypes []OutputType `json:"outputTypes"`
	Enums       []Enum       `json:"enums"`
}

// InputType describes a composite input descriptor. AtLeastOne means a caller
// must supply at least one property, AtMostOne at most one.
type InputType struct {
	Name       string      `json:"name"`
	Args       []SchemaArg `json:"args"`
	AtLeastOne bool        `json:"atLeastOne,omitempty"`
	AtMostOne  bool        `json:"atMostOne,omitempty"`
	// IsWhereType and IsOrderType mark descriptors synthesized by the
	// where and order-by passes.
	IsWhereType bool `json:"isWhereType,omitempty"`
	IsOrderType bool `json:"isOrderType,omitempty"`
}

// SchemaArg describes one property of an input type. Type is a union of
// referenceable type names, in preference order.
type SchemaArg struct {
	Name             string   `json:"name"`
	Type             []string `json:"type"`
	IsList           bool     `json:"isList"`
	IsRequired       bool     `json:"isRequired"`
	IsEnum           bool     `json:"isEnum,omitempty"`
	IsScalar         bool     `json:"isScalar,omitempty"`
	IsRelationFilter bool     `json:"isRelationFilter,omitempty"`
}

// OutputType is carried through the transform unchanged except for
// dedup/pruning by name.
type OutputType struct {
	Name   string        `json:"name"`
	Fields []OutputField `json:"fields"`
}

// OutputField describes one field of an output type.
type OutputField struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	IsList     bool   `json:"isList"`
	IsRequired bool   `json:"isRequired"`
}

// ModelByName finds a model by exact name.
func (d Datamodel) ModelByName(name string) (Model, bool) {
	for _, m := range d.Models {
		if m.Name == name {
			return m, true
		}
	}
	return Model{}, false
}

// EnumByName finds a datamodel enum by exact name.
func (d Datamodel) EnumByName(name string) (Enum, bool) {
	for _, e := range d.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return Enum{}, false
}

// FieldByName finds a field by exact name.
func (m Model) FieldByName(name string) (Field, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// InputTypeByName finds an input type by exact name.
func (s Schema) InputTypeByName(name string) (InputType, bool) {
	for _, t := range s.InputTypes {
		if t.Name == name {
			return t, true
		}
	}
	return InputType{}, false
}

// EnumByName finds a schema enum by exact name.
func (s Schema) EnumByName(name string) (Enum, bool) {
	for _, e := range s.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return Enum{}, false
}
