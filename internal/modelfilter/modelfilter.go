// Package modelfilter applies allow/deny filters to the datamodel before the
// transform runs. Dropping a model also drops its naively generated schema
// descriptors so the where pass does not leave orphaned passthrough types.
package modelfilter

import (
	"path"
	"slices"
	"strings"

	"query-schema-gen/internal/convention"
	"query-schema-gen/internal/document"
)

// Config controls allow/deny filters for models and fields. Patterns are
// case-insensitive globs. Missing allow lists default to allow-all; deny
// rules always win.
type Config struct {
	AllowModels []string            `mapstructure:"allow_models"`
	DenyModels  []string            `mapstructure:"deny_models"`
	AllowFields map[string][]string `mapstructure:"allow_fields"`
	DenyFields  map[string][]string `mapstructure:"deny_fields"`
}

// Apply filters models, fields, mappings, and the matching schema descriptors
// in place.
func Apply(doc *document.Document, cfg Config) {
	if doc == nil {
		return
	}

	kept := make([]document.Model, 0, len(doc.Datamodel.Models))
	keptNames := make(map[string]bool)
	keptFields := make(map[string]map[string]bool)
	for _, model := range doc.Datamodel.Models {
		if !modelAllowed(model.Name, cfg.AllowModels, cfg.DenyModels) {
			continue
		}
		fields := make([]document.Field, 0, len(model.Fields))
		fieldNames := make(map[string]bool, len(model.Fields))
		for _, f := range model.Fields {
			if !fieldAllowed(model.Name, f.Name, cfg.AllowFields, cfg.DenyFields) {
				continue
			}
			fields = append(fields, f)
			fieldNames[f.Name] = true
		}
		if len(fields) == 0 {
			continue
		}
		model.Fields = fields
		kept = append(kept, model)
		keptNames[model.Name] = true
		keptFields[model.Name] = fieldNames
	}
	doc.Datamodel.Models = kept

	mappings := make([]document.Mapping, 0, len(doc.Mappings))
	for _, m := range doc.Mappings {
		if keptNames[m.Model] {
			mappings = append(mappings, m)
		}
	}
	doc.Mappings = mappings

	doc.Schema.InputTypes = filterInputTypes(doc.Schema.InputTypes, keptNames)
	doc.Schema.Enums = filterEnums(doc.Schema.Enums, keptNames, keptFields)
}

// filterInputTypes drops the naively generated descriptors of removed models.
// Descriptors not following the entity naming convention are kept.
func filterInputTypes(types []document.InputType, keptModels map[string]bool) []document.InputType {
	out := make([]document.InputType, 0, len(types))
	for _, t := range types {
		if entity, ok := convention.EntityFromWhereInput(t.Name); ok && !keptModels[entity] {
			continue
		}
		out = append(out, t)
	}
	return out
}

// filterEnums drops order-by enums of removed models and the values of
// removed fields within surviving order-by enums.
func filterEnums(enums []document.Enum, keptModels map[string]bool, keptFields map[string]map[string]bool) []document.Enum {
	out := make([]document.Enum, 0, len(enums))
	for _, e := range enums {
		entity, ok := convention.EntityFromOrderByInput(e.Name)
		if !ok {
			out = append(out, e)
			continue
		}
		if !keptModels[entity] {
			continue
		}
		fields := keptFields[entity]
		values := make([]string, 0, len(e.Values))
		for _, v := range e.Values {
			if orderValueFieldAllowed(v, fields) {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}
		e.Values = values
		out = append(out, e)
	}
	return out
}

// orderValueFieldAllowed maps an order-by enum value back to its field name
// and checks it survived field filtering. Values outside the ASC/DESC
// convention are kept.
func orderValueFieldAllowed(value string, fields map[string]bool) bool {
	field := value
	switch {
	case strings.HasSuffix(value, convention.AscValueSuffix):
		field = strings.TrimSuffix(value, convention.AscValueSuffix)
	case strings.HasSuffix(value, convention.DescValueSuffix):
		field = strings.TrimSuffix(value, convention.DescValueSuffix)
	default:
		return true
	}
	return fields[field]
}

func modelAllowed(model string, allow, deny []string) bool {
	if matchesAny(model, deny) {
		return false
	}
	if len(allow) == 0 {
		return true
	}
	return matchesAny(model, allow)
}

func fieldAllowed(model, field string, allow, deny map[string][]string) bool {
	denyPatterns := mergePatterns(deny, model)
	if matchesAny(field, denyPatterns) {
		return false
	}
	allowPatterns := mergePatterns(allow, model)
	if len(allowPatterns) == 0 {
		return true
	}
	return matchesAny(field, allowPatterns)
}

func mergePatterns(patterns map[string][]string, model string) []string {
	if patterns == nil {
		return nil
	}
	combined := append([]string{}, patterns["*"]...)
	combined = append(combined, patterns[model]...)
	return slices.Compact(combined)
}

func matchesAny(value string, patterns []string) bool {
	value = strings.ToLower(value)
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		// matching should be case-insensitive
		ok, err := path.Match(strings.ToLower(pattern), value)
		if err != nil {
			continue
		}
		if ok {
			return true
		}
	}
	return false
}
