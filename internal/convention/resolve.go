package convention

import (
	"query-schema-gen/internal/document"
	"query-schema-gen/internal/naming"
)

// ResolveModel resolves an entity name recovered from a type-name suffix
// against the datamodel. Exact match wins; a singularized form is tried as a
// fallback so pluralized introspection names still resolve.
func ResolveModel(dm document.Datamodel, entity string) (document.Model, bool) {
	if m, ok := dm.ModelByName(entity); ok {
		return m, true
	}
	if singular := naming.Singularize(entity); singular != entity {
		if m, ok := dm.ModelByName(singular); ok {
			return m, true
		}
	}
	return document.Model{}, false
}
