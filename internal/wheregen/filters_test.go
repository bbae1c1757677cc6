package wheregen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"query-schema-gen/internal/document"
)

func filterArgs(t *testing.T, dm document.Datamodel, f document.Field) (document.InputType, string) {
	t.Helper()
	cache := newFilterCache()
	name := cache.filterFor(New(dm, nil), f)
	types := cache.types()
	require.Len(t, types, 1)
	return types[0], name
}

func TestFilterFor_RequiredAndOptionalAreDistinct(t *testing.T) {
	s := New(document.Datamodel{}, nil)
	cache := newFilterCache()

	required := cache.filterFor(s, document.Field{Name: "a", Type: "Int", Kind: document.KindScalar, IsRequired: true})
	optional := cache.filterFor(s, document.Field{Name: "b", Type: "Int", Kind: document.KindScalar})

	assert.Equal(t, "IntFilter", required)
	assert.Equal(t, "NullableIntFilter", optional)
	assert.Len(t, cache.types(), 2)
}

func TestFilterFor_TextOperators(t *testing.T) {
	for _, baseType := range []string{"String", "ID", "UUID"} {
		ft, _ := filterArgs(t, document.Datamodel{}, document.Field{
			Name: "f", Type: baseType, Kind: document.KindScalar, IsRequired: true,
		})
		assert.Equal(t,
			[]string{"equals", "not", "in", "notIn", "lt", "lte", "gt", "gte", "contains", "startsWith", "endsWith"},
			argNames(ft), baseType)
	}
}

func TestFilterFor_OrderingOperators(t *testing.T) {
	for _, baseType := range []string{"Int", "Float", "DateTime"} {
		ft, _ := filterArgs(t, document.Datamodel{}, document.Field{
			Name: "f", Type: baseType, Kind: document.KindScalar, IsRequired: true,
		})
		assert.Equal(t,
			[]string{"equals", "not", "in", "notIn", "lt", "lte", "gt", "gte"},
			argNames(ft), baseType)
	}
}

func TestFilterFor_BooleanBaseOnly(t *testing.T) {
	ft, _ := filterArgs(t, document.Datamodel{}, document.Field{
		Name: "f", Type: "Boolean", Kind: document.KindScalar, IsRequired: true,
	})
	assert.Equal(t, []string{"equals", "not"}, argNames(ft))
}

func TestFilterFor_EnumOperators(t *testing.T) {
	dm := document.Datamodel{
		Enums: []document.Enum{{Name: "Role", Values: []string{"ADMIN", "USER"}}},
	}
	ft, name := filterArgs(t, dm, document.Field{
		Name: "role", Type: "Role", Kind: document.KindEnum, IsRequired: true,
	})
	assert.Equal(t, "RoleFilter", name)
	assert.Equal(t, []string{"equals", "not", "in", "notIn", "lt", "lte", "gt", "gte"}, argNames(ft))
	for _, a := range ft.Args {
		assert.True(t, a.IsEnum, a.Name)
		assert.False(t, a.IsScalar, a.Name)
	}
}

func TestFilterFor_UnrecognizedTypeEmptyOperators(t *testing.T) {
	ft, name := filterArgs(t, document.Datamodel{}, document.Field{
		Name: "data", Type: "Json", Kind: document.KindScalar, IsRequired: true,
	})
	assert.Equal(t, "JsonFilter", name)
	assert.Empty(t, ft.Args)
}

func TestFilterFor_RecursiveNot(t *testing.T) {
	ft, _ := filterArgs(t, document.Datamodel{}, document.Field{
		Name: "name", Type: "String", Kind: document.KindScalar,
	})
	not := ft.Args[1]
	assert.Equal(t, "not", not.Name)
	assert.Equal(t, []string{"String", "null", "NullableStringFilter"}, not.Type)

	equals := ft.Args[0]
	assert.Equal(t, []string{"String", "null"}, equals.Type)
}

func TestFilterFor_InclusionIsListValued(t *testing.T) {
	ft, _ := filterArgs(t, document.Datamodel{}, document.Field{
		Name: "n", Type: "Int", Kind: document.KindScalar, IsRequired: true,
	})
	for _, a := range ft.Args {
		switch a.Name {
		case "in", "notIn":
			assert.True(t, a.IsList, a.Name)
			assert.Equal(t, []string{"Int"}, a.Type)
		default:
			assert.False(t, a.IsList, a.Name)
		}
	}
}
