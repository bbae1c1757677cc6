package ordergen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"query-schema-gen/internal/document"
)

func TestApply_UserOrderByScenario(t *testing.T) {
	schema := document.Schema{
		Enums: []document.Enum{
			{Name: "UserOrderByInput", Values: []string{"id_ASC", "id_DESC", "name_ASC", "name_DESC"}},
		},
	}

	out, results := Apply(schema, nil)

	require.Len(t, results, 1)
	assert.Equal(t, "UserOrderByInput", results[0].TypeName)
	assert.Equal(t, []string{"id", "name"}, results[0].Fields)

	_, stillEnum := out.EnumByName("UserOrderByInput")
	assert.False(t, stillEnum)

	orderType, ok := out.InputTypeByName("UserOrderByInput")
	require.True(t, ok)
	assert.True(t, orderType.IsOrderType)
	assert.True(t, orderType.AtLeastOne)
	assert.True(t, orderType.AtMostOne)
	require.Len(t, orderType.Args, 2)
	assert.Equal(t, "id", orderType.Args[0].Name)
	assert.Equal(t, []string{"OrderByArg"}, orderType.Args[0].Type)
	assert.Equal(t, "name", orderType.Args[1].Name)
	assert.Equal(t, []string{"OrderByArg"}, orderType.Args[1].Type)
}

func TestApply_OrderByArgInjectedWithoutOrderTypes(t *testing.T) {
	out, results := Apply(document.Schema{}, nil)

	assert.Empty(t, results)
	direction, ok := out.EnumByName("OrderByArg")
	require.True(t, ok)
	assert.Equal(t, []string{"asc", "desc"}, direction.Values)
}

func TestApply_OrderByArgPresentExactlyOnce(t *testing.T) {
	schema := document.Schema{
		Enums: []document.Enum{
			{Name: "OrderByArg", Values: []string{"ASC", "DESC"}},
			{Name: "PostOrderByInput", Values: []string{"id_ASC", "id_DESC"}},
		},
	}

	out, _ := Apply(schema, nil)

	count := 0
	for _, e := range out.Enums {
		if e.Name == "OrderByArg" {
			count++
			assert.Equal(t, []string{"asc", "desc"}, e.Values)
		}
	}
	assert.Equal(t, 1, count)
}

func TestApply_OtherEnumsPassThrough(t *testing.T) {
	role := document.Enum{Name: "Role", Values: []string{"ADMIN", "USER"}}
	schema := document.Schema{Enums: []document.Enum{role}}

	out, _ := Apply(schema, nil)

	got, ok := out.EnumByName("Role")
	require.True(t, ok)
	assert.Equal(t, role, got)
}
