package transform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"query-schema-gen/internal/document"
	"query-schema-gen/internal/wheregen"
)

func sampleDocument() document.Document {
	return document.Document{
		Datamodel: document.Datamodel{
			Models: []document.Model{
				{
					Name: "User",
					Fields: []document.Field{
						{Name: "id", Type: "ID", Kind: document.KindScalar, IsRequired: true},
						{Name: "name", Type: "String", Kind: document.KindScalar},
						{Name: "posts", Type: "Post", Kind: document.KindRelation, IsList: true},
					},
				},
				{
					Name: "Post",
					Fields: []document.Field{
						{Name: "id", Type: "ID", Kind: document.KindScalar, IsRequired: true},
						{Name: "published", Type: "Boolean", Kind: document.KindScalar, IsRequired: true},
						{Name: "author", Type: "User", Kind: document.KindRelation},
					},
				},
			},
		},
		Mappings: []document.Mapping{
			{Model: "User", FindMany: "users"},
			{Model: "Post", FindMany: "posts"},
		},
		Schema: document.Schema{
			InputTypes: []document.InputType{
				{Name: "UserWhereInput", Args: []document.SchemaArg{
					{Name: "AND", Type: []string{"UserWhereInput"}, IsList: true},
					{Name: "OR", Type: []string{"UserWhereInput"}, IsList: true},
					{Name: "NOT", Type: []string{"UserWhereInput"}, IsList: true},
				}},
				{Name: "PostWhereInput", Args: []document.SchemaArg{
					{Name: "AND", Type: []string{"PostWhereInput"}, IsList: true},
					{Name: "author", Type: []string{"UserWhereInput"}},
				}},
				{Name: "OrphanWhereInput"},
				{Name: "UserSubscriptionWhereInput"},
				{Name: "MutationType"},
			},
			OutputTypes: []document.OutputType{
				{Name: "User"},
				{Name: "Post"},
				{Name: "UserPreviousValues"},
				{Name: "PostSubscriptionPayload"},
			},
			Enums: []document.Enum{
				{Name: "UserOrderByInput", Values: []string{"id_ASC", "id_DESC", "name_ASC", "name_DESC"}},
				{Name: "PostOrderByInput", Values: []string{"id_ASC", "id_DESC"}},
			},
		},
	}
}

func TestRun_EndToEnd(t *testing.T) {
	doc := sampleDocument()
	out, report := New(nil).Run(context.Background(), doc)

	assert.NotEmpty(t, report.RunID)
	// Subscription-marked candidates fail entity resolution like any other
	// unresolvable name, so they count as passthroughs even though the
	// finishing pass prunes them from the output afterwards.
	assert.Equal(t, []string{"OrphanWhereInput", "UserSubscriptionWhereInput"}, report.Passthroughs())

	// Untouched sections carry through.
	assert.Equal(t, doc.Datamodel, out.Datamodel)
	assert.Equal(t, doc.Mappings, out.Mappings)

	// Where types rewritten.
	userWhere, ok := out.Schema.InputTypeByName("UserWhereInput")
	require.True(t, ok)
	assert.True(t, userWhere.IsWhereType)
	assert.True(t, userWhere.AtLeastOne)

	postWhere, ok := out.Schema.InputTypeByName("PostWhereInput")
	require.True(t, ok)
	assert.True(t, postWhere.IsWhereType)

	// Order enums replaced by input types, direction enum injected once.
	for _, name := range []string{"UserOrderByInput", "PostOrderByInput"} {
		_, isEnum := out.Schema.EnumByName(name)
		assert.False(t, isEnum, name)
		orderType, ok := out.Schema.InputTypeByName(name)
		require.True(t, ok, name)
		assert.True(t, orderType.IsOrderType)
		assert.True(t, orderType.AtMostOne)
	}
	direction, ok := out.Schema.EnumByName("OrderByArg")
	require.True(t, ok)
	assert.Equal(t, []string{"asc", "desc"}, direction.Values)

	// Change-event descriptors pruned.
	_, ok = out.Schema.InputTypeByName("UserSubscriptionWhereInput")
	assert.False(t, ok)
	_, ok = out.Schema.InputTypeByName("MutationType")
	assert.False(t, ok)
	outputNames := make([]string, 0, len(out.Schema.OutputTypes))
	for _, o := range out.Schema.OutputTypes {
		outputNames = append(outputNames, o.Name)
	}
	assert.Equal(t, []string{"User", "Post"}, outputNames)
}

func TestRun_UniqueNames(t *testing.T) {
	out, _ := New(nil).Run(context.Background(), sampleDocument())

	seenInputs := make(map[string]bool)
	for _, it := range out.Schema.InputTypes {
		assert.False(t, seenInputs[it.Name], it.Name)
		seenInputs[it.Name] = true
	}
	seenOutputs := make(map[string]bool)
	for _, ot := range out.Schema.OutputTypes {
		assert.False(t, seenOutputs[ot.Name], ot.Name)
		seenOutputs[ot.Name] = true
	}
}

func TestRun_SharedFilterInstances(t *testing.T) {
	out, _ := New(nil).Run(context.Background(), sampleDocument())

	// User.id and Post.id share the required ID filter.
	count := 0
	for _, it := range out.Schema.InputTypes {
		if it.Name == "IDFilter" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRun_IndependentInvocations(t *testing.T) {
	p := New(nil)
	first, firstReport := p.Run(context.Background(), sampleDocument())
	second, secondReport := p.Run(context.Background(), sampleDocument())

	assert.NotEqual(t, firstReport.RunID, secondReport.RunID)
	assert.Equal(t, first.Schema, second.Schema)
}

func TestReport_Passthroughs(t *testing.T) {
	report := Report{
		WhereResults: []wheregen.Result{
			{TypeName: "AWhereInput", Outcome: wheregen.OutcomeTransformed},
			{TypeName: "BWhereInput", Outcome: wheregen.OutcomePassthrough},
		},
	}
	assert.Equal(t, []string{"BWhereInput"}, report.Passthroughs())
}
