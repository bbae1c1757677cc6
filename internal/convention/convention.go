// Package convention isolates the string conventions that drive structural
// inference over the document: type-name suffixes, sort-value suffixes, the
// logical combinator names, and the pruning markers. Synthesis logic never
// inspects raw names directly, so the convention can be swapped without
// touching operator generation.
package convention

import "strings"

const (
	// WhereInputSuffix marks a naively generated entity filter input type.
	WhereInputSuffix = "WhereInput"
	// OrderByInputSuffix marks a naively generated entity ordering enum.
	OrderByInputSuffix = "OrderByInput"
	// AscValueSuffix marks the ascending variant of an orderable field in an
	// order-by enum. Each orderable field contributes exactly one such value;
	// the descending counterparts are not independently inspected.
	AscValueSuffix = "_ASC"
	// DescValueSuffix marks the descending variant.
	DescValueSuffix = "_DESC"
	// OrderByArgEnum is the shared sort-direction enum injected by the
	// order-by pass.
	OrderByArgEnum = "OrderByArg"
	// NullTypeName is the pseudo type name admitting explicit null in an
	// argument type union.
	NullTypeName = "null"
	// FilterSuffix terminates every synthesized filter type name.
	FilterSuffix = "Filter"
	// NullableFilterPrefix prefixes filter types for optional fields.
	NullableFilterPrefix = "Nullable"

	// SubscriptionMarker denotes change-event payload descriptors.
	SubscriptionMarker = "Subscription"
	// PreviousValuesSuffix denotes previous-state payload output types.
	PreviousValuesSuffix = "PreviousValues"
	// MutationKindTypeName is the reserved mutation-kind marker type.
	MutationKindTypeName = "MutationType"
)

// Combinator names shared between where-type synthesis and the relation
// filter whitelist.
const (
	CombinatorAnd = "AND"
	CombinatorOr  = "OR"
	CombinatorNot = "NOT"
)

// Combinators returns the logical combinator argument names in canonical order.
func Combinators() []string {
	return []string{CombinatorAnd, CombinatorOr, CombinatorNot}
}

// EntityFromWhereInput extracts the entity name from a where-input type name.
func EntityFromWhereInput(typeName string) (string, bool) {
	return trimSuffix(typeName, WhereInputSuffix)
}

// EntityFromOrderByInput extracts the entity name from an order-by enum name.
func EntityFromOrderByInput(enumName string) (string, bool) {
	return trimSuffix(enumName, OrderByInputSuffix)
}

// WhereInputName returns the where-input type name for an entity.
func WhereInputName(entity string) string {
	return entity + WhereInputSuffix
}

// OrderByInputName returns the order-by type name for an entity.
func OrderByInputName(entity string) string {
	return entity + OrderByInputSuffix
}

// OrderableField recovers a field name from an ascending order-by enum value.
// Example: "name_ASC" -> ("name", true).
func OrderableField(value string) (string, bool) {
	return trimSuffix(value, AscValueSuffix)
}

// FilterTypeName derives the filter type name for a base type and
// nullability class. The name doubles as the structural-sharing cache key.
func FilterTypeName(baseType string, requiredEffective bool) string {
	if requiredEffective {
		return baseType + FilterSuffix
	}
	return NullableFilterPrefix + baseType + FilterSuffix
}

// KeepInputType reports whether an input type survives the finishing pass.
// Subscription-event payload inputs and the mutation-kind marker do not.
func KeepInputType(name string) bool {
	return !strings.Contains(name, SubscriptionMarker) && name != MutationKindTypeName
}

// KeepOutputType reports whether an output type survives the finishing pass.
// Previous-state payloads and subscription-event payloads do not.
func KeepOutputType(name string) bool {
	return !strings.HasSuffix(name, PreviousValuesSuffix) && !strings.Contains(name, SubscriptionMarker)
}

func trimSuffix(name, suffix string) (string, bool) {
	if !strings.HasSuffix(name, suffix) || len(name) == len(suffix) {
		return "", false
	}
	return name[:len(name)-len(suffix)], true
}
