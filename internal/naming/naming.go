// Package naming provides case and number transformations for schema names.
package naming

import (
	"strings"

	"github.com/jinzhu/inflection"
)

// Pascal converts snake_case or camelCase to PascalCase.
// Example: "user_profiles" -> "UserProfiles", "orderItem" -> "OrderItem".
func Pascal(s string) string {
	parts := strings.Split(s, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "")
}

// Camel converts snake_case or PascalCase to camelCase.
// Example: "OrderItem" -> "orderItem".
func Camel(s string) string {
	s = Pascal(s)
	if len(s) == 0 {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// Pluralize converts a singular word to its plural form.
func Pluralize(word string) string {
	return inflection.Plural(word)
}

// Singularize converts a plural word to its singular form.
func Singularize(word string) string {
	return inflection.Singular(word)
}
