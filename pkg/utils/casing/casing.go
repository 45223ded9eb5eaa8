// Package casing converts identifiers and map keys between the snake_case
// used on the wire by the Infomaniak API and camelCase.
package casing

import (
	"regexp"
	"strings"
)

var (
	snakeBoundary = regexp.MustCompile(`_([a-z])`)
	camelBoundary = regexp.MustCompile(`[A-Z]`)
)

// SnakeToCamel only treats "_" followed by a lowercase ASCII letter as a word
// boundary, so "v2_id" becomes "v2Id" while "item_2" is left alone.
func SnakeToCamel(s string) string {
	return snakeBoundary.ReplaceAllStringFunc(s, func(match string) string {
		return strings.ToUpper(match[1:])
	})
}

// CamelToSnake prefixes every uppercase ASCII letter with "_" and lowers it.
// Acronyms are not grouped: "ID" becomes "_i_d".
func CamelToSnake(s string) string {
	return camelBoundary.ReplaceAllStringFunc(s, func(match string) string {
		return "_" + strings.ToLower(match)
	})
}

func KeysToCamel(value any) any {
	return transformKeys(value, SnakeToCamel)
}

func KeysToSnake(value any) any {
	return transformKeys(value, CamelToSnake)
}

func transformKeys(value any, transform func(string) string) any {
	switch v := value.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, nested := range v {
			result[transform(key)] = transformKeys(nested, transform)
		}
		return result
	case []map[string]any:
		result := make([]any, len(v))
		for i, nested := range v {
			result[i] = transformKeys(nested, transform)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, nested := range v {
			result[i] = transformKeys(nested, transform)
		}
		return result
	default:
		return value
	}
}
