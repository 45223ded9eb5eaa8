// Package params turns loosely typed parameter bags into wire-ready query
// maps and JSON bodies.
package params

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/flowbaker/infomaniak/pkg/utils/casing"
)

// Bag values are string, bool, numeric (including json.Number), nil,
// []any or nested Bag/map[string]any.
type Bag = map[string]any

// BuildQueryString drops nil and "" values at every depth and converts the
// remaining keys to snake_case. 0 and false are kept.
func BuildQueryString(bag Bag) Bag {
	return clean(bag, false)
}

func BuildRequestBody(bag Bag) Bag {
	return clean(bag, false)
}

// BuildRequestBodyKeepEmpty is BuildRequestBody for endpoints where an empty
// string is meaningful, such as clearing a description.
func BuildRequestBodyKeepEmpty(bag Bag) Bag {
	return clean(bag, true)
}

func clean(bag Bag, keepEmptyStrings bool) Bag {
	result := Bag{}

	for key, value := range bag {
		cleaned, keep := cleanValue(value, keepEmptyStrings)
		if !keep {
			continue
		}

		result[casing.CamelToSnake(key)] = cleaned
	}

	return result
}

func cleanValue(value any, keepEmptyStrings bool) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case string:
		if v == "" && !keepEmptyStrings {
			return nil, false
		}
		return v, true
	case map[string]any:
		return clean(v, keepEmptyStrings), true
	case []map[string]any:
		items := make([]any, 0, len(v))
		for _, item := range v {
			items = append(items, clean(item, keepEmptyStrings))
		}
		return items, true
	case []any:
		items := make([]any, 0, len(v))
		for _, item := range v {
			cleaned, keep := cleanValue(item, keepEmptyStrings)
			if !keep {
				continue
			}
			items = append(items, cleaned)
		}
		return items, true
	default:
		return v, true
	}
}

// Encode flattens a built query bag into url.Values. Lists are sent as
// repeated "key[]" values and nested maps as "key[sub]".
func Encode(query Bag) url.Values {
	values := url.Values{}

	keys := make([]string, 0, len(query))
	for key := range query {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		encodeValue(values, key, query[key])
	}

	return values
}

func encodeValue(values url.Values, key string, value any) {
	switch v := value.(type) {
	case nil:
	case map[string]any:
		for sub, nested := range v {
			encodeValue(values, fmt.Sprintf("%s[%s]", key, sub), nested)
		}
	case []any:
		for _, item := range v {
			values.Add(key+"[]", scalarString(item))
		}
	case []int64:
		for _, item := range v {
			values.Add(key+"[]", strconv.FormatInt(item, 10))
		}
	case []string:
		for _, item := range v {
			values.Add(key+"[]", item)
		}
	default:
		values.Add(key, scalarString(v))
	}
}

func scalarString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	}
}
