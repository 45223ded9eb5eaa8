package validation

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
)

var placeholderRegex = regexp.MustCompile(`\{(\w+)\}`)

// EncodeURLParam escapes a single path segment the way encodeURIComponent
// does: letters, digits and -_.!~*'() are left untouched.
func EncodeURLParam(value string) string {
	escaped := url.QueryEscape(value)

	replacer := strings.NewReplacer(
		"+", "%20",
		"%21", "!",
		"%27", "'",
		"%28", "(",
		"%29", ")",
		"%2A", "*",
		"%7E", "~",
	)

	return replacer.Replace(escaped)
}

// BuildEndpoint fills {key} placeholders from params. Missing keys are an
// error rather than a silently broken path.
func BuildEndpoint(template string, params map[string]string) (string, error) {
	var missing []string

	endpoint := placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1 : len(match)-1]

		value, ok := params[key]
		if !ok || strings.TrimSpace(value) == "" {
			missing = append(missing, key)
			return match
		}

		return EncodeURLParam(value)
	})

	if len(missing) > 0 {
		return "", NewValidationError(missing[0], "a non-empty path parameter", "Missing required field: "+strings.Join(missing, ", "))
	}

	return endpoint, nil
}

// PathParams lists the placeholder keys of a template in order.
func PathParams(template string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(template, -1)

	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		keys = append(keys, m[1])
	}

	return keys
}

// ParseOrReturn decodes value when it is a string holding JSON. Any other
// value, or a string that is not JSON, is returned as is.
func ParseOrReturn(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}

	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return value
	}

	var parsed any

	decoder := json.NewDecoder(strings.NewReader(trimmed))
	decoder.UseNumber()

	if err := decoder.Decode(&parsed); err != nil {
		return value
	}

	if _, err := decoder.Token(); err != io.EOF {
		return value
	}

	return parsed
}

// ParseJSONObject is ParseOrReturn restricted to objects.
func ParseJSONObject(value any, field string) (map[string]any, error) {
	if value == nil {
		return map[string]any{}, nil
	}

	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return map[string]any{}, nil
	}

	object, ok := ParseOrReturn(value).(map[string]any)
	if !ok {
		return nil, NewValidationError(field, "a JSON object", fmt.Sprintf("Invalid %s: must be a JSON object", field))
	}

	return object, nil
}
