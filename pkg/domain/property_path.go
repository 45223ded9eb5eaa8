package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	validPathChars     = regexp.MustCompile(`^[a-zA-Z0-9._\-\[\]]+$`)
	invalidDotPatterns = regexp.MustCompile(`\.\.|\.\[|^\.|\.+$`)
	arraySegment       = regexp.MustCompile(`^(.+?)\[(\d+)\]$`)
)

// PropertyPathSegment represents a single segment in a property path
type PropertyPathSegment struct {
	Key   string `json:"key"`
	Index *int   `json:"index,omitempty"` // nil for non-array properties
}

// PropertyPathManager parses and resolves dot-notation paths into item data.
//
// Path format examples:
// - Simple: "name"
// - Nested: "zone.fqdn"
// - Array: "records[0].target"
type PropertyPathManager struct{}

func NewPropertyPathManager() *PropertyPathManager {
	return &PropertyPathManager{}
}

// BuildPath appends a key and optional index to a parent path.
func (p *PropertyPathManager) BuildPath(parentPath, propertyKey string, index *int) string {
	path := strings.TrimSpace(parentPath)

	if index != nil && *index >= 0 && path != "" {
		path = fmt.Sprintf("%s[%d]", path, *index)
	}

	propertyKey = strings.TrimSpace(propertyKey)
	if propertyKey != "" {
		if path != "" {
			path = fmt.Sprintf("%s.%s", path, propertyKey)
		} else {
			path = propertyKey
		}
	}

	return path
}

// ParsePath breaks down a dot-notation path into segments
func (p *PropertyPathManager) ParsePath(path string) ([]PropertyPathSegment, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return []PropertyPathSegment{}, nil
	}

	if !validPathChars.MatchString(path) {
		return nil, fmt.Errorf("invalid characters in path: '%s'", path)
	}

	if invalidDotPatterns.MatchString(path) {
		return nil, fmt.Errorf("invalid dot placement in path: '%s'", path)
	}

	var segments []PropertyPathSegment

	for _, part := range strings.Split(path, ".") {
		if part == "" {
			continue
		}

		matches := arraySegment.FindStringSubmatch(part)
		if len(matches) == 3 {
			index, err := strconv.Atoi(matches[2])
			if err != nil {
				return nil, fmt.Errorf("invalid array index '%s' in path '%s'", matches[2], path)
			}

			segments = append(segments, PropertyPathSegment{
				Key:   matches[1],
				Index: &index,
			})

			continue
		}

		if strings.Contains(part, "[") || strings.Contains(part, "]") {
			return nil, fmt.Errorf("invalid array notation in path segment '%s'", part)
		}

		segments = append(segments, PropertyPathSegment{Key: part})
	}

	return segments, nil
}

// Lookup resolves path against value. The second result is false when any
// segment is missing or of the wrong shape.
func (p *PropertyPathManager) Lookup(value any, path string) (any, bool, error) {
	segments, err := p.ParsePath(path)
	if err != nil {
		return nil, false, err
	}

	current := value

	for _, segment := range segments {
		object, ok := current.(map[string]any)
		if !ok {
			return nil, false, nil
		}

		current, ok = object[segment.Key]
		if !ok {
			return nil, false, nil
		}

		if segment.Index == nil {
			continue
		}

		array, ok := current.([]any)
		if !ok || *segment.Index >= len(array) {
			return nil, false, nil
		}

		current = array[*segment.Index]
	}

	return current, true, nil
}
