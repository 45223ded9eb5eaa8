package common

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/utils/validation"
)

var versionedPathRegex = regexp.MustCompile(`^/[1-9][0-9]*/`)

type FieldKind string

const (
	FieldKind_String   FieldKind = "string"
	FieldKind_Text     FieldKind = "text"
	FieldKind_Integer  FieldKind = "integer"
	FieldKind_Boolean  FieldKind = "boolean"
	FieldKind_Email    FieldKind = "email"
	FieldKind_Locale   FieldKind = "locale"
	FieldKind_RoleType FieldKind = "role_type"
	FieldKind_ID       FieldKind = "id"
	FieldKind_IDList   FieldKind = "id_list"
	FieldKind_CSV      FieldKind = "csv"
	FieldKind_JSON     FieldKind = "json"
)

// Field is one optional or required setting sent as a query or body value.
type Field struct {
	Key         string
	Name        string
	Description string
	Kind        FieldKind
	Required    bool
	Default     any

	// InQuery sends the field as a query parameter even on body methods.
	InQuery bool
}

// Endpoint describes one action as a single Infomaniak API call.
type Endpoint struct {
	ActionType  domain.IntegrationActionType
	Name        string
	Description string
	Method      string

	// Path is an explicitly versioned template such as
	// "/2/zones/{zone}/records/{record_id}". Each placeholder is a setting key.
	Path   string
	Intent string

	Paginate bool
	Fields   []Field

	// DataKey names a setting holding a free-form object, or JSON text, merged
	// under the typed fields.
	DataKey string

	BodyOnDelete bool

	// Ack is returned as {"success": true, "message": Ack} when the API sends
	// no payload.
	Ack string
}

func (e Endpoint) PathParams() []string {
	return validation.PathParams(e.Path)
}

// CheckEndpoints reports the first inconsistency in an endpoint table:
// a repeated action type, an unversioned path, or a field that shadows a
// path parameter.
func CheckEndpoints(endpoints []Endpoint) error {
	seen := make(map[domain.IntegrationActionType]bool, len(endpoints))

	for _, e := range endpoints {
		if seen[e.ActionType] {
			return fmt.Errorf("duplicate action type %q", e.ActionType)
		}
		seen[e.ActionType] = true

		if !versionedPathRegex.MatchString(e.Path) {
			return fmt.Errorf("action %q: path %q has no API version prefix", e.ActionType, e.Path)
		}

		params := map[string]bool{}
		for _, key := range e.PathParams() {
			params[key] = true
		}

		keys := map[string]bool{}
		for _, f := range e.Fields {
			if params[f.Key] {
				return fmt.Errorf("action %q: field %q shadows a path parameter", e.ActionType, f.Key)
			}
			if keys[f.Key] {
				return fmt.Errorf("action %q: duplicate field %q", e.ActionType, f.Key)
			}
			keys[f.Key] = true
		}

		if e.DataKey != "" && (params[e.DataKey] || keys[e.DataKey]) {
			return fmt.Errorf("action %q: data key %q collides with another setting", e.ActionType, e.DataKey)
		}
	}

	return nil
}

func (e Endpoint) sendsQuery() bool {
	switch e.Method {
	case "GET":
		return true
	case "DELETE":
		return !e.BodyOnDelete
	}

	return false
}

func (e Endpoint) intent() string {
	if e.Intent != "" {
		return e.Intent
	}

	return strings.ToLower(e.Name)
}

// resolve validates and normalizes the field's raw setting. The second
// result is false when the value is absent and has no default.
func (f Field) resolve(raw any) (any, bool, error) {
	if isAbsent(raw) {
		if f.Default != nil {
			return f.Default, true, nil
		}

		if f.Required {
			return nil, false, validation.NewValidationError(f.Key, "a value", fmt.Sprintf("Missing required field: %s", f.Key))
		}

		return nil, false, nil
	}

	value, err := f.normalize(raw)
	if err != nil {
		return nil, false, err
	}

	return value, true, nil
}

func (f Field) normalize(raw any) (any, error) {
	switch f.Kind {
	case FieldKind_Email:
		return validation.ValidateEmail(fmt.Sprint(raw))
	case FieldKind_Locale:
		return validation.ValidateLocale(strings.TrimSpace(fmt.Sprint(raw)))
	case FieldKind_RoleType:
		if s, ok := raw.(string); ok {
			raw = json.Number(strings.TrimSpace(s))
		}
		roleType, err := validation.ValidateRoleType(raw)
		if err != nil {
			return nil, err
		}
		return int(roleType), nil
	case FieldKind_ID:
		return validation.ValidateID(raw)
	case FieldKind_IDList:
		return f.idList(raw)
	case FieldKind_CSV:
		return csvList(raw), nil
	case FieldKind_Integer:
		return f.integer(raw)
	case FieldKind_Boolean:
		return f.boolean(raw)
	case FieldKind_JSON:
		return validation.ParseOrReturn(raw), nil
	default:
		return raw, nil
	}
}

func (f Field) idList(raw any) ([]int64, error) {
	switch v := raw.(type) {
	case string:
		return validation.ParseIDArray(v)
	case []any:
		ids := make([]int64, 0, len(v))
		for _, element := range v {
			id, err := validation.ValidateID(element)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		return ids, nil
	default:
		id, err := validation.ValidateID(raw)
		if err != nil {
			return nil, err
		}
		return []int64{id}, nil
	}
}

func (f Field) integer(raw any) (any, error) {
	invalid := validation.NewValidationError(f.Key, "an integer", fmt.Sprintf("Invalid %s: must be an integer", f.Key))

	switch v := raw.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
		return nil, invalid
	case float64:
		if v != float64(int64(v)) {
			return nil, invalid
		}
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, invalid
		}
		return n, nil
	}

	return nil, invalid
}

func (f Field) boolean(raw any) (any, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err == nil {
			return parsed, nil
		}
	}

	return nil, validation.NewValidationError(f.Key, "a boolean", fmt.Sprintf("Invalid %s: must be true or false", f.Key))
}

func csvList(raw any) []any {
	switch v := raw.(type) {
	case []any:
		return v
	case string:
		values := []any{}
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			values = append(values, part)
		}
		return values
	}

	return []any{raw}
}

func isAbsent(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	}

	return false
}
