package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	emailRegex = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
	digitsRegex = regexp.MustCompile(`^\d+$`)
)

// Locales accepted by the Infomaniak account and invitation endpoints.
var Locales = []string{
	"de_CH",
	"de_DE",
	"en_GB",
	"en_US",
	"es_ES",
	"fr_CH",
	"fr_FR",
	"it_CH",
	"it_IT",
}

type RoleType int

const (
	RoleType_Administrator RoleType = 0
	RoleType_Manager       RoleType = 1
	RoleType_Editor        RoleType = 2
	RoleType_Contributor   RoleType = 3
	RoleType_Viewer        RoleType = 4
	RoleType_Guest         RoleType = 5
)

var roleTypeNames = map[RoleType]string{
	RoleType_Administrator: "Administrator",
	RoleType_Manager:       "Manager",
	RoleType_Editor:        "Editor",
	RoleType_Contributor:   "Contributor",
	RoleType_Viewer:        "Viewer",
	RoleType_Guest:         "Guest",
}

func (r RoleType) String() string {
	name, ok := roleTypeNames[r]
	if !ok {
		return fmt.Sprintf("RoleType(%d)", int(r))
	}

	return name
}

// ValidationError reports caller input rejected before any request is made.
type ValidationError struct {
	Field    string
	Expected string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.Field == "" {
		return fmt.Sprintf("invalid value: expected %s", e.Expected)
	}

	return fmt.Sprintf("invalid %s: expected %s", e.Field, e.Expected)
}

func NewValidationError(field, expected, message string) *ValidationError {
	return &ValidationError{
		Field:    field,
		Expected: expected,
		Message:  message,
	}
}

func IsValidEmail(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}

	return emailRegex.MatchString(trimmed)
}

// ValidateEmail returns the trimmed address.
func ValidateEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(email)

	if !IsValidEmail(trimmed) {
		return "", NewValidationError("email", "a valid email address", "Invalid email address format")
	}

	return trimmed, nil
}

// IsValidID accepts positive integers given as Go integers, integral floats,
// json.Number or digit-only strings.
func IsValidID(value any) bool {
	_, ok := toPositiveID(value)
	return ok
}

func ValidateID(value any) (int64, error) {
	id, ok := toPositiveID(value)
	if !ok {
		return 0, NewValidationError("id", "a positive integer", "Invalid ID: must be a positive integer")
	}

	return id, nil
}

func toPositiveID(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), v > 0
	case int32:
		return int64(v), v > 0
	case int64:
		return v, v > 0
	case uint:
		return int64(v), v > 0 && uint64(v) <= math.MaxInt64
	case uint32:
		return int64(v), v > 0
	case uint64:
		return int64(v), v > 0 && v <= math.MaxInt64
	case float32:
		return floatToID(float64(v))
	case float64:
		return floatToID(v)
	case json.Number:
		return stringToID(v.String())
	case string:
		return stringToID(v)
	default:
		return 0, false
	}
}

func floatToID(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f <= 0 || f > math.MaxInt64 {
		return 0, false
	}

	return int64(f), true
}

func stringToID(s string) (int64, bool) {
	trimmed := strings.TrimSpace(s)
	if !digitsRegex.MatchString(trimmed) {
		return 0, false
	}

	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// ParseIDArray parses "1, 2,3" into its IDs. Empty segments are skipped and a
// single invalid segment rejects the whole list.
func ParseIDArray(input string) ([]int64, error) {
	ids := []int64{}

	for _, segment := range strings.Split(input, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		id, ok := stringToID(segment)
		if !ok {
			return nil, NewValidationError("ids", "comma-separated positive integers", fmt.Sprintf("Invalid ID: %q", segment))
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func IsValidLocale(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}

	return false
}

func ValidateLocale(locale string) (string, error) {
	if !IsValidLocale(locale) {
		return "", NewValidationError("locale", "one of "+strings.Join(Locales, ", "), "Invalid locale. Must be one of: "+strings.Join(Locales, ", "))
	}

	return locale, nil
}

// IsValidRoleType only accepts numbers; "0" is not a role type.
func IsValidRoleType(value any) bool {
	_, ok := toRoleType(value)
	return ok
}

func ValidateRoleType(value any) (RoleType, error) {
	roleType, ok := toRoleType(value)
	if !ok {
		return 0, NewValidationError("role_type", "a number between 0 and 5", "Invalid role type. Must be between 0 (Administrator) and 5 (Guest)")
	}

	return roleType, nil
}

func toRoleType(value any) (RoleType, bool) {
	var f float64

	switch v := value.(type) {
	case RoleType:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if f != math.Trunc(f) || f < float64(RoleType_Administrator) || f > float64(RoleType_Guest) {
		return 0, false
	}

	return RoleType(f), true
}

func IsNonEmptyString(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}

	return strings.TrimSpace(s) != ""
}

// ValidateNonEmptyString returns the trimmed string or an error naming field.
func ValidateNonEmptyString(value any, field string) (string, error) {
	if !IsNonEmptyString(value) {
		return "", NewValidationError(field, "a non-empty string", "Missing required field: "+field)
	}

	return strings.TrimSpace(value.(string)), nil
}

// IsValidUUID accepts only the canonical 36-character hyphenated form.
func IsValidUUID(value string) bool {
	if len(value) != 36 {
		return false
	}

	return uuid.Validate(value) == nil
}
