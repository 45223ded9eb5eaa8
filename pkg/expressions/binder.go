package expressions

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/flowbaker/infomaniak/pkg/domain"

	"github.com/rs/zerolog"
)

// PathBinder resolves {{ item.path }} expressions in node settings against
// the current item and binds the result into a struct.
type PathBinder struct {
	paths     *domain.PropertyPathManager
	exprRegex *regexp.Regexp
	logger    zerolog.Logger
}

type PathBinderOptions struct {
	Logger zerolog.Logger
}

func DefaultPathBinderOptions() PathBinderOptions {
	return PathBinderOptions{
		Logger: zerolog.Nop(),
	}
}

func NewPathBinder(opts PathBinderOptions) *PathBinder {
	return &PathBinder{
		paths:     domain.NewPropertyPathManager(),
		exprRegex: regexp.MustCompile(`\{\{(.*?)\}\}`),
		logger:    opts.Logger,
	}
}

// BindToStruct binds expressions in userNodeSettings to the target struct using item data
func (b *PathBinder) BindToStruct(ctx context.Context, item any, target any, userNodeSettings map[string]any) error {
	if err := b.validateInputs(target, userNodeSettings); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	boundData, err := b.bindValue(ctx, item, userNodeSettings)
	if err != nil {
		return fmt.Errorf("binding failed: %w", err)
	}

	jsonData, err := json.Marshal(boundData)
	if err != nil {
		return fmt.Errorf("failed to marshal bound data: %w", err)
	}

	decoder := json.NewDecoder(strings.NewReader(string(jsonData)))
	decoder.UseNumber()

	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("failed to unmarshal to target struct: %w", err)
	}

	return nil
}

func (b *PathBinder) validateInputs(target any, settings map[string]any) error {
	if target == nil || settings == nil {
		return fmt.Errorf("target and settings cannot be nil")
	}

	if reflect.ValueOf(target).Kind() != reflect.Ptr {
		return fmt.Errorf("target must be a pointer")
	}

	return nil
}

func (b *PathBinder) bindValue(ctx context.Context, item any, value any) (any, error) {
	switch v := value.(type) {
	case string:
		return b.bindString(ctx, item, v)
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, nested := range v {
			bound, err := b.bindValue(ctx, item, nested)
			if err != nil {
				return nil, fmt.Errorf("failed to bind key '%s': %w", key, err)
			}
			result[key] = bound
		}
		return result, nil
	case []any:
		result := make([]any, len(v))
		for i, nested := range v {
			bound, err := b.bindValue(ctx, item, nested)
			if err != nil {
				return nil, fmt.Errorf("failed to bind index %d: %w", i, err)
			}
			result[i] = bound
		}
		return result, nil
	default:
		return value, nil
	}
}

// bindString keeps the resolved type when the whole string is one
// expression and interpolates text otherwise.
func (b *PathBinder) bindString(ctx context.Context, item any, str string) (any, error) {
	matches := b.exprRegex.FindAllStringSubmatch(str, -1)
	if len(matches) == 0 {
		return str, nil
	}

	if len(matches) == 1 && matches[0][0] == str {
		return b.evaluate(item, matches[0][1])
	}

	result := str
	for _, match := range matches {
		value, err := b.evaluate(item, match[1])
		if err != nil {
			return nil, err
		}

		result = strings.ReplaceAll(result, match[0], valueToString(value))
	}

	return result, nil
}

func (b *PathBinder) evaluate(item any, expression string) (any, error) {
	path := strings.TrimSpace(expression)

	switch {
	case path == "item":
		return item, nil
	case strings.HasPrefix(path, "item."):
		path = strings.TrimPrefix(path, "item.")
	}

	value, ok, err := b.paths.Lookup(item, path)
	if err != nil {
		return nil, fmt.Errorf("invalid expression '%s': %w", expression, err)
	}

	if !ok {
		b.logger.Debug().Str("expression", path).Msg("Expression did not resolve against item")
		return nil, nil
	}

	return value, nil
}

func valueToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
