package common

import (
	"context"
	"fmt"

	"github.com/flowbaker/infomaniak/pkg/clients/infomaniak"
	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/utils/casing"
	"github.com/flowbaker/infomaniak/pkg/utils/pagination"
	"github.com/flowbaker/infomaniak/pkg/utils/params"
	"github.com/flowbaker/infomaniak/pkg/utils/validation"
)

const (
	SettingKey_ReturnAll       = "return_all"
	SettingKey_Limit           = "limit"
	SettingKey_CamelCaseOutput = "camel_case_output"
)

var (
	returnAllField = Field{Key: SettingKey_ReturnAll, Kind: FieldKind_Boolean, Default: false}
	limitField     = Field{Key: SettingKey_Limit, Kind: FieldKind_Integer, Default: int64(pagination.DefaultLimit)}
	camelCaseField = Field{Key: SettingKey_CamelCaseOutput, Kind: FieldKind_Boolean, Default: false}
)

// Requester is the part of the Infomaniak client the handler needs.
type Requester interface {
	Request(ctx context.Context, method, path string, body, query params.Bag, itemIndex int, opts ...infomaniak.RequestOption) (any, error)
}

// Handler turns one input item into one API call and its output items.
type Handler struct {
	client Requester
	binder domain.IntegrationParameterBinder
}

func NewHandler(client Requester, binder domain.IntegrationParameterBinder) *Handler {
	return &Handler{
		client: client,
		binder: binder,
	}
}

// ActionFunc adapts endpoint into an action manager function.
func (h *Handler) ActionFunc(endpoint Endpoint) domain.ActionFuncPerItemMulti {
	return func(ctx context.Context, input domain.IntegrationInput, item domain.Item, itemIndex int) ([]domain.Item, error) {
		return h.Run(ctx, endpoint, input, item, itemIndex)
	}
}

func (h *Handler) Run(ctx context.Context, endpoint Endpoint, input domain.IntegrationInput, item domain.Item, itemIndex int) ([]domain.Item, error) {
	expressions := input.IntegrationParams.Settings
	if expressions == nil {
		expressions = map[string]any{}
	}

	settings := map[string]any{}

	if err := h.binder.BindToStruct(ctx, item, &settings, expressions); err != nil {
		return nil, err
	}

	path, pathValues, err := buildPath(endpoint, settings)
	if err != nil {
		return nil, err
	}

	values, err := collectValues(endpoint, settings)
	if err != nil {
		return nil, err
	}

	var body, query params.Bag

	if endpoint.sendsQuery() {
		query = params.BuildQueryString(mergeBags(values.query, values.payload))
	} else {
		query = params.BuildQueryString(values.query)
		body = params.BuildRequestBody(values.payload)
	}

	data, err := h.client.Request(ctx, endpoint.Method, path, body, query, itemIndex, infomaniak.WithIntent(endpoint.intent()))
	if err != nil {
		return nil, err
	}

	items, err := shapeOutput(endpoint, data, settings, pathValues)
	if err != nil {
		return nil, err
	}

	camelCase, _, err := camelCaseField.resolve(settings[SettingKey_CamelCaseOutput])
	if err != nil {
		return nil, err
	}

	if camelCase == true {
		for i, outputItem := range items {
			items[i] = casing.KeysToCamel(outputItem)
		}
	}

	return items, nil
}

func buildPath(endpoint Endpoint, settings map[string]any) (string, map[string]string, error) {
	pathValues := map[string]string{}

	for _, key := range endpoint.PathParams() {
		value := settings[key]
		if isAbsent(value) {
			continue
		}

		pathValues[key] = fmt.Sprint(value)
	}

	path, err := validation.BuildEndpoint(endpoint.Path, pathValues)
	if err != nil {
		return "", nil, err
	}

	return path, pathValues, nil
}

type endpointValues struct {
	query   params.Bag
	payload params.Bag
}

func collectValues(endpoint Endpoint, settings map[string]any) (endpointValues, error) {
	values := endpointValues{
		query:   params.Bag{},
		payload: params.Bag{},
	}

	if endpoint.DataKey != "" {
		data, err := validation.ParseJSONObject(settings[endpoint.DataKey], endpoint.DataKey)
		if err != nil {
			return endpointValues{}, err
		}

		for key, value := range data {
			values.payload[key] = value
		}
	}

	for _, field := range endpoint.Fields {
		value, ok, err := field.resolve(settings[field.Key])
		if err != nil {
			return endpointValues{}, err
		}

		if !ok {
			continue
		}

		if field.InQuery {
			values.query[field.Key] = value
			continue
		}

		values.payload[field.Key] = value
	}

	return values, nil
}

func shapeOutput(endpoint Endpoint, data any, settings map[string]any, pathValues map[string]string) ([]domain.Item, error) {
	switch v := data.(type) {
	case nil:
		if endpoint.Ack == "" {
			return nil, nil
		}
		return []domain.Item{ackItem(endpoint, pathValues, nil)}, nil
	case []any:
		if endpoint.Paginate {
			var err error
			v, err = paginate(v, settings)
			if err != nil {
				return nil, err
			}
		}

		items := make([]domain.Item, 0, len(v))
		for _, element := range v {
			items = append(items, element)
		}
		return items, nil
	case map[string]any:
		return []domain.Item{v}, nil
	default:
		if endpoint.Ack != "" {
			return []domain.Item{ackItem(endpoint, pathValues, v)}, nil
		}
		return []domain.Item{map[string]any{"result": v}}, nil
	}
}

func paginate(items []any, settings map[string]any) ([]any, error) {
	returnAll, _, err := returnAllField.resolve(settings[SettingKey_ReturnAll])
	if err != nil {
		return nil, err
	}

	limit, _, err := limitField.resolve(settings[SettingKey_Limit])
	if err != nil {
		return nil, err
	}

	return pagination.ApplyPagination(items, returnAll == true, int(limit.(int64))), nil
}

func ackItem(endpoint Endpoint, pathValues map[string]string, result any) map[string]any {
	ack := map[string]any{
		"success": true,
		"message": endpoint.Ack,
	}

	for key, value := range pathValues {
		ack[key] = value
	}

	if result != nil {
		ack["result"] = result
	}

	return ack
}

func mergeBags(bags ...params.Bag) params.Bag {
	merged := params.Bag{}

	for _, bag := range bags {
		for key, value := range bag {
			merged[key] = value
		}
	}

	return merged
}
