package common

import (
	"strings"

	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/utils/pagination"
	"github.com/flowbaker/infomaniak/pkg/utils/validation"
)

const (
	InfomaniakPeekable_Accounts domain.IntegrationPeekableType = "accounts"

	accountIDKey = "account_id"
)

var CredentialProperties = []domain.NodeProperty{
	{
		Key:         "api_token",
		Name:        "API Token",
		Description: "Infomaniak API token, created in the Manager under Developer > API tokens",
		Required:    true,
		Type:        domain.NodePropertyType_String,
		IsSecret:    true,
	},
}

// Actions generates the action list of a schema from its endpoint table.
func Actions(endpoints []Endpoint) []domain.IntegrationAction {
	actions := make([]domain.IntegrationAction, 0, len(endpoints))

	for _, endpoint := range endpoints {
		actions = append(actions, domain.IntegrationAction{
			ID:                string(endpoint.ActionType),
			ActionType:        endpoint.ActionType,
			Name:              endpoint.Name,
			Description:       endpoint.Description,
			Properties:        Properties(endpoint),
			SupportedContexts: []domain.ActionUsageContext{domain.UsageContextWorkflow, domain.UsageContextTool},
			HandlesByContext: map[domain.ActionUsageContext]domain.ContextHandles{
				domain.UsageContextWorkflow: {
					Input:  []domain.NodeHandle{{Type: domain.NodeHandleTypeDefault, Position: domain.NodeHandlePositionLeft}},
					Output: []domain.NodeHandle{{Type: domain.NodeHandleTypeDefault, Position: domain.NodeHandlePositionRight}},
				},
			},
		})
	}

	return actions
}

func Properties(endpoint Endpoint) []domain.NodeProperty {
	properties := []domain.NodeProperty{}

	for _, key := range endpoint.PathParams() {
		property := domain.NodeProperty{
			Key:              key,
			Name:             humanize(key),
			Required:         true,
			Type:             domain.NodePropertyType_String,
			ExpressionChoice: true,
		}

		if key == accountIDKey {
			property.Description = "The Infomaniak account"
			property.Peekable = true
			property.PeekableType = InfomaniakPeekable_Accounts
			property.PeekablePaginationType = domain.PeekablePaginationType_Page
		}

		properties = append(properties, property)
	}

	for _, field := range endpoint.Fields {
		properties = append(properties, fieldProperty(field))
	}

	if endpoint.DataKey != "" {
		properties = append(properties, domain.NodeProperty{
			Key:          endpoint.DataKey,
			Name:         humanize(endpoint.DataKey),
			Description:  "Additional fields as a JSON object",
			Type:         domain.NodePropertyType_CodeEditor,
			CodeLanguage: domain.CodeLanguageType_JSON,
		})
	}

	if endpoint.Paginate {
		properties = append(properties,
			domain.NodeProperty{
				Key:         SettingKey_ReturnAll,
				Name:        "Return All",
				Description: "Whether to return all results or only up to a given limit",
				Type:        domain.NodePropertyType_Boolean,
			},
			domain.NodeProperty{
				Key:         SettingKey_Limit,
				Name:        "Limit",
				Description: "Max number of results to return",
				Type:        domain.NodePropertyType_Integer,
				NumberOpts:  &domain.NumberPropertyOptions{Min: 1, Default: pagination.DefaultLimit},
				DependsOn:   &domain.DependsOn{PropertyKey: SettingKey_ReturnAll, Value: false},
			},
		)
	}

	properties = append(properties, domain.NodeProperty{
		Key:         SettingKey_CamelCaseOutput,
		Name:        "Camel Case Output",
		Description: "Convert snake_case keys in the response to camelCase",
		Type:        domain.NodePropertyType_Boolean,
		Advanced:    true,
	})

	return properties
}

func fieldProperty(field Field) domain.NodeProperty {
	property := domain.NodeProperty{
		Key:              field.Key,
		Name:             field.Name,
		Description:      field.Description,
		Required:         field.Required,
		Type:             domain.NodePropertyType_String,
		ExpressionChoice: true,
	}

	if property.Name == "" {
		property.Name = humanize(field.Key)
	}

	switch field.Kind {
	case FieldKind_Text:
		property.Type = domain.NodePropertyType_Text
	case FieldKind_Integer, FieldKind_ID:
		property.Type = domain.NodePropertyType_Integer
	case FieldKind_Boolean:
		property.Type = domain.NodePropertyType_Boolean
	case FieldKind_Email:
		property.Placeholder = "name@example.com"
	case FieldKind_Locale:
		for _, locale := range validation.Locales {
			property.Options = append(property.Options, domain.NodePropertyOption{Label: locale, Value: locale})
		}
	case FieldKind_RoleType:
		property.Type = domain.NodePropertyType_Integer
		for role := validation.RoleType_Administrator; role <= validation.RoleType_Guest; role++ {
			property.Options = append(property.Options, domain.NodePropertyOption{Label: role.String(), Value: int(role)})
		}
	case FieldKind_IDList, FieldKind_CSV:
		property.Type = domain.NodePropertyType_TagInput
		property.Help = "Comma-separated values are accepted"
	case FieldKind_JSON:
		property.Type = domain.NodePropertyType_CodeEditor
		property.CodeLanguage = domain.CodeLanguageType_JSON
	}

	return property
}

var acronyms = map[string]string{
	"id":   "ID",
	"ids":  "IDs",
	"dns":  "DNS",
	"url":  "URL",
	"csv":  "CSV",
	"ttl":  "TTL",
	"os":   "OS",
	"ssl":  "SSL",
	"fqdn": "FQDN",
}

// humanize turns a snake_case key into a label, e.g. "account_id" -> "Account ID".
func humanize(key string) string {
	words := strings.Split(key, "_")

	for i, word := range words {
		if acronym, ok := acronyms[word]; ok {
			words[i] = acronym
			continue
		}

		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}

	return strings.Join(words, " ")
}
