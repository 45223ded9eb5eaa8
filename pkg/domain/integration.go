package domain

import (
	"context"
	"errors"
	"net/http"

	"github.com/flowbaker/infomaniak/pkg/clients/infomaniak"
)

var (
	ErrIntegrationNotFound = errors.New("integration not found")
	ErrActionNotFound      = errors.New("action not found")
)

type IntegrationType string
type IntegrationActionType string
type IntegrationPeekableType string
type IntegrationPeekablePaginationType string

const (
	IntegrationType_InfomaniakCore           IntegrationType = "infomaniak_core"
	IntegrationType_InfomaniakDNS            IntegrationType = "infomaniak_dns"
	IntegrationType_InfomaniakEmail          IntegrationType = "infomaniak_email"
	IntegrationType_InfomaniakPublicCloud    IntegrationType = "infomaniak_public_cloud"
	IntegrationType_InfomaniakStreamingVideo IntegrationType = "infomaniak_streaming_video"
)

type Integration struct {
	ID          IntegrationType `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`

	CredentialProperties []NodeProperty      `json:"credential_props" yaml:"credential_props"`
	Actions              []IntegrationAction `json:"actions" yaml:"actions"`

	CanTestConnection    bool `json:"can_test_connection" yaml:"can_test_connection"`
	IsCredentialOptional bool `json:"is_credential_optional" yaml:"is_credential_optional"`
}

// Action returns the action with the given type, if the integration has one.
func (i Integration) Action(actionType IntegrationActionType) (IntegrationAction, bool) {
	for _, action := range i.Actions {
		if action.ActionType == actionType {
			return action, true
		}
	}

	return IntegrationAction{}, false
}

// ActionUsageContext represents the context in which an integration is being used
type ActionUsageContext string

const (
	UsageContextWorkflow ActionUsageContext = "workflow" // Regular workflow automation
	UsageContextTool     ActionUsageContext = "tool"     // AI Agent tool
)

type NodeHandleType string
type NodeHandlePosition string

var (
	NodeHandleTypeDefault     NodeHandleType = "default"
	NodeHandleTypeSuccess     NodeHandleType = "success"
	NodeHandleTypeDestructive NodeHandleType = "destructive"
)

var (
	NodeHandlePositionTop    NodeHandlePosition = "top"
	NodeHandlePositionBottom NodeHandlePosition = "bottom"
	NodeHandlePositionLeft   NodeHandlePosition = "left"
	NodeHandlePositionRight  NodeHandlePosition = "right"
)

type NodeHandle struct {
	Type     NodeHandleType     `json:"type" yaml:"type"`
	Position NodeHandlePosition `json:"position,omitempty" yaml:"position,omitempty"`
	Text     string             `json:"text,omitempty" yaml:"text,omitempty"`
}

type ContextHandles struct {
	Input  []NodeHandle `json:"input" yaml:"input"`
	Output []NodeHandle `json:"output" yaml:"output"`
}

type IntegrationAction struct {
	ID                string                                `json:"id" yaml:"id"`
	ActionType        IntegrationActionType                 `json:"action_type" yaml:"action_type"`
	Name              string                                `json:"name" yaml:"name"`
	Description       string                                `json:"description" yaml:"description"`
	Properties        []NodeProperty                        `json:"properties" yaml:"properties"`
	HandlesByContext  map[ActionUsageContext]ContextHandles `json:"handles_by_context" yaml:"handles_by_context"`
	SupportedContexts []ActionUsageContext                  `json:"supported_contexts" yaml:"supported_contexts"`
}

type IntegrationInput struct {
	NodeID            string
	PayloadByInputID  map[string]Payload
	IntegrationParams IntegrationParams
	ActionType        IntegrationActionType

	// ContinueOnFail turns a failing item into an error item instead of
	// aborting the whole batch.
	ContinueOnFail bool
}

func (i IntegrationInput) GetItemsByInputID() (map[string][]Item, error) {
	itemsByInputID := map[string][]Item{}

	for inputID, payload := range i.PayloadByInputID {
		items, err := payload.ToItems()
		if err != nil {
			return nil, err
		}

		itemsByInputID[inputID] = items
	}

	return itemsByInputID, nil
}

// GetAllItems flattens every input's items, ordered by input ID.
func (i IntegrationInput) GetAllItems() ([]Item, error) {
	itemsByInputID, err := i.GetItemsByInputID()
	if err != nil {
		return nil, err
	}

	items := []Item{}

	for _, inputID := range sortedInputIDs(itemsByInputID) {
		items = append(items, itemsByInputID[inputID]...)
	}

	return items, nil
}

type IntegrationParams struct {
	Settings map[string]any
}

type IntegrationOutput struct {
	ResultJSONByOutputID []Payload
}

type IntegrationDeps struct {
	ParameterBinder           IntegrationParameterBinder
	ExecutorCredentialManager ExecutorCredentialManager

	// HTTPClient and APIBaseURL override the Infomaniak transport, mostly in tests.
	HTTPClient *http.Client
	APIBaseURL string
	UserAgent  string

	RequestObserver infomaniak.RequestObserver
}

type IntegrationParameterBinder interface {
	BindToStruct(ctx context.Context, item any, params any, expressions map[string]any) error
}
