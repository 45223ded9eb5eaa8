package common

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/flowbaker/infomaniak/pkg/clients/infomaniak"
	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/utils/pagination"
)

var accountsPagination = domain.PeekablePaginationConfig{
	DefaultLimit: 20,
	MaxLimit:     100,
}

type IntegrationDependencies struct {
	CredentialID     string
	ParameterBinder  domain.IntegrationParameterBinder
	CredentialGetter domain.CredentialGetter[Credential]
	ClientOptions    []infomaniak.ClientOption

	Endpoints     []Endpoint
	PeekableTypes []domain.IntegrationPeekableType
}

// Integration executes an endpoint table against one credential.
type Integration struct {
	client  *infomaniak.Client
	handler *Handler

	actionManager *domain.IntegrationActionManager
	peekFuncs     map[domain.IntegrationPeekableType]domain.PeekFunc
}

func NewIntegration(ctx context.Context, deps IntegrationDependencies) (*Integration, error) {
	credential, err := deps.CredentialGetter.GetDecryptedCredential(ctx, deps.CredentialID)
	if err != nil {
		return nil, err
	}

	client, err := infomaniak.NewClient(infomaniak.Credentials{APIToken: credential.APIToken}, deps.ClientOptions...)
	if err != nil {
		return nil, err
	}

	integration := &Integration{
		client:        client,
		handler:       NewHandler(client, deps.ParameterBinder),
		actionManager: domain.NewIntegrationActionManager(),
		peekFuncs:     map[domain.IntegrationPeekableType]domain.PeekFunc{},
	}

	for _, endpoint := range deps.Endpoints {
		integration.actionManager.AddPerItemMulti(endpoint.ActionType, integration.handler.ActionFunc(endpoint))
	}

	for _, peekableType := range deps.PeekableTypes {
		if peekableType == InfomaniakPeekable_Accounts {
			integration.peekFuncs[peekableType] = integration.PeekAccounts
		}
	}

	return integration, nil
}

func (i *Integration) Execute(ctx context.Context, params domain.IntegrationInput) (domain.IntegrationOutput, error) {
	return i.actionManager.Run(ctx, params.ActionType, params)
}

func (i *Integration) Peek(ctx context.Context, params domain.PeekParams) (domain.PeekResult, error) {
	peekFunc, ok := i.peekFuncs[params.PeekableType]
	if !ok {
		return domain.PeekResult{}, fmt.Errorf("peek function not found")
	}

	return peekFunc(ctx, params)
}

type account struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

// PeekAccounts lists the accounts the token can reach, one page at a time.
func (i *Integration) PeekAccounts(ctx context.Context, params domain.PeekParams) (domain.PeekResult, error) {
	handler, err := pagination.NewHandler(domain.PeekablePaginationType_Page, accountsPagination)
	if err != nil {
		return domain.PeekResult{}, err
	}

	if err := handler.ValidateParams(params.Pagination); err != nil {
		return domain.PeekResult{}, err
	}

	query, err := handler.BuildRequestParams(params.Pagination)
	if err != nil {
		return domain.PeekResult{}, err
	}

	envelope, err := i.client.RequestEnvelope(ctx, http.MethodGet, "/1/accounts", nil, query, 0, infomaniak.WithIntent("list accounts"))
	if err != nil {
		return domain.PeekResult{}, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts, err := infomaniak.Decode[[]account](envelope.Data)
	if err != nil {
		return domain.PeekResult{}, fmt.Errorf("failed to decode accounts: %w", err)
	}

	results := make([]domain.PeekResultItem, 0, len(accounts))
	for _, a := range accounts {
		results = append(results, domain.PeekResultItem{
			Key:     a.ID.String(),
			Value:   a.ID.String(),
			Content: a.Name,
		})
	}

	metadata, err := handler.ParseResponseMetadata(envelope.Raw)
	if err != nil {
		return domain.PeekResult{}, err
	}

	resultJSON, err := json.Marshal(results)
	if err != nil {
		return domain.PeekResult{}, err
	}

	return domain.PeekResult{
		Result:     results,
		ResultJSON: resultJSON,
		Pagination: metadata,
	}, nil
}
