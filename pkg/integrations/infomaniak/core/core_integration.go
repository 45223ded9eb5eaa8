package coreintegration

import (
	"context"

	"github.com/flowbaker/infomaniak/internal/managers"
	"github.com/flowbaker/infomaniak/pkg/clients/infomaniak"
	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/integrations/infomaniak/common"
)

type CoreIntegrationCreator struct {
	binder           domain.IntegrationParameterBinder
	credentialGetter domain.CredentialGetter[common.Credential]
	clientOptions    []infomaniak.ClientOption
}

func NewCoreIntegrationCreator(deps domain.IntegrationDeps) domain.IntegrationCreator {
	return &CoreIntegrationCreator{
		binder:           deps.ParameterBinder,
		credentialGetter: managers.NewExecutorCredentialGetter[common.Credential](deps.ExecutorCredentialManager),
		clientOptions:    common.ClientOptions(deps),
	}
}

func (c *CoreIntegrationCreator) CreateIntegration(ctx context.Context, p domain.CreateIntegrationParams) (domain.IntegrationExecutor, error) {
	return common.NewIntegration(ctx, common.IntegrationDependencies{
		CredentialID:     p.CredentialID,
		ParameterBinder:  c.binder,
		CredentialGetter: c.credentialGetter,
		ClientOptions:    c.clientOptions,
		Endpoints:        Endpoints,
		PeekableTypes:    []domain.IntegrationPeekableType{common.InfomaniakPeekable_Accounts},
	})
}

func NewCoreConnectionTester(deps domain.IntegrationDeps) domain.IntegrationConnectionTester {
	return common.NewConnectionTester(deps)
}
