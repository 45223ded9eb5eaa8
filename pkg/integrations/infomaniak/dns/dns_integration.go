package dnsintegration

import (
	"context"

	"github.com/flowbaker/infomaniak/internal/managers"
	"github.com/flowbaker/infomaniak/pkg/clients/infomaniak"
	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/integrations/infomaniak/common"
)

type DNSIntegrationCreator struct {
	binder           domain.IntegrationParameterBinder
	credentialGetter domain.CredentialGetter[common.Credential]
	clientOptions    []infomaniak.ClientOption
}

func NewDNSIntegrationCreator(deps domain.IntegrationDeps) domain.IntegrationCreator {
	return &DNSIntegrationCreator{
		binder:           deps.ParameterBinder,
		credentialGetter: managers.NewExecutorCredentialGetter[common.Credential](deps.ExecutorCredentialManager),
		clientOptions:    common.ClientOptions(deps),
	}
}

// DNS resources are addressed by zone and domain name, so nothing is peekable.
func (c *DNSIntegrationCreator) CreateIntegration(ctx context.Context, p domain.CreateIntegrationParams) (domain.IntegrationExecutor, error) {
	return common.NewIntegration(ctx, common.IntegrationDependencies{
		CredentialID:     p.CredentialID,
		ParameterBinder:  c.binder,
		CredentialGetter: c.credentialGetter,
		ClientOptions:    c.clientOptions,
		Endpoints:        Endpoints,
	})
}

func NewDNSConnectionTester(deps domain.IntegrationDeps) domain.IntegrationConnectionTester {
	return common.NewConnectionTester(deps)
}
