package initialization

import (
	"fmt"

	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/integrations/infomaniak/common"
	coreintegration "github.com/flowbaker/infomaniak/pkg/integrations/infomaniak/core"
	dnsintegration "github.com/flowbaker/infomaniak/pkg/integrations/infomaniak/dns"
	emailintegration "github.com/flowbaker/infomaniak/pkg/integrations/infomaniak/email"
	publiccloudintegration "github.com/flowbaker/infomaniak/pkg/integrations/infomaniak/public_cloud"
	streamingvideointegration "github.com/flowbaker/infomaniak/pkg/integrations/infomaniak/streaming_video"
)

type integrationRegisterParams struct {
	Schema              domain.Integration
	Endpoints           []common.Endpoint
	NewCreator          func(deps domain.IntegrationDeps) domain.IntegrationCreator
	NewConnectionTester func(deps domain.IntegrationDeps) domain.IntegrationConnectionTester
}

var integrationRegisterParamsList = []integrationRegisterParams{
	{
		Schema:              coreintegration.CoreSchema,
		Endpoints:           coreintegration.Endpoints,
		NewCreator:          coreintegration.NewCoreIntegrationCreator,
		NewConnectionTester: coreintegration.NewCoreConnectionTester,
	},
	{
		Schema:              dnsintegration.DNSSchema,
		Endpoints:           dnsintegration.Endpoints,
		NewCreator:          dnsintegration.NewDNSIntegrationCreator,
		NewConnectionTester: dnsintegration.NewDNSConnectionTester,
	},
	{
		Schema:              emailintegration.EmailSchema,
		Endpoints:           emailintegration.Endpoints,
		NewCreator:          emailintegration.NewEmailIntegrationCreator,
		NewConnectionTester: emailintegration.NewEmailConnectionTester,
	},
	{
		Schema:              publiccloudintegration.PublicCloudSchema,
		Endpoints:           publiccloudintegration.Endpoints,
		NewCreator:          publiccloudintegration.NewPublicCloudIntegrationCreator,
		NewConnectionTester: publiccloudintegration.NewPublicCloudConnectionTester,
	},
	{
		Schema:              streamingvideointegration.StreamingVideoSchema,
		Endpoints:           streamingvideointegration.Endpoints,
		NewCreator:          streamingvideointegration.NewStreamingVideoIntegrationCreator,
		NewConnectionTester: streamingvideointegration.NewStreamingVideoConnectionTester,
	},
}

func registerIntegrations(integrationSelector domain.IntegrationSelector, commonDeps domain.IntegrationDeps) error {
	for _, params := range integrationRegisterParamsList {
		if err := common.CheckEndpoints(params.Endpoints); err != nil {
			return fmt.Errorf("invalid endpoint table for %s: %w", params.Schema.ID, err)
		}

		integrationSelector.RegisterSchema(params.Schema)

		if params.NewCreator != nil {
			creator := params.NewCreator(commonDeps)
			integrationSelector.RegisterCreator(params.Schema.ID, creator)
		}

		if params.NewConnectionTester != nil {
			connectionTester := params.NewConnectionTester(commonDeps)
			integrationSelector.RegisterConnectionTester(params.Schema.ID, connectionTester)
		}
	}

	return nil
}
