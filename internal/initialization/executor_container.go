package initialization

import (
	"net/http"

	"github.com/flowbaker/infomaniak/internal/config"
	"github.com/flowbaker/infomaniak/internal/controllers"
	"github.com/flowbaker/infomaniak/internal/executor"
	"github.com/flowbaker/infomaniak/internal/managers"
	"github.com/flowbaker/infomaniak/internal/metrics"
	"github.com/flowbaker/infomaniak/internal/version"
	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/expressions"

	"github.com/rs/zerolog/log"
)

type ExecutorDependencies struct {
	IntegrationSelector domain.IntegrationSelector
	CredentialManager   domain.ExecutorCredentialManager
	ExecutorService     executor.ExecutorService
	ExecutorController  *controllers.ExecutorController
	Metrics             *metrics.RequestMetrics
}

type ExecutorDependencyConfig struct {
	Config *config.Config

	// HTTPClient replaces the transport built from Config, mostly in tests.
	HTTPClient *http.Client
}

func BuildExecutorDependencies(deps ExecutorDependencyConfig) (*ExecutorDependencies, error) {
	log.Debug().Msg("Building executor dependencies")

	timeout, err := deps.Config.Timeout()
	if err != nil {
		return nil, err
	}

	httpClient := deps.HTTPClient
	if httpClient == nil && timeout > 0 {
		httpClient = &http.Client{Timeout: timeout}
	}

	credentials := make(map[string]managers.CredentialEntry, len(deps.Config.Credentials))
	for id, credential := range deps.Config.Credentials {
		credentials[id] = managers.CredentialEntry{
			Name:    credential.Name,
			Payload: map[string]any{"api_token": credential.APIToken},
		}
	}

	credentialManager := managers.NewExecutorCredentialManager(credentials)
	requestMetrics := metrics.NewRequestMetrics()
	integrationSelector := domain.NewIntegrationSelector()

	integrationDeps := domain.IntegrationDeps{
		ParameterBinder:           expressions.NewPathBinder(expressions.DefaultPathBinderOptions()),
		ExecutorCredentialManager: credentialManager,
		HTTPClient:                httpClient,
		APIBaseURL:                deps.Config.APIBaseURL,
		UserAgent:                 version.UserAgent(),
		RequestObserver:           requestMetrics,
	}

	if err := registerIntegrations(integrationSelector, integrationDeps); err != nil {
		return nil, err
	}

	executorService := executor.NewExecutorService(executor.ExecutorServiceDependencies{
		IntegrationSelector: integrationSelector,
		CredentialManager:   credentialManager,
	})

	executorController := controllers.NewExecutorController(controllers.ExecutorControllerDependencies{
		ExecutorService: executorService,
	})

	log.Debug().
		Int("integrations", len(integrationSelector.Schemas())).
		Strs("credentials", managers.CredentialIDs(credentialManager)).
		Msg("Executor dependencies built")

	return &ExecutorDependencies{
		IntegrationSelector: integrationSelector,
		CredentialManager:   credentialManager,
		ExecutorService:     executorService,
		ExecutorController:  executorController,
		Metrics:             requestMetrics,
	}, nil
}
