package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/flowbaker/infomaniak/pkg/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrNotPeekable = errors.New("integration is not peekable")

type ExecuteParams struct {
	IntegrationType domain.IntegrationType
	ActionType      domain.IntegrationActionType
	CredentialID    string
	Settings        map[string]any
	Items           []domain.Item
	ContinueOnFail  bool
	IsTesting       bool
}

type ExecuteResult struct {
	ExecutionID string
	Items       []domain.Item
}

type TestConnectionParams struct {
	IntegrationType domain.IntegrationType
	CredentialID    string

	// Payload overrides stored credential fields, e.g. a token typed into a
	// form that has not been saved yet.
	Payload map[string]any
}

type PeekDataParams struct {
	IntegrationType domain.IntegrationType
	CredentialID    string
	PeekableType    domain.IntegrationPeekableType
	Cursor          string
	Limit           int
	PayloadJSON     []byte
}

type ExecutorService interface {
	Execute(ctx context.Context, params ExecuteParams) (ExecuteResult, error)
	TestConnection(ctx context.Context, params TestConnectionParams) (bool, error)
	PeekData(ctx context.Context, params PeekDataParams) (domain.PeekResult, error)
	Integrations(ctx context.Context) []domain.Integration
}

type ExecutorServiceDependencies struct {
	IntegrationSelector domain.IntegrationSelector
	CredentialManager   domain.ExecutorCredentialManager
}

type executorService struct {
	integrationSelector domain.IntegrationSelector
	credentialManager   domain.ExecutorCredentialManager
}

func NewExecutorService(deps ExecutorServiceDependencies) ExecutorService {
	return &executorService{
		integrationSelector: deps.IntegrationSelector,
		credentialManager:   deps.CredentialManager,
	}
}

func (s *executorService) Execute(ctx context.Context, params ExecuteParams) (ExecuteResult, error) {
	executionID := uuid.NewString()

	ctx = domain.NewContextWithExecutionContext(ctx, domain.NewContextWithExecutionContextParams{
		ExecutionID:     executionID,
		IntegrationType: params.IntegrationType,
		ActionType:      params.ActionType,
		CredentialID:    params.CredentialID,
		IsTesting:       params.IsTesting,
	})

	logger := log.With().
		Str("execution_id", executionID).
		Str("integration_type", string(params.IntegrationType)).
		Str("action_type", string(params.ActionType)).
		Logger()

	schema, err := s.integrationSelector.SelectSchema(ctx, domain.SelectIntegrationParams{
		IntegrationType: params.IntegrationType,
	})
	if err != nil {
		return ExecuteResult{ExecutionID: executionID}, err
	}

	if _, ok := schema.Action(params.ActionType); !ok {
		return ExecuteResult{ExecutionID: executionID}, fmt.Errorf("%w: %s", domain.ErrActionNotFound, params.ActionType)
	}

	creator, err := s.integrationSelector.SelectCreator(ctx, domain.SelectIntegrationParams{
		IntegrationType: params.IntegrationType,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to select integration creator")
		return ExecuteResult{ExecutionID: executionID}, err
	}

	integration, err := creator.CreateIntegration(ctx, domain.CreateIntegrationParams{
		CredentialID: params.CredentialID,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create integration")
		return ExecuteResult{ExecutionID: executionID}, err
	}

	items := params.Items
	if len(items) == 0 {
		// Actions run once per item, so a bare call still needs one.
		items = []domain.Item{map[string]any{}}
	}

	payload, err := domain.NewPayload(items)
	if err != nil {
		return ExecuteResult{ExecutionID: executionID}, fmt.Errorf("failed to encode input items: %w", err)
	}

	logger.Info().Int("item_count", len(items)).Msg("Executing action")
	start := time.Now()

	output, err := integration.Execute(ctx, domain.IntegrationInput{
		NodeID:            executionID,
		PayloadByInputID:  map[string]domain.Payload{"input": payload},
		IntegrationParams: domain.IntegrationParams{Settings: params.Settings},
		ActionType:        params.ActionType,
		ContinueOnFail:    params.ContinueOnFail,
	})
	if err != nil {
		logger.Error().Err(err).Dur("duration", time.Since(start)).Msg("Action failed")
		return ExecuteResult{ExecutionID: executionID}, err
	}

	outputItems := []domain.Item{}

	for _, resultJSON := range output.ResultJSONByOutputID {
		items, err := resultJSON.ToItems()
		if err != nil {
			return ExecuteResult{ExecutionID: executionID}, fmt.Errorf("failed to decode output items: %w", err)
		}

		outputItems = append(outputItems, items...)
	}

	logger.Info().Int("output_count", len(outputItems)).Dur("duration", time.Since(start)).Msg("Action completed")

	return ExecuteResult{
		ExecutionID: executionID,
		Items:       outputItems,
	}, nil
}

func (s *executorService) TestConnection(ctx context.Context, params TestConnectionParams) (bool, error) {
	credential, err := s.credentialManager.GetFullCredential(ctx, params.CredentialID)
	if err != nil {
		if len(params.Payload) == 0 {
			log.Error().Err(err).Msg("Failed to get credential for connection test")
			return false, err
		}

		credential = domain.Credential{ID: params.CredentialID, Type: domain.CredentialTypeDefault}
	}

	if len(params.Payload) > 0 {
		if credential.DecryptedPayload == nil {
			credential.DecryptedPayload = make(map[string]any)
		}
		for key, value := range params.Payload {
			credential.DecryptedPayload[key] = value
		}
	}

	connectionTester, err := s.integrationSelector.SelectConnectionTester(ctx, domain.SelectIntegrationParams{
		IntegrationType: params.IntegrationType,
	})
	if err != nil {
		log.Error().Err(err).Msgf("Failed to select connection tester for type %s", params.IntegrationType)
		return false, err
	}

	success, err := connectionTester.TestConnection(ctx, domain.TestConnectionParams{
		Credential: credential,
	})
	if err != nil {
		log.Error().Err(err).Msg("Connection test failed")
		return false, err
	}

	return success, nil
}

func (s *executorService) PeekData(ctx context.Context, params PeekDataParams) (domain.PeekResult, error) {
	integrationCreator, err := s.integrationSelector.SelectCreator(ctx, domain.SelectIntegrationParams{
		IntegrationType: params.IntegrationType,
	})
	if err != nil {
		log.Error().Err(err).Msgf("Failed to select integration creator for type %s", params.IntegrationType)
		return domain.PeekResult{}, err
	}

	integration, err := integrationCreator.CreateIntegration(ctx, domain.CreateIntegrationParams{
		CredentialID: params.CredentialID,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create integration")
		return domain.PeekResult{}, err
	}

	integrationPeeker, ok := integration.(domain.IntegrationPeeker)
	if !ok {
		return domain.PeekResult{}, ErrNotPeekable
	}

	result, err := integrationPeeker.Peek(ctx, domain.PeekParams{
		PeekableType: params.PeekableType,
		PayloadJSON:  params.PayloadJSON,
		Pagination: domain.PaginationParams{
			Limit:  params.Limit,
			Cursor: params.Cursor,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to peek data")
		return domain.PeekResult{}, err
	}

	return result, nil
}

func (s *executorService) Integrations(ctx context.Context) []domain.Integration {
	return s.integrationSelector.Schemas()
}

// DecodeItems accepts a JSON array of items or a single JSON object.
func DecodeItems(raw json.RawMessage) ([]domain.Item, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	payload := domain.Payload(raw)

	items, err := payload.ToItems()
	if err == nil {
		return items, nil
	}

	var single map[string]any

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	if objErr := decoder.Decode(&single); objErr != nil {
		return nil, fmt.Errorf("items must be a JSON array or object: %w", err)
	}

	return []domain.Item{single}, nil
}
