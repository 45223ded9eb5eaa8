package executor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/flowbaker/infomaniak/internal/managers"
	"github.com/flowbaker/infomaniak/pkg/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIntegrationType domain.IntegrationType       = "test_integration"
	testActionType      domain.IntegrationActionType = "echo"
)

type recordingExecutor struct {
	input   domain.IntegrationInput
	ctx     context.Context
	err     error
	peekErr error
}

func (r *recordingExecutor) Execute(ctx context.Context, input domain.IntegrationInput) (domain.IntegrationOutput, error) {
	r.ctx = ctx
	r.input = input

	if r.err != nil {
		return domain.IntegrationOutput{}, r.err
	}

	return domain.IntegrationOutput{
		ResultJSONByOutputID: []domain.Payload{input.PayloadByInputID["input"]},
	}, nil
}

type peekingExecutor struct {
	recordingExecutor
	params domain.PeekParams
}

func (p *peekingExecutor) Peek(ctx context.Context, params domain.PeekParams) (domain.PeekResult, error) {
	p.params = params

	return domain.PeekResult{
		Result: []domain.PeekResultItem{{Key: "1", Value: "1", Content: "Acme"}},
	}, p.peekErr
}

type creatorFunc func(ctx context.Context, p domain.CreateIntegrationParams) (domain.IntegrationExecutor, error)

func (f creatorFunc) CreateIntegration(ctx context.Context, p domain.CreateIntegrationParams) (domain.IntegrationExecutor, error) {
	return f(ctx, p)
}

type recordingTester struct {
	credential domain.Credential
}

func (r *recordingTester) TestConnection(ctx context.Context, params domain.TestConnectionParams) (bool, error) {
	r.credential = params.Credential

	return params.Credential.DecryptedPayload["api_token"] == "valid", nil
}

func newTestService(t *testing.T, executor domain.IntegrationExecutor) (ExecutorService, *recordingTester) {
	t.Helper()

	selector := domain.NewIntegrationSelector()
	tester := &recordingTester{}

	selector.RegisterSchema(domain.Integration{
		ID:      testIntegrationType,
		Name:    "Test",
		Actions: []domain.IntegrationAction{{ID: string(testActionType), ActionType: testActionType}},
	})
	selector.RegisterCreator(testIntegrationType, creatorFunc(func(ctx context.Context, p domain.CreateIntegrationParams) (domain.IntegrationExecutor, error) {
		if p.CredentialID != "default" {
			return nil, managers.ErrCredentialNotFound
		}
		return executor, nil
	}))
	selector.RegisterConnectionTester(testIntegrationType, tester)

	service := NewExecutorService(ExecutorServiceDependencies{
		IntegrationSelector: selector,
		CredentialManager: managers.NewExecutorCredentialManager(map[string]managers.CredentialEntry{
			"default": {Name: "Default", Payload: map[string]any{"api_token": "valid"}},
			"stale":   {Name: "Stale", Payload: map[string]any{"api_token": "revoked"}},
		}),
	})

	return service, tester
}

func TestExecutorService_Execute(t *testing.T) {
	executor := &recordingExecutor{}
	service, _ := newTestService(t, executor)

	result, err := service.Execute(context.Background(), ExecuteParams{
		IntegrationType: testIntegrationType,
		ActionType:      testActionType,
		CredentialID:    "default",
		Settings:        map[string]any{"account_id": 1},
		Items:           []domain.Item{map[string]any{"id": 1}, map[string]any{"id": 2}},
		ContinueOnFail:  true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ExecutionID)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, testActionType, executor.input.ActionType)
	assert.True(t, executor.input.ContinueOnFail)
	assert.Equal(t, map[string]any{"account_id": 1}, executor.input.IntegrationParams.Settings)

	executionContext, ok := domain.GetExecutionContext(executor.ctx)
	require.True(t, ok)
	assert.Equal(t, result.ExecutionID, executionContext.ExecutionID)
}

func TestExecutorService_ExecuteWithoutItemsRunsOnce(t *testing.T) {
	executor := &recordingExecutor{}
	service, _ := newTestService(t, executor)

	result, err := service.Execute(context.Background(), ExecuteParams{
		IntegrationType: testIntegrationType,
		ActionType:      testActionType,
		CredentialID:    "default",
	})
	require.NoError(t, err)

	assert.JSONEq(t, `[{}]`, string(executor.input.PayloadByInputID["input"]))
	assert.Len(t, result.Items, 1)
}

func TestExecutorService_ExecuteErrors(t *testing.T) {
	failure := errors.New("boom")

	tests := []struct {
		name   string
		params ExecuteParams
		err    error
		want   error
	}{
		{
			name:   "unknown integration",
			params: ExecuteParams{IntegrationType: "nope", ActionType: testActionType, CredentialID: "default"},
			want:   domain.ErrIntegrationNotFound,
		},
		{
			name:   "unknown action",
			params: ExecuteParams{IntegrationType: testIntegrationType, ActionType: "nope", CredentialID: "default"},
			want:   domain.ErrActionNotFound,
		},
		{
			name:   "unknown credential",
			params: ExecuteParams{IntegrationType: testIntegrationType, ActionType: testActionType, CredentialID: "missing"},
			want:   managers.ErrCredentialNotFound,
		},
		{
			name:   "integration failure",
			params: ExecuteParams{IntegrationType: testIntegrationType, ActionType: testActionType, CredentialID: "default"},
			err:    failure,
			want:   failure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t, &recordingExecutor{err: tt.err})

			result, err := service.Execute(context.Background(), tt.params)
			assert.ErrorIs(t, err, tt.want)
			assert.NotEmpty(t, result.ExecutionID)
		})
	}
}

func TestExecutorService_TestConnection(t *testing.T) {
	service, tester := newTestService(t, &recordingExecutor{})

	ok, err := service.TestConnection(context.Background(), TestConnectionParams{
		IntegrationType: testIntegrationType,
		CredentialID:    "default",
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Default", tester.credential.Name)

	ok, err = service.TestConnection(context.Background(), TestConnectionParams{
		IntegrationType: testIntegrationType,
		CredentialID:    "stale",
	})
	require.NoError(t, err)
	assert.False(t, ok)

	// an override repairs the stored token
	ok, err = service.TestConnection(context.Background(), TestConnectionParams{
		IntegrationType: testIntegrationType,
		CredentialID:    "stale",
		Payload:         map[string]any{"api_token": "valid"},
	})
	require.NoError(t, err)
	assert.True(t, ok)

	// an override alone is enough for an unsaved credential
	ok, err = service.TestConnection(context.Background(), TestConnectionParams{
		IntegrationType: testIntegrationType,
		Payload:         map[string]any{"api_token": "valid"},
	})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = service.TestConnection(context.Background(), TestConnectionParams{
		IntegrationType: testIntegrationType,
		CredentialID:    "missing",
	})
	assert.ErrorIs(t, err, managers.ErrCredentialNotFound)
}

func TestExecutorService_PeekData(t *testing.T) {
	peeker := &peekingExecutor{}
	service, _ := newTestService(t, peeker)

	result, err := service.PeekData(context.Background(), PeekDataParams{
		IntegrationType: testIntegrationType,
		CredentialID:    "default",
		PeekableType:    "accounts",
		Cursor:          "20",
		Limit:           10,
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.PeekResultItem{{Key: "1", Value: "1", Content: "Acme"}}, result.Result)
	assert.Equal(t, domain.PaginationParams{Limit: 10, Cursor: "20"}, peeker.params.Pagination)
	assert.Equal(t, domain.IntegrationPeekableType("accounts"), peeker.params.PeekableType)
}

func TestExecutorService_PeekDataNotPeekable(t *testing.T) {
	service, _ := newTestService(t, &recordingExecutor{})

	_, err := service.PeekData(context.Background(), PeekDataParams{
		IntegrationType: testIntegrationType,
		CredentialID:    "default",
		PeekableType:    "accounts",
	})
	assert.ErrorIs(t, err, ErrNotPeekable)
}

func TestExecutorService_Integrations(t *testing.T) {
	service, _ := newTestService(t, &recordingExecutor{})

	integrations := service.Integrations(context.Background())
	require.Len(t, integrations, 1)
	assert.Equal(t, testIntegrationType, integrations[0].ID)
}

func TestDecodeItems(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []domain.Item
		wantErr bool
	}{
		{name: "empty", raw: "", want: nil},
		{name: "null", raw: "null", want: nil},
		{name: "array", raw: `[{"id":1},{"id":2}]`, want: []domain.Item{map[string]any{"id": json.Number("1")}, map[string]any{"id": json.Number("2")}}},
		{name: "object", raw: `{"id":1}`, want: []domain.Item{map[string]any{"id": json.Number("1")}}},
		{name: "large id", raw: `[{"id":9007199254740993}]`, want: []domain.Item{map[string]any{"id": json.Number("9007199254740993")}}},
		{name: "scalar", raw: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := DecodeItems(json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, items)
		})
	}
}
