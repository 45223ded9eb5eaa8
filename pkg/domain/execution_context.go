package domain

import (
	"context"
)

type ExecutionContextKey struct{}

// ExecutionContext identifies one run of an integration action.
type ExecutionContext struct {
	ExecutionID     string
	IntegrationType IntegrationType
	ActionType      IntegrationActionType
	CredentialID    string
	IsTesting       bool
}

type NewContextWithExecutionContextParams struct {
	ExecutionID     string
	IntegrationType IntegrationType
	ActionType      IntegrationActionType
	CredentialID    string
	IsTesting       bool
}

func NewContextWithExecutionContext(ctx context.Context, params NewContextWithExecutionContextParams) context.Context {
	executionContext := &ExecutionContext{
		ExecutionID:     params.ExecutionID,
		IntegrationType: params.IntegrationType,
		ActionType:      params.ActionType,
		CredentialID:    params.CredentialID,
		IsTesting:       params.IsTesting,
	}

	return context.WithValue(ctx, ExecutionContextKey{}, executionContext)
}

func GetExecutionContext(ctx context.Context) (*ExecutionContext, bool) {
	executionContext, ok := ctx.Value(ExecutionContextKey{}).(*ExecutionContext)

	return executionContext, ok
}
