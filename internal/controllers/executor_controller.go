package controllers

import (
	"encoding/json"
	"errors"

	"github.com/flowbaker/infomaniak/internal/executor"
	"github.com/flowbaker/infomaniak/internal/managers"
	"github.com/flowbaker/infomaniak/pkg/clients/infomaniak"
	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/utils/validation"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

type ExecutionRequest struct {
	IntegrationType string          `json:"integration_type"`
	ActionType      string          `json:"action_type"`
	CredentialID    string          `json:"credential_id"`
	Settings        map[string]any  `json:"settings"`
	Items           json.RawMessage `json:"items"`
	ContinueOnFail  bool            `json:"continue_on_fail"`
}

type ExecutionResponse struct {
	ExecutionID string        `json:"execution_id"`
	Items       []domain.Item `json:"items"`
}

type ErrorResponse struct {
	ExecutionID string `json:"execution_id,omitempty"`
	Error       string `json:"error"`
	Field       string `json:"field,omitempty"`
	StatusCode  *int   `json:"status_code,omitempty"`
	ItemIndex   *int   `json:"item_index,omitempty"`
}

type ConnectionTestRequest struct {
	IntegrationType string         `json:"integration_type"`
	CredentialID    string         `json:"credential_id"`
	Payload         map[string]any `json:"payload"`
}

type ConnectionTestResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type PeekDataRequest struct {
	IntegrationType string          `json:"integration_type"`
	CredentialID    string          `json:"credential_id"`
	PeekableType    string          `json:"peekable_type"`
	Cursor          string          `json:"cursor"`
	Limit           int             `json:"limit"`
	PayloadJSON     json.RawMessage `json:"payload"`
}

type PeekDataResponse struct {
	Success    bool                    `json:"success"`
	Error      string                  `json:"error,omitempty"`
	ResultJSON json.RawMessage         `json:"result_json,omitempty"`
	Result     []domain.PeekResultItem `json:"result,omitempty"`
	Cursor     string                  `json:"cursor,omitempty"`
	HasMore    bool                    `json:"has_more"`
}

// ExecutorController serves the executor HTTP API
type ExecutorController struct {
	executorService executor.ExecutorService
}

type ExecutorControllerDependencies struct {
	ExecutorService executor.ExecutorService
}

func NewExecutorController(deps ExecutorControllerDependencies) *ExecutorController {
	return &ExecutorController{
		executorService: deps.ExecutorService,
	}
}

func (c *ExecutorController) ListIntegrations(ctx fiber.Ctx) error {
	return ctx.JSON(c.executorService.Integrations(ctx.RequestCtx()))
}

// StartExecution runs a single action against the given items
func (c *ExecutorController) StartExecution(ctx fiber.Ctx) error {
	var req ExecutionRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.IntegrationType == "" || req.ActionType == "" {
		return fiber.NewError(fiber.StatusBadRequest, "integration_type and action_type are required")
	}

	items, err := executor.DecodeItems(req.Items)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	log.Info().
		Str("integration_type", req.IntegrationType).
		Str("action_type", req.ActionType).
		Msg("Starting execution")

	result, err := c.executorService.Execute(ctx.RequestCtx(), executor.ExecuteParams{
		IntegrationType: domain.IntegrationType(req.IntegrationType),
		ActionType:      domain.IntegrationActionType(req.ActionType),
		CredentialID:    req.CredentialID,
		Settings:        req.Settings,
		Items:           items,
		ContinueOnFail:  req.ContinueOnFail,
	})
	if err != nil {
		status, response := errorResponse(err)
		response.ExecutionID = result.ExecutionID

		return ctx.Status(status).JSON(response)
	}

	return ctx.JSON(ExecutionResponse{
		ExecutionID: result.ExecutionID,
		Items:       result.Items,
	})
}

// TestConnection checks a stored or inline credential
func (c *ExecutorController) TestConnection(ctx fiber.Ctx) error {
	var req ConnectionTestRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	log.Info().
		Str("integration_type", req.IntegrationType).
		Str("credential_id", req.CredentialID).
		Msg("Testing connection")

	success, err := c.executorService.TestConnection(ctx.RequestCtx(), executor.TestConnectionParams{
		IntegrationType: domain.IntegrationType(req.IntegrationType),
		CredentialID:    req.CredentialID,
		Payload:         req.Payload,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to test connection")
		return ctx.JSON(ConnectionTestResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	return ctx.JSON(ConnectionTestResponse{
		Success: success,
	})
}

func (c *ExecutorController) PeekData(ctx fiber.Ctx) error {
	var req PeekDataRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := c.executorService.PeekData(ctx.RequestCtx(), executor.PeekDataParams{
		IntegrationType: domain.IntegrationType(req.IntegrationType),
		CredentialID:    req.CredentialID,
		PeekableType:    domain.IntegrationPeekableType(req.PeekableType),
		Cursor:          req.Cursor,
		Limit:           req.Limit,
		PayloadJSON:     req.PayloadJSON,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to peek data")

		return ctx.JSON(PeekDataResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	return ctx.JSON(PeekDataResponse{
		Success:    true,
		ResultJSON: result.ResultJSON,
		Result:     result.Result,
		Cursor:     result.Pagination.NextCursor,
		HasMore:    result.Pagination.HasMore,
	})
}

func errorResponse(err error) (int, ErrorResponse) {
	response := ErrorResponse{Error: err.Error()}

	var validationErr *validation.ValidationError
	if errors.As(err, &validationErr) {
		response.Field = validationErr.Field
		return fiber.StatusBadRequest, response
	}

	if apiErr, ok := infomaniak.AsAPIRequestError(err); ok {
		statusCode := apiErr.StatusCode
		itemIndex := apiErr.ItemIndex
		response.StatusCode = &statusCode
		response.ItemIndex = &itemIndex

		return fiber.StatusBadGateway, response
	}

	switch {
	case errors.Is(err, domain.ErrIntegrationNotFound),
		errors.Is(err, domain.ErrActionNotFound),
		errors.Is(err, managers.ErrCredentialNotFound):
		return fiber.StatusNotFound, response
	case errors.Is(err, infomaniak.ErrMissingAPIToken):
		return fiber.StatusUnauthorized, response
	}

	log.Error().Err(err).Msg("Execution failed")

	return fiber.StatusInternalServerError, response
}
