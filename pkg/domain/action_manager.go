package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/flowbaker/infomaniak/pkg/clients/infomaniak"

	"github.com/rs/zerolog/log"
)

type ActionFuncPerItemMulti func(ctx context.Context, params IntegrationInput, item Item, itemIndex int) ([]Item, error)
type PeekFunc func(ctx context.Context, params PeekParams) (PeekResult, error)

type IntegrationActionManager struct {
	mtx                     sync.RWMutex
	actionFuncsPerItemMulti map[IntegrationActionType]ActionFuncPerItemMulti
}

func NewIntegrationActionManager() *IntegrationActionManager {
	return &IntegrationActionManager{
		actionFuncsPerItemMulti: make(map[IntegrationActionType]ActionFuncPerItemMulti),
	}
}

func (m *IntegrationActionManager) AddPerItemMulti(actionType IntegrationActionType, actionFunc ActionFuncPerItemMulti) *IntegrationActionManager {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.actionFuncsPerItemMulti[actionType] = actionFunc

	return m
}

func (m *IntegrationActionManager) GetPerItemMulti(actionType IntegrationActionType) (ActionFuncPerItemMulti, bool) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	actionFunc, ok := m.actionFuncsPerItemMulti[actionType]
	return actionFunc, ok
}

// Run calls the action once per input item and flattens the outputs into a
// single result payload.
func (m *IntegrationActionManager) Run(ctx context.Context, actionType IntegrationActionType, params IntegrationInput) (IntegrationOutput, error) {
	actionFuncPerItemMulti, ok := m.GetPerItemMulti(actionType)
	if !ok {
		return IntegrationOutput{}, fmt.Errorf("%w: %s", ErrActionNotFound, actionType)
	}

	return m.runEach(ctx, params, func(ctx context.Context, item Item, itemIndex int) ([]Item, error) {
		return actionFuncPerItemMulti(ctx, params, item, itemIndex)
	})
}

func (m *IntegrationActionManager) runEach(ctx context.Context, params IntegrationInput, run func(ctx context.Context, item Item, itemIndex int) ([]Item, error)) (IntegrationOutput, error) {
	allItems, err := params.GetAllItems()
	if err != nil {
		return IntegrationOutput{}, err
	}

	outputs := make([]Item, 0)

	for itemIndex, item := range allItems {
		if err := ctx.Err(); err != nil {
			return IntegrationOutput{}, err
		}

		outputItems, err := run(ctx, item, itemIndex)
		if err != nil {
			if !params.ContinueOnFail {
				return IntegrationOutput{}, err
			}

			log.Warn().
				Err(err).
				Str("action_type", string(params.ActionType)).
				Int("item_index", itemIndex).
				Msg("Item failed, continuing")

			outputs = append(outputs, NewErrorItem(err, itemIndex))

			continue
		}

		for _, outputItem := range outputItems {
			if isEmptyItem(outputItem) {
				continue
			}

			outputs = append(outputs, outputItem)
		}
	}

	resultJSON, err := json.Marshal(outputs)
	if err != nil {
		return IntegrationOutput{}, err
	}

	return IntegrationOutput{
		ResultJSONByOutputID: []Payload{
			resultJSON,
		},
	}, nil
}

// NewErrorItem is the item emitted in place of a failed one when
// ContinueOnFail is set.
func NewErrorItem(err error, itemIndex int) map[string]any {
	errorItem := map[string]any{
		"error":      err.Error(),
		"item_index": itemIndex,
	}

	if apiErr, ok := infomaniak.AsAPIRequestError(err); ok {
		errorItem["error"] = apiErr.Detail
		errorItem["status_code"] = apiErr.StatusCode
	}

	return errorItem
}

func isEmptyItem(item Item) bool {
	switch v := item.(type) {
	case nil:
		return true
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}

	return false
}
