package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/flowbaker/infomaniak/pkg/clients/infomaniak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAction IntegrationActionType = "echo"

func inputWithItems(t *testing.T, payloads map[string]string) IntegrationInput {
	t.Helper()

	payloadByInputID := map[string]Payload{}
	for inputID, raw := range payloads {
		payloadByInputID[inputID] = Payload(raw)
	}

	return IntegrationInput{
		PayloadByInputID: payloadByInputID,
		ActionType:       testAction,
		IntegrationParams: IntegrationParams{
			Settings: map[string]any{},
		},
	}
}

func decodeOutput(t *testing.T, output IntegrationOutput) []any {
	t.Helper()

	require.Len(t, output.ResultJSONByOutputID, 1)

	var items []any
	require.NoError(t, json.Unmarshal(output.ResultJSONByOutputID[0], &items))

	return items
}

func TestActionManager_Run_PassesIndexInInputOrder(t *testing.T) {
	var seen []int

	manager := NewIntegrationActionManager().
		AddPerItemMulti(testAction, func(ctx context.Context, params IntegrationInput, item Item, itemIndex int) ([]Item, error) {
			seen = append(seen, itemIndex)
			return []Item{map[string]any{"index": itemIndex, "item": item}}, nil
		})

	input := inputWithItems(t, map[string]string{
		"input-b": `["c"]`,
		"input-a": `["a","b"]`,
	})

	output, err := manager.Run(context.Background(), testAction, input)
	require.NoError(t, err)

	items := decodeOutput(t, output)
	require.Len(t, items, 3)
	assert.Equal(t, []int{0, 1, 2}, seen)
	assert.Equal(t, "a", items[0].(map[string]any)["item"])
	assert.Equal(t, "c", items[2].(map[string]any)["item"])
}

func TestActionManager_SkipsEmptyOutputs(t *testing.T) {
	manager := NewIntegrationActionManager().
		AddPerItemMulti(testAction, func(ctx context.Context, params IntegrationInput, item Item, itemIndex int) ([]Item, error) {
			switch itemIndex {
			case 0:
				return nil, nil
			case 1:
				return []Item{map[string]any{}}, nil
			case 2:
				return []Item{[]any{}}, nil
			}
			return []Item{map[string]any{"ok": true}}, nil
		})

	output, err := manager.Run(context.Background(), testAction, inputWithItems(t, map[string]string{"in": `[1,2,3,4]`}))
	require.NoError(t, err)

	assert.Equal(t, []any{map[string]any{"ok": true}}, decodeOutput(t, output))
}

func TestActionManager_Run_Flattens(t *testing.T) {
	manager := NewIntegrationActionManager().
		AddPerItemMulti(testAction, func(ctx context.Context, params IntegrationInput, item Item, itemIndex int) ([]Item, error) {
			return []Item{map[string]any{"n": 1}, nil, map[string]any{"n": 2}}, nil
		})

	output, err := manager.Run(context.Background(), testAction, inputWithItems(t, map[string]string{"in": `[{}]`}))
	require.NoError(t, err)

	assert.Len(t, decodeOutput(t, output), 2)
}

func TestActionManager_FailureAbortsByDefault(t *testing.T) {
	boom := errors.New("boom")

	manager := NewIntegrationActionManager().
		AddPerItemMulti(testAction, func(ctx context.Context, params IntegrationInput, item Item, itemIndex int) ([]Item, error) {
			return nil, boom
		})

	_, err := manager.Run(context.Background(), testAction, inputWithItems(t, map[string]string{"in": `[{}]`}))
	assert.ErrorIs(t, err, boom)
}

func TestActionManager_ContinueOnFail(t *testing.T) {
	manager := NewIntegrationActionManager().
		AddPerItemMulti(testAction, func(ctx context.Context, params IntegrationInput, item Item, itemIndex int) ([]Item, error) {
			switch itemIndex {
			case 0:
				return nil, &infomaniak.APIRequestError{StatusCode: 404, Detail: "Zone not found", ItemIndex: itemIndex}
			case 1:
				return nil, errors.New("Missing required field: zone")
			}
			return []Item{map[string]any{"ok": true}}, nil
		})

	input := inputWithItems(t, map[string]string{"in": `[{},{},{}]`})
	input.ContinueOnFail = true

	output, err := manager.Run(context.Background(), testAction, input)
	require.NoError(t, err)

	items := decodeOutput(t, output)
	require.Len(t, items, 3)

	assert.Equal(t, map[string]any{"error": "Zone not found", "item_index": float64(0), "status_code": float64(404)}, items[0])
	assert.Equal(t, map[string]any{"error": "Missing required field: zone", "item_index": float64(1)}, items[1])
	assert.Equal(t, map[string]any{"ok": true}, items[2])
}

func TestActionManager_UnknownAction(t *testing.T) {
	manager := NewIntegrationActionManager()

	_, err := manager.Run(context.Background(), "missing", IntegrationInput{})
	assert.ErrorIs(t, err, ErrActionNotFound)

	_, ok := manager.GetPerItemMulti("missing")
	assert.False(t, ok)
}

func TestActionManager_StopsOnCancelledContext(t *testing.T) {
	calls := 0

	manager := NewIntegrationActionManager().
		AddPerItemMulti(testAction, func(ctx context.Context, params IntegrationInput, item Item, itemIndex int) ([]Item, error) {
			calls++
			return []Item{item}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := manager.Run(ctx, testAction, inputWithItems(t, map[string]string{"in": `[1]`}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}
