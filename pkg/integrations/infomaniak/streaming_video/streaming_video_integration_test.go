package streamingvideointegration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/flowbaker/infomaniak/internal/managers"
	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/expressions"
	"github.com/flowbaker/infomaniak/pkg/integrations/infomaniak/common"
	"github.com/flowbaker/infomaniak/pkg/utils/validation"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoints(t *testing.T) {
	require.NoError(t, common.CheckEndpoints(Endpoints))
	assert.Len(t, StreamingVideoSchema.Actions, len(Endpoints))

	for _, endpoint := range Endpoints {
		assert.Equal(t, "account_id", endpoint.PathParams()[0], endpoint.ActionType)
	}
}

func TestStatisticFields(t *testing.T) {
	keys := func(endpoint common.Endpoint) []string {
		out := []string{}
		for _, f := range endpoint.Fields {
			out = append(out, f.Key)
		}
		return out
	}

	assert.Equal(t, []string{"from", "to", "per"}, keys(statistic("get_x", "Get X", accountPath+"/statistics/x", true)))
	assert.Equal(t, []string{"from", "to"}, keys(statistic("get_y", "Get Y", accountPath+"/statistics/y", false)))

	// building a bucketed statistic must not grow the shared period fields
	assert.Len(t, periodFields, 2)
}

func TestStreamingVideoIntegration_ChannelViewers(t *testing.T) {
	var query url.Values

	router := chi.NewRouter()
	router.Get("/1/videos/{account_id}/channels/{channel_id}/statistics/viewers/histogram", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		_, _ = w.Write([]byte(`{"result":"success","data":[{"date":"2026-10-01","viewers":12},{"date":"2026-10-02","viewers":30}]}`))
	})

	server := httptest.NewServer(router)
	defer server.Close()

	creator := NewStreamingVideoIntegrationCreator(domain.IntegrationDeps{
		ParameterBinder: expressions.NewPathBinder(expressions.DefaultPathBinderOptions()),
		ExecutorCredentialManager: managers.NewExecutorCredentialManager(map[string]managers.CredentialEntry{
			"video": {Payload: map[string]any{"api_token": "token"}},
		}),
		APIBaseURL: server.URL,
	})

	integration, err := creator.CreateIntegration(context.Background(), domain.CreateIntegrationParams{CredentialID: "video"})
	require.NoError(t, err)

	settings := map[string]any{
		"account_id": 1,
		"channel_id": 2,
		"from":       "2026-10-01",
		"to":         "2026-10-02",
		"per":        "day",
	}

	output, err := integration.Execute(context.Background(), domain.IntegrationInput{
		ActionType:        StreamingVideoActionType_GetChannelViewersHistogram,
		PayloadByInputID:  map[string]domain.Payload{"input": domain.Payload(`[{}]`)},
		IntegrationParams: domain.IntegrationParams{Settings: settings},
	})
	require.NoError(t, err)

	assert.Equal(t, url.Values{"from": {"2026-10-01"}, "to": {"2026-10-02"}, "per": {"day"}}, query)
	assert.JSONEq(t, `[{"date":"2026-10-01","viewers":12},{"date":"2026-10-02","viewers":30}]`, string(output.ResultJSONByOutputID[0]))

	delete(settings, "from")

	_, err = integration.Execute(context.Background(), domain.IntegrationInput{
		ActionType:        StreamingVideoActionType_GetChannelViewersHistogram,
		PayloadByInputID:  map[string]domain.Payload{"input": domain.Payload(`[{}]`)},
		IntegrationParams: domain.IntegrationParams{Settings: settings},
	})

	var validationErr *validation.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "from", validationErr.Field)
}
