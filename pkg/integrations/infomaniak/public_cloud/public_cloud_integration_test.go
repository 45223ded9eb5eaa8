package publiccloudintegration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flowbaker/infomaniak/internal/managers"
	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/expressions"
	"github.com/flowbaker/infomaniak/pkg/integrations/infomaniak/common"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPublicCloudIntegration(t *testing.T, handler http.Handler) domain.IntegrationExecutor {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	creator := NewPublicCloudIntegrationCreator(domain.IntegrationDeps{
		ParameterBinder: expressions.NewPathBinder(expressions.DefaultPathBinderOptions()),
		ExecutorCredentialManager: managers.NewExecutorCredentialManager(map[string]managers.CredentialEntry{
			"cloud": {Payload: map[string]any{"api_token": "token"}},
		}),
		APIBaseURL: server.URL,
	})

	integration, err := creator.CreateIntegration(context.Background(), domain.CreateIntegrationParams{CredentialID: "cloud"})
	require.NoError(t, err)

	return integration
}

func TestEndpoints(t *testing.T) {
	require.NoError(t, common.CheckEndpoints(Endpoints))
	assert.Equal(t, domain.IntegrationType_InfomaniakPublicCloud, PublicCloudSchema.ID)
	assert.Len(t, PublicCloudSchema.Actions, len(Endpoints))
}

func TestPublicCloudIntegration_CreateDatabaseMergesData(t *testing.T) {
	var body map[string]any

	router := chi.NewRouter()
	router.Post("/1/public_clouds/{public_cloud_id}/projects/{project_id}/databases", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))

		assert.Equal(t, "11", chi.URLParam(r, "public_cloud_id"))
		assert.Equal(t, "22", chi.URLParam(r, "project_id"))

		_, _ = w.Write([]byte(`{"result":"success","data":{"id":"db-1","status":"creating"}}`))
	})

	integration := newPublicCloudIntegration(t, router)

	output, err := integration.Execute(context.Background(), domain.IntegrationInput{
		ActionType:       PublicCloudActionType_CreateDatabase,
		PayloadByInputID: map[string]domain.Payload{"input": domain.Payload(`[{"size":20}]`)},
		IntegrationParams: domain.IntegrationParams{Settings: map[string]any{
			"public_cloud_id": 11,
			"project_id":      22,
			"name":            "orders",
			"type":            "mysql",
			"storage_size":    "{{ item.size }}",
			"database_data":   `{"version":"8.0","storage_size":5}`,
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"name":         "orders",
		"type":         "mysql",
		"version":      "8.0",
		"storage_size": float64(20),
	}, body)
	assert.JSONEq(t, `[{"id":"db-1","status":"creating"}]`, string(output.ResultJSONByOutputID[0]))
}

func TestPublicCloudIntegration_AvailabilityZonesFilterByRegion(t *testing.T) {
	var region string

	router := chi.NewRouter()
	router.Get("/1/public_clouds/{public_cloud_id}/kubernetes/availability-zones", func(w http.ResponseWriter, r *http.Request) {
		region = r.URL.Query().Get("region")
		_, _ = w.Write([]byte(`{"result":"success","data":[{"name":"dc3-a-1"},{"name":"dc3-a-2"}]}`))
	})

	integration := newPublicCloudIntegration(t, router)

	output, err := integration.Execute(context.Background(), domain.IntegrationInput{
		ActionType:       PublicCloudActionType_ListKubernetesZones,
		PayloadByInputID: map[string]domain.Payload{"input": domain.Payload(`[{}]`)},
		IntegrationParams: domain.IntegrationParams{Settings: map[string]any{
			"public_cloud_id": 11,
			"region":          "dc3-a",
			"return_all":      true,
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, "dc3-a", region)
	assert.JSONEq(t, `[{"name":"dc3-a-1"},{"name":"dc3-a-2"}]`, string(output.ResultJSONByOutputID[0]))
}

func TestPublicCloudIntegration_MissingProject(t *testing.T) {
	integration := newPublicCloudIntegration(t, chi.NewRouter())

	_, err := integration.Execute(context.Background(), domain.IntegrationInput{
		ActionType:        PublicCloudActionType_DeleteProject,
		PayloadByInputID:  map[string]domain.Payload{"input": domain.Payload(`[{}]`)},
		IntegrationParams: domain.IntegrationParams{Settings: map[string]any{"public_cloud_id": 11}},
	})
	assert.ErrorContains(t, err, "project_id")
}
