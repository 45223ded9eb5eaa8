package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flowbaker/infomaniak/internal/config"
	"github.com/flowbaker/infomaniak/internal/executor"
	"github.com/flowbaker/infomaniak/internal/initialization"

	"github.com/go-chi/chi/v5"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeError(w http.ResponseWriter, status int, code, description string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"result": "error",
		"error":  map[string]any{"code": code, "description": description},
	})
}

func newFakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer good" {
				writeError(w, http.StatusUnauthorized, "not_authorized", "Invalid token")
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	router.Get("/1/profile", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"success","data":{"id":7,"login":"jane"}}`))
	})

	router.Get("/1/accounts", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"success","data":[{"id":1,"name":"Acme"},{"id":2,"name":"Globex"}],"page":1,"pages":3,"total":6}`))
	})

	router.Get("/1/accounts/{account_id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "account_id") != "1" {
			writeError(w, http.StatusNotFound, "not_found", "Account not found")
			return
		}
		_, _ = w.Write([]byte(`{"result":"success","data":{"id":1,"name":"Acme"}}`))
	})

	router.Get("/1/tasks/{task_id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"success","data":{"id":` + chi.URLParam(r, "task_id") + `,"status":"done"}}`))
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	api := newFakeAPI(t)

	deps, err := initialization.BuildExecutorDependencies(initialization.ExecutorDependencyConfig{
		Config: &config.Config{
			APIBaseURL: api.URL,
			Credentials: map[string]config.CredentialConfig{
				"default": {Name: "Default", APIToken: "good"},
				"revoked": {Name: "Revoked", APIToken: "bad"},
			},
		},
	})
	require.NoError(t, err)

	return NewHTTPServer(HTTPServerDependencies{
		ExecutorController: deps.ExecutorController,
		MetricsHandler:     deps.Metrics.Handler(),
		DisableRequestLog:  true,
	})
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	} else {
		decoded = map[string]any{"raw": string(raw)}
	}

	return resp.StatusCode, decoded
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "infomaniak-executor", body["service"])
}

func TestIntegrations(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/integrations", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var integrations []struct {
		ID      string `json:"id"`
		Actions []any  `json:"actions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&integrations))

	ids := []string{}
	for _, integration := range integrations {
		ids = append(ids, integration.ID)
		assert.NotEmpty(t, integration.Actions, integration.ID)
	}

	assert.Equal(t, []string{
		"infomaniak_core",
		"infomaniak_dns",
		"infomaniak_email",
		"infomaniak_public_cloud",
		"infomaniak_streaming_video",
	}, ids)
}

func TestExecutions(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		check      func(t *testing.T, body map[string]any)
	}{
		{
			name:       "success",
			body:       `{"integration_type":"infomaniak_core","action_type":"get_account","credential_id":"default","settings":{"account_id":"{{ item.account }}"},"items":[{"account":1}]}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.NotEmpty(t, body["execution_id"])
				assert.Equal(t, []any{map[string]any{"id": float64(1), "name": "Acme"}}, body["items"])
			},
		},
		{
			name:       "api error carries status and item index",
			body:       `{"integration_type":"infomaniak_core","action_type":"get_account","credential_id":"default","settings":{"account_id":404}}`,
			wantStatus: http.StatusBadGateway,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, float64(404), body["status_code"])
				assert.Equal(t, float64(0), body["item_index"])
				assert.Contains(t, body["error"], "Account not found")
			},
		},
		{
			name:       "continue on fail turns errors into items",
			body:       `{"integration_type":"infomaniak_core","action_type":"get_account","credential_id":"default","continue_on_fail":true,"settings":{"account_id":"{{ item.account }}"},"items":[{"account":404},{"account":1}]}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				items, ok := body["items"].([]any)
				require.True(t, ok)
				require.Len(t, items, 2)

				failed := items[0].(map[string]any)
				assert.Equal(t, float64(404), failed["status_code"])
				assert.Equal(t, float64(0), failed["item_index"])
				assert.Equal(t, map[string]any{"id": float64(1), "name": "Acme"}, items[1])
			},
		},
		{
			name:       "missing path param",
			body:       `{"integration_type":"infomaniak_core","action_type":"get_account","credential_id":"default","settings":{}}`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "account_id", body["field"])
			},
		},
		{
			name:       "unknown action",
			body:       `{"integration_type":"infomaniak_core","action_type":"launch_rocket","credential_id":"default"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown credential",
			body:       `{"integration_type":"infomaniak_core","action_type":"get_profile","credential_id":"nobody"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing action type",
			body:       `{"integration_type":"infomaniak_core"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, app, http.MethodPost, "/executions", tt.body)

			assert.Equal(t, tt.wantStatus, status, body)
			if tt.check != nil {
				tt.check(t, body)
			}
		})
	}
}

func TestExecuteKeepsLargeIDs(t *testing.T) {
	api := newFakeAPI(t)

	deps, err := initialization.BuildExecutorDependencies(initialization.ExecutorDependencyConfig{
		Config: &config.Config{
			APIBaseURL:  api.URL,
			Credentials: map[string]config.CredentialConfig{"default": {APIToken: "good"}},
		},
	})
	require.NoError(t, err)

	items, err := executor.DecodeItems(json.RawMessage(`[{"id":9007199254740993}]`))
	require.NoError(t, err)

	result, err := deps.ExecutorService.Execute(context.Background(), executor.ExecuteParams{
		IntegrationType: "infomaniak_core",
		ActionType:      "get_task",
		CredentialID:    "default",
		Settings:        map[string]any{"task_id": "{{ item.id }}"},
		Items:           items,
	})
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, json.Number("9007199254740993"), result.Items[0].(map[string]any)["id"])

	encoded, err := json.Marshal(result.Items)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":9007199254740993,"status":"done"}]`, string(encoded))
}

func TestConnectionTest(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, http.MethodPost, "/connection-test", `{"integration_type":"infomaniak_dns","credential_id":"default"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	_, body = do(t, app, http.MethodPost, "/connection-test", `{"integration_type":"infomaniak_dns","credential_id":"revoked"}`)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "Invalid token")

	_, body = do(t, app, http.MethodPost, "/connection-test", `{"integration_type":"infomaniak_dns","credential_id":"revoked","payload":{"api_token":"good"}}`)
	assert.Equal(t, true, body["success"])
}

func TestPeekData(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, http.MethodPost, "/peek-data", `{"integration_type":"infomaniak_core","credential_id":"default","peekable_type":"accounts","limit":2}`)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["has_more"])
	assert.Equal(t, "2", body["cursor"])
	assert.Equal(t, []any{
		map[string]any{"key": "1", "value": "1", "content": "Acme"},
		map[string]any{"key": "2", "value": "2", "content": "Globex"},
	}, body["result"])

	_, body = do(t, app, http.MethodPost, "/peek-data", `{"integration_type":"infomaniak_dns","credential_id":"default","peekable_type":"accounts"}`)
	assert.Equal(t, false, body["success"])
}

func TestMetrics(t *testing.T) {
	app := newTestApp(t)

	_, _ = do(t, app, http.MethodPost, "/connection-test", `{"integration_type":"infomaniak_core","credential_id":"default"}`)

	status, body := do(t, app, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, status)

	assert.Contains(t, body["raw"], `infomaniak_api_requests_total{intent="verify API token",method="GET",outcome="success"} 1`)
}

func TestAPIKeyProtectsExecutorRoutes(t *testing.T) {
	api := newFakeAPI(t)

	deps, err := initialization.BuildExecutorDependencies(initialization.ExecutorDependencyConfig{
		Config: &config.Config{
			APIBaseURL:  api.URL,
			Credentials: map[string]config.CredentialConfig{"default": {APIToken: "good"}},
		},
	})
	require.NoError(t, err)

	app := NewHTTPServer(HTTPServerDependencies{
		ExecutorController: deps.ExecutorController,
		APIKey:             "executor-key",
		DisableRequestLog:  true,
	})

	status, _ := do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, app, http.MethodGet, "/integrations", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	req := httptest.NewRequest(http.MethodGet, "/integrations", nil)
	req.Header.Set("Authorization", "Bearer executor-key")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
