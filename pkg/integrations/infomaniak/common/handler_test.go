package common

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/flowbaker/infomaniak/pkg/clients/infomaniak"
	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/expressions"
	"github.com/flowbaker/infomaniak/pkg/utils/params"
	"github.com/flowbaker/infomaniak/pkg/utils/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestCall struct {
	method string
	path   string
	body   params.Bag
	query  params.Bag
	index  int
}

type fakeRequester struct {
	calls    []requestCall
	response any
	err      error
}

func (f *fakeRequester) Request(ctx context.Context, method, path string, body, query params.Bag, itemIndex int, opts ...infomaniak.RequestOption) (any, error) {
	f.calls = append(f.calls, requestCall{method: method, path: path, body: body, query: query, index: itemIndex})
	return f.response, f.err
}

func newTestHandler(response any) (*Handler, *fakeRequester) {
	requester := &fakeRequester{response: response}
	return NewHandler(requester, expressions.NewPathBinder(expressions.DefaultPathBinderOptions())), requester
}

func input(settings map[string]any) domain.IntegrationInput {
	return domain.IntegrationInput{
		IntegrationParams: domain.IntegrationParams{Settings: settings},
	}
}

var createRecord = Endpoint{
	ActionType: "create_record",
	Name:       "Create Record",
	Method:     "POST",
	Path:       "/2/zones/{zone}/records",
	Fields: []Field{
		{Key: "type", Kind: FieldKind_String, Required: true},
		{Key: "source", Kind: FieldKind_String},
		{Key: "target", Kind: FieldKind_String, Required: true},
		{Key: "ttl", Kind: FieldKind_Integer},
		{Key: "with", Kind: FieldKind_CSV, InQuery: true},
	},
}

func TestHandler_BuildsPathAndBody(t *testing.T) {
	handler, requester := newTestHandler(map[string]any{"id": json.Number("7")})

	items, err := handler.Run(context.Background(), createRecord, input(map[string]any{
		"zone":   "{{ item.zone }}",
		"type":   "A",
		"source": "",
		"target": "{{ item.ip }}",
		"ttl":    "3600",
		"with":   "records, dnssec",
	}), map[string]any{"zone": "example.ch", "ip": "192.0.2.1"}, 3)
	require.NoError(t, err)

	require.Len(t, requester.calls, 1)
	call := requester.calls[0]

	assert.Equal(t, "POST", call.method)
	assert.Equal(t, "/2/zones/example.ch/records", call.path)
	assert.Equal(t, 3, call.index)
	assert.Equal(t, params.Bag{"type": "A", "target": "192.0.2.1", "ttl": int64(3600)}, call.body)
	assert.Equal(t, params.Bag{"with": []any{"records", "dnssec"}}, call.query)

	assert.Equal(t, []domain.Item{map[string]any{"id": json.Number("7")}}, items)
}

func TestHandler_PathValuesAreEscaped(t *testing.T) {
	handler, requester := newTestHandler(nil)

	endpoint := Endpoint{ActionType: "get_mailbox", Name: "Get Mailbox", Method: "GET", Path: "/1/mail_hostings/{mail_hosting_id}/mailboxes/{mailbox_name}"}

	_, err := handler.Run(context.Background(), endpoint, input(map[string]any{
		"mail_hosting_id": 12,
		"mailbox_name":    "john doe/1",
	}), nil, 0)
	require.NoError(t, err)

	assert.Equal(t, "/1/mail_hostings/12/mailboxes/john%20doe%2F1", requester.calls[0].path)
}

func TestHandler_MissingPathParam(t *testing.T) {
	handler, requester := newTestHandler(nil)

	_, err := handler.Run(context.Background(), createRecord, input(map[string]any{
		"type":   "A",
		"target": "192.0.2.1",
	}), nil, 0)

	var validationErr *validation.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "zone", validationErr.Field)
	assert.Empty(t, requester.calls)
}

func TestHandler_FieldValidation(t *testing.T) {
	tests := []struct {
		name     string
		endpoint Endpoint
		settings map[string]any
		wantErr  string
	}{
		{
			name:     "missing required",
			endpoint: createRecord,
			settings: map[string]any{"zone": "example.ch", "type": "A"},
			wantErr:  "Missing required field: target",
		},
		{
			name:     "invalid integer",
			endpoint: createRecord,
			settings: map[string]any{"zone": "example.ch", "type": "A", "target": "x", "ttl": "soon"},
			wantErr:  "Invalid ttl: must be an integer",
		},
		{
			name: "invalid email",
			endpoint: Endpoint{Method: "POST", Path: "/1/accounts/{account_id}/invitations", Fields: []Field{
				{Key: "email", Kind: FieldKind_Email, Required: true},
			}},
			settings: map[string]any{"account_id": "1", "email": "not-an-email"},
			wantErr:  "Invalid email",
		},
		{
			name: "invalid id list",
			endpoint: Endpoint{Method: "POST", Path: "/1/accounts/{account_id}/teams/{team_id}/users", Fields: []Field{
				{Key: "user_ids", Kind: FieldKind_IDList, Required: true},
			}},
			settings: map[string]any{"account_id": "1", "team_id": "2", "user_ids": "1, x"},
			wantErr:  "Invalid ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, requester := newTestHandler(nil)

			_, err := handler.Run(context.Background(), tt.endpoint, input(tt.settings), nil, 0)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, requester.calls)
		})
	}
}

func TestHandler_NormalizesKinds(t *testing.T) {
	endpoint := Endpoint{
		Method: "POST",
		Path:   "/1/accounts/{account_id}/teams/{team_id}/users",
		Fields: []Field{
			{Key: "user_ids", Kind: FieldKind_IDList},
			{Key: "role_type", Kind: FieldKind_RoleType},
			{Key: "locale", Kind: FieldKind_Locale},
			{Key: "notify", Kind: FieldKind_Boolean, Default: true},
			{Key: "metadata", Kind: FieldKind_JSON},
		},
	}

	handler, requester := newTestHandler(nil)

	_, err := handler.Run(context.Background(), endpoint, input(map[string]any{
		"account_id": "1",
		"team_id":    "2",
		"user_ids":   "3, 4",
		"role_type":  2,
		"locale":     "fr_CH",
		"metadata":   `{"source": "workflow"}`,
	}), nil, 0)
	require.NoError(t, err)

	assert.Equal(t, params.Bag{
		"user_ids":  []int64{3, 4},
		"role_type": 2,
		"locale":    "fr_CH",
		"notify":    true,
		"metadata":  map[string]any{"source": "workflow"},
	}, requester.calls[0].body)
}

func TestHandler_DataKeyMergesUnderFields(t *testing.T) {
	endpoint := Endpoint{
		Method:  "PATCH",
		Path:    "/2/profile",
		DataKey: "update_fields",
		Fields:  []Field{{Key: "firstname", Kind: FieldKind_String}},
	}

	handler, requester := newTestHandler(map[string]any{"id": json.Number("1")})

	_, err := handler.Run(context.Background(), endpoint, input(map[string]any{
		"firstname":     "Jane",
		"update_fields": `{"firstname": "ignored", "lastName": "Doe"}`,
	}), nil, 0)
	require.NoError(t, err)

	assert.Equal(t, params.Bag{"firstname": "Jane", "last_name": "Doe"}, requester.calls[0].body)
}

func TestHandler_DeleteSendsQueryUnlessBodyOnDelete(t *testing.T) {
	endpoint := Endpoint{
		Method: "DELETE",
		Path:   "/1/accounts/{account_id}/teams/{team_id}/users",
		Fields: []Field{{Key: "user_ids", Kind: FieldKind_IDList}},
		Ack:    "Users removed from team",
	}

	handler, requester := newTestHandler(nil)

	settings := map[string]any{"account_id": "1", "team_id": "2", "user_ids": "3"}

	_, err := handler.Run(context.Background(), endpoint, input(settings), nil, 0)
	require.NoError(t, err)
	assert.Nil(t, requester.calls[0].body)
	assert.Equal(t, params.Bag{"user_ids": []int64{3}}, requester.calls[0].query)

	endpoint.BodyOnDelete = true

	_, err = handler.Run(context.Background(), endpoint, input(settings), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, params.Bag{"user_ids": []int64{3}}, requester.calls[1].body)
	assert.Empty(t, requester.calls[1].query)
}

func TestHandler_OutputShapes(t *testing.T) {
	deleteTeam := Endpoint{Method: "DELETE", Path: "/1/accounts/{account_id}/teams/{team_id}", Ack: "Team deleted"}
	getTask := Endpoint{Method: "GET", Path: "/1/tasks/{task_id}"}

	handler, _ := newTestHandler(nil)
	settings := map[string]any{"account_id": "1", "team_id": "2"}

	items, err := handler.Run(context.Background(), deleteTeam, input(settings), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{map[string]any{"success": true, "message": "Team deleted", "account_id": "1", "team_id": "2"}}, items)

	handler, _ = newTestHandler(true)
	items, err = handler.Run(context.Background(), deleteTeam, input(settings), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{map[string]any{"success": true, "message": "Team deleted", "account_id": "1", "team_id": "2", "result": true}}, items)

	handler, _ = newTestHandler(nil)
	items, err = handler.Run(context.Background(), getTask, input(map[string]any{"task_id": "9"}), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, items)

	handler, _ = newTestHandler("done")
	items, err = handler.Run(context.Background(), getTask, input(map[string]any{"task_id": "9"}), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{map[string]any{"result": "done"}}, items)
}

func TestHandler_Pagination(t *testing.T) {
	endpoint := Endpoint{Method: "GET", Path: "/1/tasks", Paginate: true}
	response := []any{
		map[string]any{"id": json.Number("1")},
		map[string]any{"id": json.Number("2")},
		map[string]any{"id": json.Number("3")},
	}

	tests := []struct {
		name     string
		settings map[string]any
		want     int
	}{
		{name: "default limit", settings: map[string]any{}, want: 3},
		{name: "limited", settings: map[string]any{"limit": 2}, want: 2},
		{name: "limit as text", settings: map[string]any{"limit": "1"}, want: 1},
		{name: "return all ignores limit", settings: map[string]any{"limit": 1, "return_all": true}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, requester := newTestHandler(response)

			items, err := handler.Run(context.Background(), endpoint, input(tt.settings), nil, 0)
			require.NoError(t, err)
			assert.Len(t, items, tt.want)
			assert.Empty(t, requester.calls[0].query)
		})
	}
}

func TestHandler_CamelCaseOutput(t *testing.T) {
	endpoint := Endpoint{Method: "GET", Path: "/2/profile"}

	handler, _ := newTestHandler(map[string]any{
		"first_name": "Jane",
		"emails":     []any{map[string]any{"email_type": "primary"}},
	})

	items, err := handler.Run(context.Background(), endpoint, input(map[string]any{"camel_case_output": true}), nil, 0)
	require.NoError(t, err)

	assert.Equal(t, []domain.Item{map[string]any{
		"firstName": "Jane",
		"emails":    []any{map[string]any{"emailType": "primary"}},
	}}, items)
}

func TestHandler_PropagatesAPIErrors(t *testing.T) {
	handler, requester := newTestHandler(nil)
	requester.err = &infomaniak.APIRequestError{StatusCode: 404, Detail: "Zone not found"}

	_, err := handler.Run(context.Background(), Endpoint{Method: "GET", Path: "/2/zones/{zone}"}, input(map[string]any{"zone": "example.ch"}), nil, 0)

	var apiErr *infomaniak.APIRequestError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Zone not found", apiErr.Detail)
}

func TestHandler_ActionFuncRunsThroughManager(t *testing.T) {
	handler, requester := newTestHandler(map[string]any{"id": json.Number("1")})

	endpoint := Endpoint{ActionType: "get_zone", Method: "GET", Path: "/2/zones/{zone}"}
	manager := domain.NewIntegrationActionManager().AddPerItemMulti(endpoint.ActionType, handler.ActionFunc(endpoint))

	output, err := manager.Run(context.Background(), endpoint.ActionType, domain.IntegrationInput{
		PayloadByInputID: map[string]domain.Payload{
			"input": domain.Payload(`[{"zone": "a.ch"}, {"zone": "b.ch"}]`),
		},
		IntegrationParams: domain.IntegrationParams{Settings: map[string]any{"zone": "{{ item.zone }}"}},
	})
	require.NoError(t, err)

	require.Len(t, requester.calls, 2)
	assert.Equal(t, "/2/zones/a.ch", requester.calls[0].path)
	assert.Equal(t, "/2/zones/b.ch", requester.calls[1].path)
	assert.Equal(t, 1, requester.calls[1].index)
	assert.Len(t, output.ResultJSONByOutputID, 1)
}
