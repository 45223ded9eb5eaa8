package infomaniak

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/flowbaker/infomaniak/pkg/utils/params"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
)

// Client issues single-shot requests against the Infomaniak API and unwraps
// the response envelope. It holds no mutable state and is safe for
// concurrent use.
type Client struct {
	config      *ClientConfig
	httpClient  *http.Client
	credentials Credentials
}

// NewClient creates a client bound to one API token
func NewClient(credentials Credentials, options ...ClientOption) (*Client, error) {
	if strings.TrimSpace(credentials.APIToken) == "" {
		return nil, ErrMissingAPIToken
	}

	config := DefaultConfig()

	for _, option := range options {
		option(config)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	return &Client{
		config:      config,
		httpClient:  httpClient,
		credentials: credentials,
	}, nil
}

// Request performs one call and returns the envelope's data, which is nil
// when the API sent none.
func (c *Client) Request(ctx context.Context, method, path string, body, query params.Bag, itemIndex int, opts ...RequestOption) (any, error) {
	envelope, err := c.RequestEnvelope(ctx, method, path, body, query, itemIndex, opts...)
	if err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

func (c *Client) Get(ctx context.Context, path string, query params.Bag, itemIndex int, opts ...RequestOption) (any, error) {
	return c.Request(ctx, http.MethodGet, path, nil, query, itemIndex, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body, query params.Bag, itemIndex int, opts ...RequestOption) (any, error) {
	return c.Request(ctx, http.MethodPost, path, body, query, itemIndex, opts...)
}

func (c *Client) Put(ctx context.Context, path string, body, query params.Bag, itemIndex int, opts ...RequestOption) (any, error) {
	return c.Request(ctx, http.MethodPut, path, body, query, itemIndex, opts...)
}

func (c *Client) Patch(ctx context.Context, path string, body, query params.Bag, itemIndex int, opts ...RequestOption) (any, error) {
	return c.Request(ctx, http.MethodPatch, path, body, query, itemIndex, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, body, query params.Bag, itemIndex int, opts ...RequestOption) (any, error) {
	return c.Request(ctx, http.MethodDelete, path, body, query, itemIndex, opts...)
}

// RequestEnvelope is Request for callers that also need list metadata such as
// page and pages.
func (c *Client) RequestEnvelope(ctx context.Context, method, path string, body, query params.Bag, itemIndex int, opts ...RequestOption) (*Envelope, error) {
	reqConfig := &requestConfig{
		intent: fmt.Sprintf("%s %s", method, path),
	}

	for _, opt := range opts {
		opt(reqConfig)
	}

	requestID := xid.New().String()
	startedAt := time.Now()

	resp, err := c.doRequest(ctx, method, path, body, query)
	if err != nil {
		log.Debug().
			Err(err).
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("item_index", itemIndex).
			Msg("Infomaniak request failed before a response was received")

		c.observe(RequestEvent{Method: method, Path: path, Intent: reqConfig.intent, Duration: time.Since(startedAt), Err: err})

		return nil, err
	}

	envelope, err := c.handleResponse(resp, itemIndex, reqConfig.intent)

	log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status_code", resp.StatusCode).
		Dur("duration", time.Since(startedAt)).
		Msg("Infomaniak request completed")

	c.observe(RequestEvent{
		Method:     method,
		Path:       path,
		Intent:     reqConfig.intent,
		StatusCode: resp.StatusCode,
		Duration:   time.Since(startedAt),
		Err:        err,
	})

	if err != nil {
		return nil, err
	}

	return envelope, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body, query params.Bag) (*http.Response, error) {
	var requestBody io.Reader

	if len(body) > 0 {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		requestBody = bytes.NewReader(bodyBytes)
	}

	url := strings.TrimRight(c.config.BaseURL, "/") + path

	if len(query) > 0 {
		url += "?" + params.Encode(query).Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, url, requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.credentials.APIToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	return c.httpClient.Do(req)
}

func (c *Client) handleResponse(resp *http.Response, itemIndex int, intent string) (*Envelope, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var raw map[string]any

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	if err := decoder.Decode(&raw); err != nil || raw == nil {
		log.Error().
			Int("status_code", resp.StatusCode).
			Int("item_index", itemIndex).
			Msg("Infomaniak API returned a malformed envelope")

		return nil, &APIRequestError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			ItemIndex:  itemIndex,
			Intent:     intent,
			Detail:     detailInvalidResponse,
		}
	}

	envelope := newEnvelope(raw)

	// a 4xx or 5xx status fails even when the body claims success
	if !envelope.IsSuccess() || resp.StatusCode >= http.StatusBadRequest {
		detail := errorDetail(raw)

		log.Error().
			Int("status_code", resp.StatusCode).
			Int("item_index", itemIndex).
			Str("detail", detail).
			Msg("Infomaniak API returned an error envelope")

		return nil, &APIRequestError{
			StatusCode: resp.StatusCode,
			Envelope:   raw,
			Body:       string(body),
			ItemIndex:  itemIndex,
			Intent:     intent,
			Detail:     detail,
		}
	}

	return envelope, nil
}

func (c *Client) observe(event RequestEvent) {
	if c.config.Observer == nil {
		return
	}

	c.config.Observer.ObserveRequest(event)
}
