package infomaniak

import (
	"net/http"
	"time"
)

const (
	DefaultBaseURL   = "https://api.infomaniak.com"
	DefaultUserAgent = "flowbaker-infomaniak/1.0"
)

// ClientConfig holds the configuration for the Infomaniak client
type ClientConfig struct {
	BaseURL        string
	HTTPClient *http.Client
	Timeout    time.Duration // zero keeps the transport default
	UserAgent  string
	Observer   RequestObserver
}

// DefaultConfig returns the default configuration
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:   DefaultBaseURL,
		UserAgent: DefaultUserAgent,
	}
}

// ClientOption is a function that modifies ClientConfig
type ClientOption func(*ClientConfig)

// WithBaseURL sets the API origin, mostly useful against a test server
func WithBaseURL(baseURL string) ClientOption {
	return func(c *ClientConfig) {
		c.BaseURL = baseURL
	}
}

// WithHTTPClient sets the transport used for every request
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *ClientConfig) {
		c.HTTPClient = client
	}
}

// WithTimeout sets the timeout of the default HTTP client.
// It has no effect when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientConfig) {
		c.Timeout = timeout
	}
}

func WithUserAgent(userAgent string) ClientOption {
	return func(c *ClientConfig) {
		c.UserAgent = userAgent
	}
}

func WithObserver(observer RequestObserver) ClientOption {
	return func(c *ClientConfig) {
		c.Observer = observer
	}
}

// RequestObserver is notified once per completed request.
type RequestObserver interface {
	ObserveRequest(event RequestEvent)
}

type RequestEvent struct {
	Method     string
	Path       string
	Intent     string
	StatusCode int
	Duration   time.Duration
	Err        error
}

type requestConfig struct {
	intent string
}

// RequestOption adjusts a single request
type RequestOption func(*requestConfig)

// WithIntent describes what the caller was trying to do, e.g. "list DNS
// records". It prefixes error summaries.
func WithIntent(intent string) RequestOption {
	return func(c *requestConfig) {
		c.intent = intent
	}
}
