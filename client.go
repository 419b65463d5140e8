package verity

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the base URL for the Verity API.
	DefaultBaseURL = "https://verity.backworkai.com/api/v1"

	// DefaultTimeout is the per-call HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// Version is the SDK version reported in the User-Agent header.
	Version = "1.0.0"

	// DefaultUserAgent identifies this SDK to the API.
	DefaultUserAgent = "verity-go/" + Version

	// IdempotencyKeyHeader carries the caller-supplied idempotency key on write calls.
	IdempotencyKeyHeader = "X-Idempotency-Key"

	tracerName = "github.com/backworkai/verity-go"
)

// ErrMissingAPIKey is returned by NewClient when no API key is supplied.
var ErrMissingAPIKey = errors.New("verity: API key is required")

// Client is the Verity API client. A Client is safe for concurrent use; create
// one and share it.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	debug      bool
	httpClient *http.Client
	rest       *resty.Client
	logger     *zap.Logger
	tracer     trace.Tracer
	registerer prometheus.Registerer
	metrics    *clientMetrics
}

// ClientOption allows configuration of the Client.
type ClientOption func(*Client)

// NewClient creates a new Verity API client authenticated with apiKey.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		userAgent: DefaultUserAgent,
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if client.tracer == nil {
		client.tracer = otel.GetTracerProvider().Tracer(tracerName)
	}
	client.baseURL = strings.TrimRight(client.baseURL, "/")
	client.metrics = newClientMetrics(client.registerer)
	client.rest = newRestClient(client)

	return client, nil
}

// WithHTTPClient sets a custom HTTP client. A non-zero Timeout replaces
// DefaultTimeout. A client without a timeout is copied and given
// DefaultTimeout; the caller's client is not modified.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient == nil {
			return
		}
		if httpClient.Timeout == 0 {
			bounded := *httpClient
			bounded.Timeout = DefaultTimeout
			httpClient = &bounded
		}
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithUserAgent overrides the User-Agent header sent on every call.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(userAgent); trimmed != "" {
			c.userAgent = trimmed
		}
	}
}

// WithLogger routes request logging to logger. Calls are logged at debug level.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDebug enables resty's request/response dumps on the configured logger.
func WithDebug(debug bool) ClientOption {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider used for client
// spans. The global provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) ClientOption {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithMetrics registers request metrics on reg.
func WithMetrics(reg prometheus.Registerer) ClientOption {
	return func(c *Client) {
		c.registerer = reg
	}
}

// BaseURL returns the base URL every request path is joined to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Health checks API health status.
func (c *Client) Health(ctx context.Context) (*Response[HealthStatus], error) {
	resp, err := c.get(ctx, "/health")
	if err != nil {
		return nil, err
	}
	return processResponse[HealthStatus](resp.StatusCode(), resp.Body())
}
