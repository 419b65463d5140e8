package verity

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// newRestClient builds the shared resty client on top of c.httpClient. Auth,
// user agent and accept headers are fixed here and sent on every call.
func newRestClient(c *Client) *resty.Client {
	rc := resty.NewWithClient(c.httpClient)
	rc.SetLogger(c.logger.Sugar())
	rc.SetDebug(c.debug)
	rc.OnRequestLog(redactRequestLog)
	rc.SetAuthToken(c.apiKey)
	rc.SetHeader("User-Agent", c.userAgent)
	rc.SetHeader("Accept", "application/json")
	return rc
}

// redactRequestLog masks the bearer token in resty's debug dump. The dump
// works on a copy of the headers, so the request itself is untouched.
func redactRequestLog(rl *resty.RequestLog) error {
	if rl.Header.Get("Authorization") != "" {
		rl.Header.Set("Authorization", "Bearer ***")
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) (*resty.Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, nil)
}

func (c *Client) post(ctx context.Context, path string, body any, headers map[string]string) (*resty.Response, error) {
	return c.do(ctx, http.MethodPost, path, body, headers)
}

func (c *Client) patch(ctx context.Context, path string, body any, headers map[string]string) (*resty.Response, error) {
	return c.do(ctx, http.MethodPatch, path, body, headers)
}

func (c *Client) delete(ctx context.Context, path string) (*resty.Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do performs exactly one HTTP call. Transport failures are returned wrapped;
// any HTTP status, success or not, comes back as a response for
// processResponse to interpret.
func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string) (*resty.Response, error) {
	route := path
	if i := strings.IndexByte(route, '?'); i >= 0 {
		route = route[:i]
	}

	ctx, span := c.tracer.Start(ctx, method+" "+route,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", route),
		),
	)
	defer span.End()

	req := c.rest.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}
	for name, value := range headers {
		if strings.TrimSpace(value) != "" {
			req.SetHeader(name, value)
		}
	}

	start := time.Now()
	resp, err := req.Execute(method, c.baseURL+path)
	elapsed := time.Since(start)

	if err != nil {
		c.metrics.observe(method, "error", elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Debug("verity request failed",
			zap.String("method", method),
			zap.String("path", route),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)
		return nil, fmt.Errorf("verity: %s %s: %w", method, route, err)
	}

	status := resp.StatusCode()
	c.metrics.observe(method, strconv.Itoa(status), elapsed)
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if status >= http.StatusBadRequest {
		span.SetStatus(codes.Error, http.StatusText(status))
	}
	c.logger.Debug("verity request",
		zap.String("method", method),
		zap.String("path", route),
		zap.Int("status", status),
		zap.Duration("duration", elapsed),
	)

	return resp, nil
}
