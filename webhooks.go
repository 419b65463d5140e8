package verity

import (
	"context"
	"strconv"
)

func webhookPath(id int) string {
	return "/webhooks/" + strconv.Itoa(id)
}

// ListWebhooks lists the account's webhook endpoints.
func (c *Client) ListWebhooks(ctx context.Context) (*Response[[]WebhookEndpoint], error) {
	resp, err := c.get(ctx, "/webhooks")
	if err != nil {
		return nil, err
	}
	return processResponse[[]WebhookEndpoint](resp.StatusCode(), resp.Body())
}

// CreateWebhookRequest registers a webhook endpoint.
type CreateWebhookRequest struct {
	// URL receiving deliveries. Required.
	URL string

	// Events to subscribe to, e.g. "policy.updated". Required.
	Events []string

	Description string

	IdempotencyKey string
}

// CreateWebhook registers a webhook endpoint. The signing secret is only
// returned by this call.
func (c *Client) CreateWebhook(ctx context.Context, req CreateWebhookRequest) (*Response[WebhookEndpoint], error) {
	if isBlank(req.URL) {
		return nil, missingArgument("url")
	}
	if len(nonBlank(req.Events)) == 0 {
		return nil, missingArgument("events")
	}

	body := requestBody{}
	body.setString("url", req.URL)
	body.setStrings("events", req.Events)
	body.setString("description", req.Description)

	resp, err := c.post(ctx, "/webhooks", body, idempotencyHeaders(req.IdempotencyKey))
	if err != nil {
		return nil, err
	}
	return processResponse[WebhookEndpoint](resp.StatusCode(), resp.Body())
}

// GetWebhook fetches one webhook endpoint.
func (c *Client) GetWebhook(ctx context.Context, id int) (*Response[WebhookEndpoint], error) {
	if id <= 0 {
		return nil, missingArgument("webhook id")
	}

	resp, err := c.get(ctx, webhookPath(id))
	if err != nil {
		return nil, err
	}
	return processResponse[WebhookEndpoint](resp.StatusCode(), resp.Body())
}

// UpdateWebhookRequest holds the fields to change. Only non-empty fields are
// sent, so a request with just Status set toggles the endpoint and leaves
// everything else untouched.
type UpdateWebhookRequest struct {
	URL    string
	Events []string

	// Status is WebhookActive or WebhookDisabled.
	Status string
}

// UpdateWebhook partially updates a webhook endpoint.
func (c *Client) UpdateWebhook(ctx context.Context, id int, req UpdateWebhookRequest) (*Response[WebhookEndpoint], error) {
	if id <= 0 {
		return nil, missingArgument("webhook id")
	}

	body := requestBody{}
	body.setString("url", req.URL)
	body.setStrings("events", req.Events)
	body.setString("status", req.Status)

	resp, err := c.patch(ctx, webhookPath(id), body, nil)
	if err != nil {
		return nil, err
	}
	return processResponse[WebhookEndpoint](resp.StatusCode(), resp.Body())
}

// DeleteWebhook removes a webhook endpoint.
func (c *Client) DeleteWebhook(ctx context.Context, id int) (*Response[WebhookDeletion], error) {
	if id <= 0 {
		return nil, missingArgument("webhook id")
	}

	resp, err := c.delete(ctx, webhookPath(id))
	if err != nil {
		return nil, err
	}
	return processResponse[WebhookDeletion](resp.StatusCode(), resp.Body())
}

// TestWebhookOptions are the optional parameters of TestWebhook.
type TestWebhookOptions struct {
	// Event is the event type to simulate. The API picks one when empty.
	Event string

	IdempotencyKey string
}

// TestWebhook sends a test event to a webhook endpoint and returns the
// delivery record.
func (c *Client) TestWebhook(ctx context.Context, id int, opts *TestWebhookOptions) (*Response[WebhookTestResult], error) {
	if id <= 0 {
		return nil, missingArgument("webhook id")
	}
	if opts == nil {
		opts = &TestWebhookOptions{}
	}

	body := requestBody{}
	body.setString("event", opts.Event)

	resp, err := c.post(ctx, webhookPath(id)+"/test", body, idempotencyHeaders(opts.IdempotencyKey))
	if err != nil {
		return nil, err
	}
	return processResponse[WebhookTestResult](resp.StatusCode(), resp.Body())
}
