// Package webhook is a minimal outbound HTTP helper: one synchronous POST
// per call, reduced to a single string via best-effort response-field
// extraction. The package-level functions mirror the historical flattened
// surface where success and failure are both plain strings; hosts that need
// typed failures use Client.Invoke or the invoker package directly.
package webhook

import (
	"context"

	"github.com/goliatone/go-webhook/core"
	"github.com/goliatone/go-webhook/invoker"
)

// Client binds a configured invoker behind the string-only surface.
type Client struct {
	invoker *invoker.Invoker
	action  string
}

func NewClient(cfg core.Config, options ...invoker.Option) (*Client, error) {
	inv, err := invoker.New(cfg, options...)
	if err != nil {
		return nil, err
	}
	return &Client{invoker: inv, action: inv.Config().ActionName}, nil
}

// Execute performs one invocation and always returns a string. Failures are
// flattened to "Error executing <action> action: <message>"; callers
// distinguish them from payloads only by content. No error ever escapes.
func (c *Client) Execute(ctx context.Context, req core.InvocationRequest) string {
	if c == nil || c.invoker == nil {
		return core.FlattenError("webhook", core.InternalError("webhook: client is not configured"))
	}
	out, err := c.invoker.Invoke(ctx, req)
	if err != nil {
		return core.FlattenError(c.action, err)
	}
	return out
}

// Invoke keeps the typed failure channel available for hosts and tests.
func (c *Client) Invoke(ctx context.Context, req core.InvocationRequest) (string, error) {
	if c == nil || c.invoker == nil {
		return "", core.InternalError("webhook: client is not configured")
	}
	return c.invoker.Invoke(ctx, req)
}

// Execute posts payload to endpoint with an optional bearer credential and
// default settings (application/json, 10 minute timeout).
func Execute(credential string, endpoint string, payload string) string {
	return execute(core.InvocationRequest{
		Credential: credential,
		TargetURL:  endpoint,
		Payload:    payload,
	})
}

// ExecuteWithContentType overrides the request content type.
func ExecuteWithContentType(credential string, endpoint string, payload string, contentType string) string {
	return execute(core.InvocationRequest{
		Credential:  credential,
		TargetURL:   endpoint,
		Payload:     payload,
		ContentType: contentType,
	})
}

// ExecuteWithSession forwards a session identifier so the receiving service
// can correlate invocations into one conversation.
func ExecuteWithSession(credential string, endpoint string, payload string, sessionID string) string {
	return execute(core.InvocationRequest{
		Credential: credential,
		TargetURL:  endpoint,
		Payload:    payload,
		SessionID:  sessionID,
	})
}

// ExecuteWithTimeout bounds the exchange to timeoutMinutes for long-running
// downstream flows. Values above 60 minutes are allowed but discouraged.
func ExecuteWithTimeout(credential string, endpoint string, payload string, timeoutMinutes int) string {
	return execute(core.InvocationRequest{
		Credential:     credential,
		TargetURL:      endpoint,
		Payload:        payload,
		TimeoutMinutes: timeoutMinutes,
	})
}

func execute(req core.InvocationRequest) string {
	client, err := NewClient(core.WebhookProfile())
	if err != nil {
		return core.FlattenError("webhook", err)
	}
	return client.Execute(context.Background(), req)
}
