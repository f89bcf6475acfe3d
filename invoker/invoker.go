// Package invoker performs one validated, synchronous HTTP POST per call
// and reduces the response into a single string via priority-ordered field
// extraction. Each invocation is independent; an Invoker is safe for
// concurrent use.
package invoker

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-webhook/adapters/gologger"
	"github.com/goliatone/go-webhook/core"
	"github.com/goliatone/go-webhook/jsonscan"
)

// The dial timeout is fixed regardless of the overall request timeout; only
// the full exchange is caller-configurable.
const connectTimeout = 60 * time.Second

type Invoker struct {
	config  core.Config
	client  core.HTTPDoer
	logger  core.Logger
	metrics core.MetricsRecorder
}

type Option func(*Invoker)

func WithHTTPClient(client core.HTTPDoer) Option {
	return func(inv *Invoker) {
		inv.client = client
	}
}

func WithLogger(logger core.Logger) Option {
	return func(inv *Invoker) {
		inv.logger = logger
	}
}

func WithLoggerProvider(provider core.LoggerProvider) Option {
	return func(inv *Invoker) {
		if provider != nil {
			inv.logger = provider.GetLogger("webhook")
		}
	}
}

func WithMetricsRecorder(recorder core.MetricsRecorder) Option {
	return func(inv *Invoker) {
		inv.metrics = recorder
	}
}

func New(cfg core.Config, options ...Option) (*Invoker, error) {
	cfg = cfg.Normalized()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	inv := &Invoker{config: cfg}
	for _, option := range options {
		if option == nil {
			continue
		}
		option(inv)
	}
	if inv.client == nil {
		inv.client = defaultClient()
	}
	if inv.logger == nil {
		_, inv.logger = gologger.Resolve(cfg.ActionName, nil, nil)
	}
	if inv.metrics == nil {
		inv.metrics = core.NopMetricsRecorder{}
	}
	return inv, nil
}

// Config returns the effective configuration the invoker runs with.
func (inv *Invoker) Config() core.Config {
	return inv.config
}

// Invoke validates the request, posts the (possibly auto-wrapped) payload,
// and returns the extracted response string. Every failure is a typed
// *goerrors.Error tagged with a core.Error* kind; no network call is
// attempted when validation fails.
func (inv *Invoker) Invoke(ctx context.Context, req core.InvocationRequest) (string, error) {
	if inv == nil || inv.client == nil {
		return "", core.InternalError("invoker: http client is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	invocationID := uuid.NewString()

	endpoint := strings.TrimSpace(req.TargetURL)
	if err := inv.validate(endpoint, req); err != nil {
		inv.observeFailure(ctx, invocationID, endpoint, err)
		return "", err
	}

	payload := jsonscan.WrapMessage(req.Payload)
	contentType := strings.TrimSpace(req.ContentType)
	if contentType == "" {
		contentType = "application/json"
	}
	timeoutMinutes := req.TimeoutMinutes
	if timeoutMinutes <= 0 {
		timeoutMinutes = inv.config.DefaultTimeoutMinutes
	}

	inv.observeAttempt(ctx, invocationID, endpoint, len(payload), timeoutMinutes)

	requestCtx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMinutes)*time.Minute)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, strings.NewReader(payload))
	if err != nil {
		failure := core.ValidationError("webhook endpoint must be a valid URL starting with http:// or https://", core.ErrorInvalidScheme)
		inv.observeFailure(ctx, invocationID, endpoint, failure)
		return "", failure
	}
	httpReq.Header.Set("Content-Type", contentType)
	if credential := strings.TrimSpace(req.Credential); credential != "" {
		httpReq.Header.Set("Authorization", "Bearer "+credential)
	}
	if sessionID := strings.TrimSpace(req.SessionID); sessionID != "" {
		httpReq.Header.Set("x-session-id", sessionID)
	}

	startedAt := time.Now().UTC()
	httpRes, err := inv.client.Do(httpReq)
	if err != nil {
		failure := core.TransportError(err, endpoint)
		inv.observeResult(ctx, invocationID, endpoint, 0, startedAt, failure)
		return "", failure
	}
	defer httpRes.Body.Close()

	body, err := io.ReadAll(httpRes.Body)
	if err != nil {
		failure := core.TransportError(err, endpoint)
		inv.observeResult(ctx, invocationID, endpoint, httpRes.StatusCode, startedAt, failure)
		return "", failure
	}

	if httpRes.StatusCode < 200 || httpRes.StatusCode >= 300 {
		failure := core.StatusError(httpRes.StatusCode, string(body))
		inv.observeResult(ctx, invocationID, endpoint, httpRes.StatusCode, startedAt, failure)
		return "", failure
	}

	inv.observeResult(ctx, invocationID, endpoint, httpRes.StatusCode, startedAt, nil)
	return inv.extract(string(body)), nil
}

func (inv *Invoker) validate(endpoint string, req core.InvocationRequest) error {
	if endpoint == "" {
		return core.ValidationError("webhook endpoint is required and cannot be empty", core.ErrorMissingEndpoint)
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		return core.ValidationError("webhook endpoint must be a valid URL starting with http:// or https://", core.ErrorInvalidScheme)
	}
	if inv.config.RequireCredential && strings.TrimSpace(req.Credential) == "" {
		return core.ValidationError("api key is required and cannot be empty", core.ErrorMissingCredential)
	}
	if inv.config.RequireSession && strings.TrimSpace(req.SessionID) == "" {
		return core.ValidationError("session id is required and cannot be empty", core.ErrorMissingSession)
	}
	return nil
}

// extract reduces a successful response body to a single string. Finding no
// known field is not an error; the raw body is returned verbatim.
func (inv *Invoker) extract(body string) string {
	if value, ok := jsonscan.FirstField(body, inv.config.ExtractionFields); ok {
		return value
	}
	if inv.config.NestedTextScan {
		if value, ok := jsonscan.ExtractField(body, "text"); ok && value != "" {
			return jsonscan.Unescape(value)
		}
	}
	return body
}

func defaultClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: connectTimeout,
			}).DialContext,
			TLSHandshakeTimeout: connectTimeout,
		},
	}
}

var _ core.Invoker = (*Invoker)(nil)
