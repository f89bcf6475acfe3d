package core

import (
	"context"
	"net/http"

	glog "github.com/goliatone/go-logger/glog"
)

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger

// HTTPDoer is the minimal client contract the invoker executes against.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type MetricsRecorder interface {
	IncCounter(ctx context.Context, name string, value int64, tags map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, tags map[string]string)
}

// InvocationRequest carries the inputs for one webhook call. The request is
// fully constructed before any network I/O happens; no partial requests are
// ever sent. It has no lifecycle beyond the call.
type InvocationRequest struct {
	// Credential is sent as "Authorization: Bearer <credential>" when
	// non-blank. Whether it is mandatory depends on the configured profile.
	Credential string
	// TargetURL must be non-empty and start with http:// or https://.
	TargetURL string
	// Payload is the request body. A payload that does not look like JSON
	// is auto-wrapped as {"message":"<escaped payload>"} before sending.
	Payload string
	// ContentType defaults to "application/json" when empty.
	ContentType string
	// SessionID is forwarded opaquely as the x-session-id header when
	// non-blank so the receiving service can correlate invocations.
	SessionID string
	// TimeoutMinutes bounds the whole exchange. Zero or negative values
	// fall back to the configured default (10 minutes). Values above 60
	// are allowed but discouraged; the ceiling is advisory only.
	TimeoutMinutes int
}

// Invoker performs one validated synchronous HTTP POST and reduces the
// response into a string.
type Invoker interface {
	Invoke(ctx context.Context, req InvocationRequest) (string, error)
}
