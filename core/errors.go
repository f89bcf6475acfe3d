package core

import (
	"fmt"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// Stable failure kinds. Validation kinds are detected before any network
// I/O; the external kinds carry the status code or transport cause.
const (
	ErrorMissingEndpoint   = "WEBHOOK_MISSING_ENDPOINT"
	ErrorInvalidScheme     = "WEBHOOK_INVALID_ENDPOINT_SCHEME"
	ErrorMissingSession    = "WEBHOOK_MISSING_SESSION"
	ErrorMissingCredential = "WEBHOOK_MISSING_CREDENTIAL"
	ErrorHTTPStatus        = "WEBHOOK_HTTP_STATUS"
	ErrorTransport         = "WEBHOOK_TRANSPORT"
	ErrorInternal          = "WEBHOOK_INTERNAL"
)

func ValidationError(message string, textCode string) error {
	return goerrors.New(message, goerrors.CategoryBadInput).
		WithCode(http.StatusBadRequest).
		WithTextCode(textCode)
}

// StatusError reports a non-2xx response. The message carries both the
// status code and the raw body so the flattened string keeps them visible.
func StatusError(statusCode int, body string) error {
	return goerrors.New(
		fmt.Sprintf("webhook request failed with status code: %d. Response: %s", statusCode, body),
		goerrors.CategoryExternal,
	).
		WithCode(http.StatusBadGateway).
		WithTextCode(ErrorHTTPStatus).
		WithMetadata(map[string]any{
			"status_code":   statusCode,
			"response_body": body,
		})
}

// TransportError reports a network-layer failure (DNS, refused connection,
// elapsed timeout, TLS). The cause description is folded into the message.
func TransportError(source error, endpoint string) error {
	if source == nil {
		return goerrors.New("error making webhook request", goerrors.CategoryExternal).
			WithCode(http.StatusBadGateway).
			WithTextCode(ErrorTransport).
			WithMetadata(map[string]any{"endpoint": endpoint})
	}
	message := fmt.Sprintf("error making webhook request: %s", source.Error())
	return goerrors.Wrap(source, goerrors.CategoryExternal, message).
		WithCode(http.StatusBadGateway).
		WithTextCode(ErrorTransport).
		WithMetadata(map[string]any{"endpoint": endpoint})
}

func InternalError(message string) error {
	return goerrors.New(message, goerrors.CategoryInternal).
		WithCode(http.StatusInternalServerError).
		WithTextCode(ErrorInternal)
}

// ErrorKind returns the stable kind of an invocation failure, or an empty
// string for nil and foreign errors.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return ""
	}
	return richErr.TextCode
}

// FlattenError converts any invocation failure into the single-string form
// the public surface exposes. Callers of the flattened surface distinguish
// failure categories only by substring inspection.
func FlattenError(action string, err error) string {
	if err == nil {
		return ""
	}
	action = strings.TrimSpace(action)
	if action == "" {
		action = "webhook"
	}
	message := err.Error()
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) && strings.TrimSpace(richErr.Message) != "" {
		message = richErr.Message
	}
	return fmt.Sprintf("Error executing %s action: %s", action, message)
}
