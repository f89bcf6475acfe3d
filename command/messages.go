// Package command exposes webhook invocations to go-command hosts: a
// low-code workflow step or service bus dispatches an InvokeMessage and
// collects the extracted string through the result context.
package command

import (
	"strings"

	"github.com/goliatone/go-webhook/core"
)

const TypeInvoke = "webhook.command.invoke"

type InvokeMessage struct {
	Request core.InvocationRequest
}

func (InvokeMessage) Type() string { return TypeInvoke }

// Validate mirrors the invoker's pre-network checks so a bad message is
// rejected before it reaches the dispatcher queue.
func (m InvokeMessage) Validate() error {
	endpoint := strings.TrimSpace(m.Request.TargetURL)
	if endpoint == "" {
		return core.ValidationError("command: webhook endpoint is required", core.ErrorMissingEndpoint)
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		return core.ValidationError("command: webhook endpoint must start with http:// or https://", core.ErrorInvalidScheme)
	}
	return nil
}
