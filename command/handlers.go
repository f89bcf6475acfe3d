package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-webhook/core"
)

type InvokeCommand struct {
	invoker core.Invoker
}

func NewInvokeCommand(invoker core.Invoker) *InvokeCommand {
	return &InvokeCommand{invoker: invoker}
}

func (c *InvokeCommand) Execute(ctx context.Context, msg InvokeMessage) error {
	if c == nil || c.invoker == nil {
		return commandDependencyError("command: webhook invoker is required")
	}
	out, err := c.invoker.Invoke(ctx, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
