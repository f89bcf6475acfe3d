package invoker

import (
	"context"
	"sort"
	"time"

	"github.com/goliatone/go-webhook/core"
)

func (inv *Invoker) observeAttempt(ctx context.Context, invocationID string, endpoint string, payloadBytes int, timeoutMinutes int) {
	inv.logInfo(ctx, "webhook invocation started", map[string]any{
		"invocation_id":   invocationID,
		"endpoint":        endpoint,
		"payload_bytes":   payloadBytes,
		"timeout_minutes": timeoutMinutes,
	})
}

func (inv *Invoker) observeResult(
	ctx context.Context,
	invocationID string,
	endpoint string,
	statusCode int,
	startedAt time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	durationMS := time.Since(startedAt).Milliseconds()

	fields := map[string]any{
		"invocation_id": invocationID,
		"endpoint":      endpoint,
		"status_code":   statusCode,
		"duration_ms":   durationMS,
	}
	if err != nil {
		fields["error"] = err.Error()
		fields["kind"] = core.ErrorKind(err)
	}

	tags := map[string]string{
		"action": inv.config.ActionName,
		"status": status,
	}
	inv.recordCounter(ctx, "webhook.invoke.total", 1, tags)
	inv.recordHistogram(ctx, "webhook.invoke.duration_ms", float64(durationMS), tags)

	if err != nil {
		inv.logError(ctx, "webhook invocation failed", fields)
		return
	}
	inv.logInfo(ctx, "webhook invocation succeeded", fields)
}

func (inv *Invoker) observeFailure(ctx context.Context, invocationID string, endpoint string, err error) {
	inv.recordCounter(ctx, "webhook.invoke.total", 1, map[string]string{
		"action": inv.config.ActionName,
		"status": "rejected",
	})
	inv.logError(ctx, "webhook invocation rejected", map[string]any{
		"invocation_id": invocationID,
		"endpoint":      endpoint,
		"error":         err.Error(),
		"kind":          core.ErrorKind(err),
	})
}

func (inv *Invoker) logInfo(ctx context.Context, message string, fields map[string]any) {
	inv.logWithLevel(ctx, "info", message, fields)
}

func (inv *Invoker) logError(ctx context.Context, message string, fields map[string]any) {
	inv.logWithLevel(ctx, "error", message, fields)
}

func (inv *Invoker) logWithLevel(ctx context.Context, level string, message string, fields map[string]any) {
	if inv == nil || inv.logger == nil {
		return
	}
	logger := inv.logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	if fieldsLogger, ok := logger.(core.FieldsLogger); ok {
		logger = fieldsLogger.WithFields(cloneFields(fields))
	}
	args := flattenFields(fields)
	switch level {
	case "error":
		logger.Error(message, args...)
	default:
		logger.Info(message, args...)
	}
}

func (inv *Invoker) recordCounter(ctx context.Context, name string, value int64, tags map[string]string) {
	if inv == nil || inv.metrics == nil {
		return
	}
	inv.metrics.IncCounter(ctx, name, value, core.CloneTags(tags))
}

func (inv *Invoker) recordHistogram(ctx context.Context, name string, value float64, tags map[string]string) {
	if inv == nil || inv.metrics == nil {
		return
	}
	inv.metrics.ObserveHistogram(ctx, name, value, core.CloneTags(tags))
}

func cloneFields(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return map[string]any{}
	}
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return copied
}

func flattenFields(fields map[string]any) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(keys)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}
	return args
}
