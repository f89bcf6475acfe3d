package command

import (
	"context"
	"testing"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-webhook/core"
)

type stubInvoker struct {
	invokeFn func(ctx context.Context, req core.InvocationRequest) (string, error)
}

func (s stubInvoker) Invoke(ctx context.Context, req core.InvocationRequest) (string, error) {
	return s.invokeFn(ctx, req)
}

func TestInvokeCommand_ExecuteDelegatesAndStoresResult(t *testing.T) {
	called := false
	svc := stubInvoker{
		invokeFn: func(_ context.Context, req core.InvocationRequest) (string, error) {
			called = true
			if req.TargetURL != "https://example.com/webhook/test" {
				t.Fatalf("unexpected endpoint %q", req.TargetURL)
			}
			return "ok", nil
		},
	}

	cmd := NewInvokeCommand(svc)
	collector := gocmd.NewResult[string]()
	ctx := gocmd.ContextWithResult(context.Background(), collector)

	err := cmd.Execute(ctx, InvokeMessage{Request: core.InvocationRequest{
		TargetURL: "https://example.com/webhook/test",
		Payload:   "hello",
	}})
	if err != nil {
		t.Fatalf("execute invoke: %v", err)
	}
	if !called {
		t.Fatalf("expected invoker call")
	}
	result, ok := collector.Load()
	if !ok {
		t.Fatalf("expected result to be stored")
	}
	if result != "ok" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestInvokeCommand_MissingInvoker(t *testing.T) {
	cmd := &InvokeCommand{}
	if err := cmd.Execute(context.Background(), InvokeMessage{}); err == nil {
		t.Fatalf("expected dependency error")
	}
}

func TestInvokeMessage_Validate(t *testing.T) {
	cases := []struct {
		name     string
		endpoint string
		kind     string
	}{
		{name: "empty", endpoint: "", kind: core.ErrorMissingEndpoint},
		{name: "blank", endpoint: "  ", kind: core.ErrorMissingEndpoint},
		{name: "no scheme", endpoint: "invalid-url", kind: core.ErrorInvalidScheme},
		{name: "valid", endpoint: "https://example.com/hook", kind: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := InvokeMessage{Request: core.InvocationRequest{TargetURL: tc.endpoint}}
			err := msg.Validate()
			if tc.kind == "" {
				if err != nil {
					t.Fatalf("expected valid message, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if kind := core.ErrorKind(err); kind != tc.kind {
				t.Fatalf("expected kind %q, got %q", tc.kind, kind)
			}
		})
	}
}

func TestInvokeMessage_Type(t *testing.T) {
	if got := (InvokeMessage{}).Type(); got != TypeInvoke {
		t.Fatalf("unexpected message type %q", got)
	}
}
