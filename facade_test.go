package webhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-webhook/core"
)

func TestExecute_SuccessReturnsExtractedValue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	}))
	defer server.Close()

	got := Execute("", server.URL, "hello")
	if got != "ok" {
		t.Fatalf("expected extracted value, got %q", got)
	}
}

func TestExecute_MissingEndpointFlattened(t *testing.T) {
	got := Execute("", "", "hello")
	if !strings.HasPrefix(got, "Error executing webhook action: ") {
		t.Fatalf("expected flattened error prefix, got %q", got)
	}
	if !strings.Contains(got, "endpoint is required") {
		t.Fatalf("expected missing endpoint marker, got %q", got)
	}
}

func TestExecute_InvalidSchemeFlattened(t *testing.T) {
	for _, endpoint := range []string{"invalid-url", "ftp://x"} {
		got := Execute("", endpoint, "hello")
		if !strings.Contains(got, "must be a valid URL starting with http:// or https://") {
			t.Fatalf("expected invalid scheme marker for %q, got %q", endpoint, got)
		}
	}
}

func TestExecute_HTTPStatusFlattened(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	got := Execute("", server.URL, "hello")
	if !strings.Contains(got, "500") || !strings.Contains(got, "boom") {
		t.Fatalf("expected status and body in flattened error, got %q", got)
	}
}

func TestExecute_TransportFailureFlattened(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	got := Execute("", endpoint, "hello")
	if !strings.Contains(got, "error making webhook request") {
		t.Fatalf("expected transport marker, got %q", got)
	}
}

func TestClient_SessionRequiredFlattened(t *testing.T) {
	cfg := core.WebhookProfile()
	cfg.RequireSession = true
	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	got := client.Execute(context.Background(), core.InvocationRequest{
		TargetURL: "https://example.com/hook",
	})
	if !strings.Contains(got, "session id is required") {
		t.Fatalf("expected missing session marker, got %q", got)
	}
}

func TestClient_FlowProfileUsesActionNameInErrors(t *testing.T) {
	client, err := NewClient(core.FlowProfile())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	got := client.Execute(context.Background(), core.InvocationRequest{
		TargetURL: "https://example.com/flow",
	})
	if !strings.HasPrefix(got, "Error executing flow action: ") {
		t.Fatalf("expected flow action prefix, got %q", got)
	}
	if !strings.Contains(got, "api key is required") {
		t.Fatalf("expected missing credential marker, got %q", got)
	}
}

func TestClient_InvokeKeepsTypedErrors(t *testing.T) {
	client, err := NewClient(core.WebhookProfile())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.Invoke(context.Background(), core.InvocationRequest{})
	if err == nil {
		t.Fatalf("expected typed validation error")
	}
	if kind := core.ErrorKind(err); kind != core.ErrorMissingEndpoint {
		t.Fatalf("expected missing endpoint kind, got %q", kind)
	}
}

func TestExecuteWithSession_ForwardsHeader(t *testing.T) {
	var gotSession string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = r.Header.Get("x-session-id")
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	}))
	defer server.Close()

	if got := ExecuteWithSession("", server.URL, "hello", "sess-1"); got != "ok" {
		t.Fatalf("expected ok, got %q", got)
	}
	if gotSession != "sess-1" {
		t.Fatalf("expected session header, got %q", gotSession)
	}
}
