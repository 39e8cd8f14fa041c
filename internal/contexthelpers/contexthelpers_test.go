package contexthelpers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/myrjola/fitfokus/internal/contexthelpers"
)

func TestAuthenticateContext(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if contexthelpers.IsAuthenticated(r.Context()) {
		t.Fatal("fresh request should not be authenticated")
	}
	if got := contexthelpers.AuthenticatedUserID(r.Context()); got != "" {
		t.Fatalf("AuthenticatedUserID() = %q, want empty", got)
	}

	r = contexthelpers.AuthenticateContext(r, "user-1")
	if !contexthelpers.IsAuthenticated(r.Context()) {
		t.Error("expected authenticated request")
	}
	if got := contexthelpers.AuthenticatedUserID(r.Context()); got != "user-1" {
		t.Errorf("AuthenticatedUserID() = %q, want %q", got, "user-1")
	}
}

func TestTraceID(t *testing.T) {
	r := contexthelpers.SetTraceID(httptest.NewRequest("GET", "/", nil), "trace")
	if got := contexthelpers.TraceID(r.Context()); got != "trace" {
		t.Errorf("TraceID() = %q, want %q", got, "trace")
	}
}
