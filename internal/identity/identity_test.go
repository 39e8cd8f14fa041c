package identity_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/alexedwards/scs/v2"

	"github.com/myrjola/fitfokus/internal/contexthelpers"
	"github.com/myrjola/fitfokus/internal/identity"
	"github.com/myrjola/fitfokus/internal/testhelpers"
)

type fakeUserStore struct {
	mu    sync.Mutex
	users []string
	err   error
}

func (f *fakeUserStore) EnsureUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.users = append(f.users, userID)
	return nil
}

func newTestHandler(t *testing.T, store *fakeUserStore) http.Handler {
	t.Helper()
	sessionManager := scs.New()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	h := identity.New(logger, sessionManager, store)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !contexthelpers.IsAuthenticated(r.Context()) {
			t.Error("request not authenticated")
		}
		_, _ = w.Write([]byte(contexthelpers.AuthenticatedUserID(r.Context())))
	})
	return sessionManager.LoadAndSave(h.Middleware(next))
}

func TestMiddleware_IssuesAndKeepsUserID(t *testing.T) {
	store := &fakeUserStore{}
	handler := newTestHandler(t, store)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequestWithContext(t.Context(), http.MethodGet, "/", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", first.Code, http.StatusOK)
	}
	userID := first.Body.String()
	if userID == "" {
		t.Fatal("no user id issued")
	}
	cookies := first.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie set")
	}

	second := httptest.NewRecorder()
	req := httptest.NewRequestWithContext(t.Context(), http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	handler.ServeHTTP(second, req)
	if got := second.Body.String(); got != userID {
		t.Errorf("user id = %q, want %q", got, userID)
	}
	if len(store.users) != 1 || store.users[0] != userID {
		t.Errorf("created users = %v, want [%s]", store.users, userID)
	}

	third := httptest.NewRecorder()
	handler.ServeHTTP(third, httptest.NewRequestWithContext(t.Context(), http.MethodGet, "/", nil))
	if third.Body.String() == userID {
		t.Error("request without cookie reused another user's id")
	}
}

func TestMiddleware_EnsureUserFails(t *testing.T) {
	handler := newTestHandler(t, &fakeUserStore{err: errors.New("database is locked")})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequestWithContext(t.Context(), http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
