package principal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/wacrm/wacrm/internal/services/web/platform/errors"
	"github.com/wacrm/wacrm/internal/services/web/platform/sessioncookie"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func requestWithSession(value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if value != "" {
		req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: value})
	}
	return req
}

func TestStateSignedIn(t *testing.T) {
	t.Parallel()

	user := User{ID: "u1"}
	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{name: "anonymous", state: Anonymous(), want: false},
		{name: "pending", state: Pending(), want: false},
		{name: "user while loading", state: State{User: &user, Loading: true}, want: false},
		{name: "user settled", state: SignedInAs(user), want: true},
	}
	for _, tc := range tests {
		if got := tc.state.SignedIn(); got != tc.want {
			t.Fatalf("%s: SignedIn() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestResolveWithoutCookieIsAnonymousWithoutLookup(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	resolver := NewResolver(SessionGatewayFunc(func(context.Context, string) (User, error) {
		calls.Add(1)
		return User{ID: "u1"}, nil
	}))
	state := resolver.Resolve(requestWithSession(""))
	if state.SignedIn() || state.Loading || state.Rejected {
		t.Fatalf("state = %+v, want anonymous", state)
	}
	if calls.Load() != 0 {
		t.Fatalf("lookups = %d, want 0", calls.Load())
	}
}

func TestResolveNilGatewayIsAnonymous(t *testing.T) {
	t.Parallel()

	state := NewResolver(nil).Resolve(requestWithSession("ws-1"))
	if state != Anonymous() {
		t.Fatalf("state = %+v, want anonymous", state)
	}
	if got := NewResolver(nil).Resolve(nil); got != Anonymous() {
		t.Fatalf("Resolve(nil) = %+v, want anonymous", got)
	}
}

func TestResolveClassifiesGatewayOutcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		user         User
		err          error
		wantSignedIn bool
		wantLoading  bool
		wantRejected bool
	}{
		{name: "user", user: User{ID: "u1", Email: "a@b.c"}, wantSignedIn: true},
		{name: "blank user id", user: User{}, wantRejected: true},
		{name: "not found", err: ErrSessionNotFound, wantRejected: true},
		{name: "expired wrapped", err: fmt.Errorf("lookup: %w", ErrSessionExpired), wantRejected: true},
		{name: "revoked", err: ErrSessionRevoked, wantRejected: true},
		{name: "invalid", err: ErrSessionInvalid, wantRejected: true},
		{name: "deadline", err: context.DeadlineExceeded, wantLoading: true},
		{name: "unavailable", err: apperrors.E(apperrors.KindUnavailable, "down"), wantLoading: true},
		{name: "unknown failure", err: errors.New("boom")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			resolver := NewResolver(SessionGatewayFunc(func(context.Context, string) (User, error) {
				return tc.user, tc.err
			}))
			state := resolver.Resolve(requestWithSession("ws-1"))
			if got := state.SignedIn(); got != tc.wantSignedIn {
				t.Fatalf("SignedIn() = %v, want %v", got, tc.wantSignedIn)
			}
			if state.Loading != tc.wantLoading {
				t.Fatalf("Loading = %v, want %v", state.Loading, tc.wantLoading)
			}
			if state.Rejected != tc.wantRejected {
				t.Fatalf("Rejected = %v, want %v", state.Rejected, tc.wantRejected)
			}
		})
	}
}

func TestResolveAppliesDeadlineToSlowGateway(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	resolver := NewResolver(SessionGatewayFunc(func(ctx context.Context, _ string) (User, error) {
		<-ctx.Done()
		return User{}, ctx.Err()
	}), WithTimeout(10*time.Millisecond), WithLogger(zap.New(core)))

	start := time.Now()
	state := resolver.Resolve(requestWithSession("ws-1"))
	if !state.Loading {
		t.Fatalf("state = %+v, want loading", state)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("resolve took %v, want bounded by deadline", elapsed)
	}
	if logs.FilterMessage("session lookup unsettled").Len() != 1 {
		t.Fatalf("expected one unsettled log entry, got %d", logs.Len())
	}
}

func TestResolveSettlesLoadingWhenGatewayIgnoresContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	resolver := NewResolver(SessionGatewayFunc(func(context.Context, string) (User, error) {
		<-release
		return User{ID: "late-user"}, nil
	}), WithTimeout(10*time.Millisecond))

	resolved := make(chan State, 1)
	go func() { resolved <- resolver.Resolve(requestWithSession("ws-stuck")) }()
	select {
	case state := <-resolved:
		if !state.Loading || state.SignedIn() {
			t.Fatalf("state = %+v, want loading", state)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("resolve blocked on a gateway that ignores its context")
	}
}

func TestResolvePassesCookieValueToGateway(t *testing.T) {
	t.Parallel()

	var seen string
	resolver := NewResolver(SessionGatewayFunc(func(_ context.Context, sessionID string) (User, error) {
		seen = sessionID
		return User{ID: "u1"}, nil
	}))
	resolver.Resolve(requestWithSession(" ws-42 "))
	if seen != "ws-42" {
		t.Fatalf("session id = %q, want %q", seen, "ws-42")
	}
}

func TestMiddlewareMemoizesPerRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	resolver := NewResolver(SessionGatewayFunc(func(context.Context, string) (User, error) {
		calls.Add(1)
		return User{ID: "u1"}, nil
	}))
	handler := resolver.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for i := 0; i < 3; i++ {
			if !resolver.Resolve(r).SignedIn() {
				t.Errorf("resolve %d not signed in", i)
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), requestWithSession("ws-1"))
	if calls.Load() != 1 {
		t.Fatalf("lookups in one request = %d, want 1", calls.Load())
	}
	handler.ServeHTTP(httptest.NewRecorder(), requestWithSession("ws-1"))
	if calls.Load() != 2 {
		t.Fatalf("lookups across two requests = %d, want 2", calls.Load())
	}
}

func TestWithTimeoutIgnoresNonPositive(t *testing.T) {
	t.Parallel()

	if got := NewResolver(nil, WithTimeout(0)).timeout; got != DefaultTimeout {
		t.Fatalf("timeout = %v, want %v", got, DefaultTimeout)
	}
	if got := NewResolver(nil, WithTimeout(time.Second)).timeout; got != time.Second {
		t.Fatalf("timeout = %v, want %v", got, time.Second)
	}
}
