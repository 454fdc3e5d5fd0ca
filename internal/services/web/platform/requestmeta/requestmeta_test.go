package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	if IsHTTPS(nil) {
		t.Fatalf("expected nil request to be non-https")
	}

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	if IsHTTPS(req) {
		t.Fatalf("expected http URL to be non-https")
	}

	req = httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	if IsHTTPS(req) {
		t.Fatalf("expected forwarded header to be ignored by default")
	}

	if got := IsHTTPSWithPolicy(req, SchemePolicy{TrustForwardedProto: true}); !got {
		t.Fatalf("IsHTTPSWithPolicy() = %v, want true", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.TLS = &tls.ConnectionState{}
	if !IsHTTPS(req) {
		t.Fatalf("expected TLS request to be https")
	}
}

func TestScheme(t *testing.T) {
	t.Parallel()

	trusted := SchemePolicy{TrustForwardedProto: true}
	tests := []struct {
		name      string
		target    string
		forwarded string
		policy    SchemePolicy
		want      string
	}{
		{name: "plain path", target: "/", want: "http"},
		{name: "absolute https", target: "https://example.com/", want: "https"},
		{name: "untrusted forwarded", target: "/", forwarded: "https", want: "http"},
		{name: "trusted forwarded", target: "/", forwarded: "HTTPS", policy: trusted, want: "https"},
		{name: "trusted garbage forwarded", target: "/", forwarded: "gopher", policy: trusted, want: "http"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-Proto", tc.forwarded)
			}
			if got := Scheme(req, tc.policy); got != tc.want {
				t.Fatalf("Scheme() = %q, want %q", got, tc.want)
			}
		})
	}
	if got := Scheme(nil, trusted); got != "" {
		t.Fatalf("Scheme(nil) = %q, want empty", got)
	}
}
