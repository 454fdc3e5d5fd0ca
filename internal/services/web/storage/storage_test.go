package storage

import (
	"testing"
	"time"
)

func TestWebSessionActive(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		session WebSession
		want    bool
	}{
		{name: "fresh", session: WebSession{ExpiresAt: now.Add(time.Minute)}, want: true},
		{name: "expired", session: WebSession{ExpiresAt: now.Add(-time.Minute)}, want: false},
		{name: "expires now", session: WebSession{ExpiresAt: now}, want: false},
		{name: "revoked", session: WebSession{ExpiresAt: now.Add(time.Hour), RevokedAt: now.Add(-time.Second)}, want: false},
	}
	for _, tc := range tests {
		if got := tc.session.Active(now); got != tc.want {
			t.Fatalf("%s: Active() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
