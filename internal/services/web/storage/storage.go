package storage

import (
	"context"
	"time"
)

// WebSession is one browser session issued to a signed-in user.
type WebSession struct {
	ID          string
	UserID      string
	Email       string
	DisplayName string
	CreatedAt   time.Time
	ExpiresAt   time.Time
	RevokedAt   time.Time
}

// Active reports whether the session can still authenticate at now.
func (s WebSession) Active(now time.Time) bool {
	if !s.RevokedAt.IsZero() {
		return false
	}
	return s.ExpiresAt.After(now)
}

// SessionStore is the persistence contract for web sessions.
type SessionStore interface {
	Close() error
	GetWebSession(ctx context.Context, sessionID string) (WebSession, bool, error)
	PutWebSession(ctx context.Context, session WebSession) error
	RevokeWebSession(ctx context.Context, sessionID string, revokedAt time.Time) error
	PruneExpiredWebSessions(ctx context.Context, now time.Time) (int64, error)
}
