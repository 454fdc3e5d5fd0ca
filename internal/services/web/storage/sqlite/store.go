package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/wacrm/wacrm/internal/platform/storage/sqlitemigrate"
	apperrors "github.com/wacrm/wacrm/internal/services/web/platform/errors"
	"github.com/wacrm/wacrm/internal/services/web/principal"
	webstorage "github.com/wacrm/wacrm/internal/services/web/storage"
	"github.com/wacrm/wacrm/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for web sessions.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open opens and migrates a web session SQLite store.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetWebSession loads a session by its cookie value.
func (s *Store) GetWebSession(ctx context.Context, sessionID string) (webstorage.WebSession, bool, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.WebSession{}, false, fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return webstorage.WebSession{}, false, fmt.Errorf("session id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT user_id, email, display_name, created_at, expires_at, revoked_at
		 FROM web_sessions
		 WHERE session_hash = ?`,
		hashedSessionID(sessionID),
	)

	session := webstorage.WebSession{ID: sessionID}
	var createdAt int64
	var expiresAt int64
	var revokedAt int64
	if err := row.Scan(
		&session.UserID,
		&session.Email,
		&session.DisplayName,
		&createdAt,
		&expiresAt,
		&revokedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.WebSession{}, false, nil
		}
		return webstorage.WebSession{}, false, fmt.Errorf("get web session: %w", err)
	}
	session.CreatedAt = unixMillisToTime(createdAt)
	session.ExpiresAt = unixMillisToTime(expiresAt)
	session.RevokedAt = unixMillisToTime(revokedAt)
	return session, true, nil
}

// PutWebSession upserts a session, keeping the original created_at.
func (s *Store) PutWebSession(ctx context.Context, session webstorage.WebSession) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	session.ID = strings.TrimSpace(session.ID)
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	session.UserID = strings.TrimSpace(session.UserID)
	if session.UserID == "" {
		return fmt.Errorf("session user id is required")
	}
	if session.ExpiresAt.IsZero() {
		return fmt.Errorf("session expiry is required")
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = s.now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO web_sessions (
		    session_hash, user_id, email, display_name, created_at, expires_at, revoked_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(session_hash) DO UPDATE SET
		    user_id = excluded.user_id,
		    email = excluded.email,
		    display_name = excluded.display_name,
		    expires_at = excluded.expires_at,
		    revoked_at = excluded.revoked_at`,
		hashedSessionID(session.ID),
		session.UserID,
		strings.TrimSpace(session.Email),
		strings.TrimSpace(session.DisplayName),
		timeToUnixMillis(session.CreatedAt),
		timeToUnixMillis(session.ExpiresAt),
		timeToUnixMillis(session.RevokedAt),
	)
	if err != nil {
		return fmt.Errorf("put web session: %w", err)
	}
	return nil
}

// RevokeWebSession marks a session signed out. Unknown ids are a no-op.
func (s *Store) RevokeWebSession(ctx context.Context, sessionID string, revokedAt time.Time) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if revokedAt.IsZero() {
		revokedAt = s.now()
	}
	if _, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE web_sessions SET revoked_at = ? WHERE session_hash = ? AND revoked_at = 0`,
		timeToUnixMillis(revokedAt),
		hashedSessionID(sessionID),
	); err != nil {
		return fmt.Errorf("revoke web session: %w", err)
	}
	return nil
}

// PruneExpiredWebSessions deletes sessions that expired before now or were
// revoked, and returns how many rows were removed.
func (s *Store) PruneExpiredWebSessions(ctx context.Context, now time.Time) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE expires_at <= ? OR revoked_at > 0`, timeToUnixMillis(now))
	if err != nil {
		return 0, fmt.Errorf("prune web sessions: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune web sessions: %w", err)
	}
	return removed, nil
}

// LookupSession resolves the user behind a session cookie value.
func (s *Store) LookupSession(ctx context.Context, sessionID string) (principal.User, error) {
	if strings.TrimSpace(sessionID) == "" {
		return principal.User{}, principal.ErrSessionNotFound
	}
	session, found, err := s.GetWebSession(ctx, sessionID)
	if err != nil {
		return principal.User{}, apperrors.Wrap(apperrors.KindUnavailable, "", err)
	}
	if !found {
		return principal.User{}, principal.ErrSessionNotFound
	}
	if !session.RevokedAt.IsZero() {
		return principal.User{}, principal.ErrSessionRevoked
	}
	if !session.Active(s.now()) {
		return principal.User{}, principal.ErrSessionExpired
	}
	return principal.User{
		ID:          session.UserID,
		Email:       session.Email,
		DisplayName: session.DisplayName,
	}, nil
}

func hashedSessionID(sessionID string) string {
	sum := sha256.Sum256([]byte(sessionID))
	return hex.EncodeToString(sum[:])
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var (
	_ webstorage.SessionStore  = (*Store)(nil)
	_ principal.SessionGateway = (*Store)(nil)
)
