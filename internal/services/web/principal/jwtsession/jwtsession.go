// Package jwtsession validates stateless HS256 session tokens carried in the
// web session cookie.
package jwtsession

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wacrm/wacrm/internal/services/web/principal"
)

// minSecretBytes is the shortest HMAC key accepted.
const minSecretBytes = 32

// Config defines how session tokens are verified.
type Config struct {
	Secret []byte
	// Issuer, when set, must match the iss claim.
	Issuer string
	Leeway time.Duration
	Now    func() time.Time
}

// Claims is the session token payload.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Gateway resolves users from signed session tokens.
type Gateway struct {
	secret []byte
	parser *jwt.Parser
}

// New validates cfg and returns a gateway.
func New(cfg Config) (*Gateway, error) {
	if len(cfg.Secret) < minSecretBytes {
		return nil, fmt.Errorf("session secret must be at least %d bytes", minSecretBytes)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(cfg.Now),
	}
	if cfg.Leeway > 0 {
		opts = append(opts, jwt.WithLeeway(cfg.Leeway))
	}
	if issuer := strings.TrimSpace(cfg.Issuer); issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	secret := make([]byte, len(cfg.Secret))
	copy(secret, cfg.Secret)
	return &Gateway{secret: secret, parser: jwt.NewParser(opts...)}, nil
}

// LookupSession verifies token and returns the user named by its claims.
func (g *Gateway) LookupSession(ctx context.Context, token string) (principal.User, error) {
	if err := ctx.Err(); err != nil {
		return principal.User{}, err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return principal.User{}, principal.ErrSessionNotFound
	}

	var claims Claims
	if _, err := g.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return g.secret, nil
	}); err != nil {
		return principal.User{}, mapJWTError(err)
	}

	userID := strings.TrimSpace(claims.Subject)
	if userID == "" {
		return principal.User{}, fmt.Errorf("%w: sub is required", principal.ErrSessionInvalid)
	}
	return principal.User{
		ID:          userID,
		Email:       strings.TrimSpace(claims.Email),
		DisplayName: strings.TrimSpace(claims.Name),
	}, nil
}

// mapJWTError translates jwt library errors to session errors.
func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return fmt.Errorf("%w: %v", principal.ErrSessionExpired, err)
	}
	return fmt.Errorf("%w: %v", principal.ErrSessionInvalid, err)
}
