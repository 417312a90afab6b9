// Package session keeps the portal session alive between invocations:
// it loads the cookie set stored in the auth file, installs it on the
// platform client, refreshes it when it expires, and writes reissued
// cookies back so the next run starts from a live session.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lahella/internal/config"
	"lahella/internal/logger"
	"lahella/models"
)

// Refresher is the slice of the platform client the manager drives:
// installing a cookie set and asking the portal to reissue one.
type Refresher interface {
	SetSession(tokens models.TokenSet)
	RefreshSession(ctx context.Context) (models.TokenSet, error)
}

// Manager owns the session stored in one auth file.
//
// A refresh the portal rejects latches the manager: every later call
// fails fast with ErrReauthRequired until the operator signs in again.
// The latch guarantees a command attempts at most one refresh.
type Manager struct {
	authPath string
	platform Refresher
	tokens   models.TokenSet
	invalid  bool
	now      func() time.Time
	logger   *logger.Logger
}

// NewManager reads the cookie set persisted under auth.cookies and
// installs it on the platform client. An auth file without captured
// cookies yields ErrNoSession.
func NewManager(authPath string, platform Refresher, log *logger.Logger) (*Manager, error) {
	document, err := config.LoadDocument(authPath)
	if err != nil {
		return nil, err
	}

	tokens := models.ParseCookieString(document.Auth.Cookies)
	if tokens.Empty() {
		return nil, ErrNoSession
	}
	platform.SetSession(tokens)

	return &Manager{
		authPath: authPath,
		platform: platform,
		tokens:   tokens,
		now:      time.Now,
		logger:   log,
	}, nil
}

// Tokens returns the cookie set currently installed on the platform client.
func (m *Manager) Tokens() models.TokenSet {
	return m.tokens
}

// EnsureValid refreshes the session when the stored tokens have expired.
// Tokens without a readable expiry pass as-is; the portal stays the referee.
func (m *Manager) EnsureValid(ctx context.Context) error {
	if m.invalid {
		return ErrReauthRequired
	}
	if m.tokens.Valid(m.now()) {
		return nil
	}

	m.logger.Debug().Time("expired", m.tokens.ExpiresAt()).Msg("stored session has expired, refreshing")

	return m.Refresh(ctx)
}

// Refresh asks the portal to reissue the session cookies, overlays the
// reply on the stored set, and persists the result. Refresh responses
// carry only the reissued cookies, so the merge keeps the rest alive.
func (m *Manager) Refresh(ctx context.Context) error {
	if m.invalid {
		return ErrReauthRequired
	}

	reissued, err := m.platform.RefreshSession(ctx)
	if err != nil {
		m.invalid = true
		m.logger.Error().Err(err).Msg("portal rejected the session refresh")

		return fmt.Errorf("%w: %v", ErrReauthRequired, err)
	}

	merged := m.tokens.Merge(reissued)
	m.tokens = merged
	m.platform.SetSession(merged)

	if err := writeCookies(m.authPath, merged.String()); err != nil {
		return fmt.Errorf("save refreshed session: %w", err)
	}

	m.logger.Debug().Time("expires", merged.ExpiresAt()).Msg("session refreshed")

	return nil
}

// Save writes a freshly captured cookie set to the auth file, creating
// the file when it does not exist yet. The login flow calls this
// directly; it has no prior session to manage.
func Save(authPath string, tokens models.TokenSet) error {
	if tokens.Empty() {
		return errors.New("refusing to save an empty cookie set")
	}
	return writeCookies(authPath, tokens.String())
}
