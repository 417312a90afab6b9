package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lahella/internal/config"
	"lahella/internal/logger"
	"lahella/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// fakePlatform records installed cookie sets and serves a scripted
// refresh reply.
type fakePlatform struct {
	installed []models.TokenSet
	reissued  models.TokenSet
	err       error
	refreshes int
}

func (f *fakePlatform) SetSession(tokens models.TokenSet) {
	f.installed = append(f.installed, tokens)
}

func (f *fakePlatform) RefreshSession(_ context.Context) (models.TokenSet, error) {
	f.refreshes++
	if f.err != nil {
		return models.TokenSet{}, f.err
	}
	return f.reissued, nil
}

func writeAuthFile(t *testing.T, cookies string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "auth.yaml")
	body := "auth:\n  email: maija@example.org\n  cookies: \"" + cookies + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// sessionCookies builds the persisted cookie form with an explicit
// expiry in unix milliseconds.
func sessionCookies(token string, expiresAt time.Time) string {
	return "AUTH_TOKEN=" + token +
		"; REFRESH_TOKEN=refresh-1" +
		"; EXP_AUTH_TOKEN=" + strconv.FormatInt(expiresAt.UnixMilli(), 10)
}

func newTestManager(t *testing.T, cookies string) (*Manager, *fakePlatform) {
	t.Helper()
	platform := &fakePlatform{}
	m, err := NewManager(writeAuthFile(t, cookies), platform, logger.Nop())
	require.NoError(t, err)
	return m, platform
}

// ── NewManager ────────────────────────────────────────────────────────────────

// TestNewManager_InstallsStoredSession verifies that the cookie set
// persisted under auth.cookies lands on the platform client.
func TestNewManager_InstallsStoredSession(t *testing.T) {
	// Arrange + Act
	m, platform := newTestManager(t, "AUTH_TOKEN=tok-1; REFRESH_TOKEN=ref-1")

	// Assert
	require.Len(t, platform.installed, 1)
	assert.Equal(t, "tok-1", platform.installed[0].AuthToken())
	assert.Equal(t, "tok-1", m.Tokens().AuthToken())
	assert.Equal(t, "ref-1", m.Tokens().RefreshToken())
}

// TestNewManager_MissingAuthFile verifies that a nonexistent auth file
// surfaces the config error unchanged.
func TestNewManager_MissingAuthFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "auth.yaml")

	m, err := NewManager(missing, &fakePlatform{}, logger.Nop())

	assert.Nil(t, m)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingFile)
}

// TestNewManager_NoStoredCookies verifies that an auth file without a
// captured session yields ErrNoSession.
func TestNewManager_NoStoredCookies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth:\n  email: maija@example.org\n"), 0o600))

	m, err := NewManager(path, &fakePlatform{}, logger.Nop())

	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrNoSession)
}

// ── EnsureValid ───────────────────────────────────────────────────────────────

// TestEnsureValid_LiveSessionUntouched verifies that tokens with a
// future expiry are used as-is, with no refresh round-trip.
func TestEnsureValid_LiveSessionUntouched(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	m, platform := newTestManager(t, sessionCookies("tok-live", now.Add(time.Hour)))
	m.now = func() time.Time { return now }

	err := m.EnsureValid(context.Background())

	require.NoError(t, err)
	assert.Zero(t, platform.refreshes)
}

// TestEnsureValid_ExpiredSessionRefreshed verifies that expired tokens
// trigger exactly one refresh and the merged set is installed and saved.
func TestEnsureValid_ExpiredSessionRefreshed(t *testing.T) {
	// Arrange
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	m, platform := newTestManager(t, sessionCookies("tok-old", now.Add(-time.Minute)))
	m.now = func() time.Time { return now }
	platform.reissued = models.ParseCookieString(sessionCookies("tok-new", now.Add(time.Hour)))

	// Act
	err := m.EnsureValid(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, platform.refreshes)
	assert.Equal(t, "tok-new", m.Tokens().AuthToken())

	installed := platform.installed[len(platform.installed)-1]
	assert.Equal(t, "tok-new", installed.AuthToken())

	saved, err := os.ReadFile(m.authPath)
	require.NoError(t, err)
	assert.Contains(t, string(saved), "tok-new")
}

// TestEnsureValid_UnknownExpiryPasses verifies that an opaque token
// without any readable expiry is not refreshed preemptively.
func TestEnsureValid_UnknownExpiryPasses(t *testing.T) {
	m, platform := newTestManager(t, "AUTH_TOKEN=opaque; REFRESH_TOKEN=ref-1")

	err := m.EnsureValid(context.Background())

	require.NoError(t, err)
	assert.Zero(t, platform.refreshes)
}

// ── Refresh ───────────────────────────────────────────────────────────────────

// TestRefresh_ReissuedSubsetMerged verifies that a refresh reply carrying
// only the auth token keeps the stored refresh token alive, in memory,
// on the platform client, and on disk.
func TestRefresh_ReissuedSubsetMerged(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	m, platform := newTestManager(t, sessionCookies("tok-old", now.Add(-time.Minute)))
	platform.reissued = models.ParseCookieString(
		"AUTH_TOKEN=tok-new; EXP_AUTH_TOKEN=" + strconv.FormatInt(now.Add(time.Hour).UnixMilli(), 10))

	err := m.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "tok-new", m.Tokens().AuthToken())
	assert.Equal(t, "refresh-1", m.Tokens().RefreshToken())

	installed := platform.installed[len(platform.installed)-1]
	assert.Equal(t, "refresh-1", installed.RefreshToken())

	saved, err := os.ReadFile(m.authPath)
	require.NoError(t, err)
	assert.Contains(t, string(saved), "REFRESH_TOKEN=refresh-1")
	assert.Contains(t, string(saved), "AUTH_TOKEN=tok-new")
}

// TestRefresh_RejectionLatchesManager verifies the refresh-once rule: a
// rejected refresh makes every later call fail fast without touching
// the platform again.
func TestRefresh_RejectionLatchesManager(t *testing.T) {
	m, platform := newTestManager(t, "AUTH_TOKEN=tok; REFRESH_TOKEN=ref")
	platform.err = errors.New("401 unauthorized")

	first := m.Refresh(context.Background())
	second := m.Refresh(context.Background())
	ensure := m.EnsureValid(context.Background())

	require.Error(t, first)
	assert.ErrorIs(t, first, ErrReauthRequired)
	assert.Contains(t, first.Error(), "401 unauthorized")
	assert.ErrorIs(t, second, ErrReauthRequired)
	assert.ErrorIs(t, ensure, ErrReauthRequired)
	assert.Equal(t, 1, platform.refreshes, "latched manager must not retry the portal")
}

// TestRefresh_PersistFailureDoesNotLatch verifies that a refresh that
// succeeds against the portal but cannot be written to disk reports the
// write error without invalidating the session.
func TestRefresh_PersistFailureDoesNotLatch(t *testing.T) {
	m, platform := newTestManager(t, "AUTH_TOKEN=tok; REFRESH_TOKEN=ref")
	platform.reissued = models.ParseCookieString("AUTH_TOKEN=tok-new")
	// A directory is unreadable as a file, so the rewrite fails.
	m.authPath = t.TempDir()

	err := m.Refresh(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save refreshed session")
	assert.NotErrorIs(t, err, ErrReauthRequired)
	assert.False(t, m.invalid)
	assert.Equal(t, "tok-new", m.Tokens().AuthToken(), "in-memory session still refreshed")
}

// ── Save ──────────────────────────────────────────────────────────────────────

// TestSave_WritesCapturedSession verifies that a fresh login lands in a
// new auth file readable by NewManager.
func TestSave_WritesCapturedSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.yaml")
	tokens := models.ParseCookieString("AUTH_TOKEN=tok-login; REFRESH_TOKEN=ref-login")

	require.NoError(t, Save(path, tokens))

	platform := &fakePlatform{}
	m, err := NewManager(path, platform, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "tok-login", m.Tokens().AuthToken())
}

// TestSave_RejectsEmptySet verifies that an empty capture never
// overwrites the auth file.
func TestSave_RejectsEmptySet(t *testing.T) {
	path := writeAuthFile(t, "AUTH_TOKEN=keep-me")

	err := Save(path, models.TokenSet{})

	require.Error(t, err)
	saved, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.True(t, strings.Contains(string(saved), "keep-me"))
}
