package models

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session cookie names carry one of these markers. Everything else the
// browser holds (analytics, consent banners) is dropped at capture time.
var sessionCookieMarkers = []string{"AUTH_TOKEN", "REFRESH_TOKEN", "EXP_"}

// IsSessionCookie reports whether a cookie name belongs to the portal
// session (auth token, refresh token, or their expiry bookkeeping).
func IsSessionCookie(name string) bool {
	for _, marker := range sessionCookieMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// TokenSet is the portal session: the cookie set captured at login and
// rewritten on every refresh.
//
// Cookies keep their capture order so the persisted string form stays
// stable across rewrites. The set is persisted as a single
// "NAME=value; NAME2=value2" string under auth.cookies.
type TokenSet struct {
	cookies []http.Cookie
}

// NewTokenSet builds a set from raw cookies, keeping only session cookies
// (see [IsSessionCookie]) and dropping duplicates by name, last write wins.
func NewTokenSet(cookies []*http.Cookie) TokenSet {
	var t TokenSet
	for _, c := range cookies {
		if c == nil || !IsSessionCookie(c.Name) {
			continue
		}
		t.put(c.Name, c.Value)
	}
	return t
}

// ParseCookieString rebuilds a set from its persisted "NAME=value; ..."
// form. Malformed fragments without "=" are skipped.
func ParseCookieString(s string) TokenSet {
	var t TokenSet
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		t.put(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return t
}

func (t *TokenSet) put(name, value string) {
	for i := range t.cookies {
		if t.cookies[i].Name == name {
			t.cookies[i].Value = value
			return
		}
	}
	t.cookies = append(t.cookies, http.Cookie{Name: name, Value: value})
}

// String returns the persisted "NAME=value; NAME2=value2" form.
func (t TokenSet) String() string {
	parts := make([]string, 0, len(t.cookies))
	for _, c := range t.cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}

// Empty reports whether the set holds no cookies at all.
func (t TokenSet) Empty() bool {
	return len(t.cookies) == 0
}

// Get returns the value of the named cookie, or "".
func (t TokenSet) Get(name string) string {
	for _, c := range t.cookies {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// Cookies returns the set as request cookies, in capture order.
func (t TokenSet) Cookies() []*http.Cookie {
	out := make([]*http.Cookie, 0, len(t.cookies))
	for i := range t.cookies {
		c := t.cookies[i]
		out = append(out, &c)
	}
	return out
}

// Merge overlays updated on t and returns the result: same-name cookies
// take the updated value, new ones append. A refresh response reissues only
// part of the set, so the remainder must survive.
func (t TokenSet) Merge(updated TokenSet) TokenSet {
	merged := TokenSet{cookies: append([]http.Cookie(nil), t.cookies...)}
	for _, c := range updated.cookies {
		merged.put(c.Name, c.Value)
	}
	return merged
}

// AuthToken returns the current auth token value, or "" when the set holds
// none. Expiry bookkeeping cookies (EXP_AUTH_TOKEN) do not count.
func (t TokenSet) AuthToken() string {
	return t.findToken("AUTH_TOKEN")
}

// RefreshToken returns the current refresh token value, or "".
func (t TokenSet) RefreshToken() string {
	return t.findToken("REFRESH_TOKEN")
}

func (t TokenSet) findToken(marker string) string {
	for _, c := range t.cookies {
		// EXP_AUTH_TOKEN embeds the token name, hence the EXP_ exclusion.
		if strings.Contains(c.Name, marker) && !strings.Contains(c.Name, "EXP_") {
			return c.Value
		}
	}
	return ""
}

// ExpiresAt returns the auth token expiry.
//
// The portal's EXP_ bookkeeping cookie is authoritative when present;
// otherwise the exp claim of the auth-token JWT is read without signature
// verification (claims are only inspected client-side, never trusted).
// Returns the zero time when neither source is available.
func (t TokenSet) ExpiresAt() time.Time {
	for _, c := range t.cookies {
		if !strings.Contains(c.Name, "EXP_") || !strings.Contains(c.Name, "AUTH_TOKEN") {
			continue
		}
		n, err := strconv.ParseInt(c.Value, 10, 64)
		if err != nil || n <= 0 {
			continue
		}
		// Portal timestamps are unix milliseconds; tolerate seconds.
		if n > 1e11 {
			return time.UnixMilli(n)
		}
		return time.Unix(n, 0)
	}

	raw := t.AuthToken()
	if raw == "" {
		return time.Time{}
	}
	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// Valid reports whether the set carries an auth token that has not expired
// at the given instant. Unknown expiry counts as valid; the server stays
// the referee.
func (t TokenSet) Valid(now time.Time) bool {
	if t.AuthToken() == "" {
		return false
	}
	exp := t.ExpiresAt()
	if exp.IsZero() {
		return true
	}
	return now.Before(exp)
}
