// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package browser signs in to the portal with a real Chromium. The
// portal has no credentials API: the web app performs the login and
// stores the session cookies itself, so the only reliable way to obtain
// them is to drive the actual form and read what the browser holds
// afterwards.
package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"lahella/internal/logger"
	"lahella/models"
)

const (
	usernameSelector = `input[name="username"]`
	passwordSelector = `input[name="password"]`
	submitSelector   = `button[type="submit"]`

	// submitLabel picks the sign-in button apart from the other submit
	// buttons the login page renders (language switch, password reset).
	submitLabel = "Kirjaudu"
)

// defaultLoginTimeout caps the wait for the post-login redirect.
const defaultLoginTimeout = 30 * time.Second

// settleWait gives the web app a moment to store its tokens once the
// redirect has landed.
const settleWait = time.Second

// pollInterval paces the redirect checks.
const pollInterval = 250 * time.Millisecond

// Options tune one login run.
type Options struct {
	// BaseURL is the portal root, e.g. https://hallinta.lahella.fi.
	BaseURL string

	// Headless hides the browser window. Turn it off when the portal
	// throws a captcha or MFA prompt at the account.
	Headless bool

	// Timeout caps the wait for the post-login redirect; zero means
	// the default of 30 seconds.
	Timeout time.Duration
}

func (o Options) loginURL() string {
	return strings.TrimRight(o.BaseURL, "/") + "/login"
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return defaultLoginTimeout
	}
	return o.Timeout
}

// Login drives the portal's sign-in form and captures the session
// cookie set the web app stores. The caller persists the result.
func Login(ctx context.Context, creds models.Credentials, opts Options, log *logger.Logger) (models.TokenSet, error) {
	if !creds.Complete() {
		return models.TokenSet{}, fmt.Errorf("%w: email and password are required", ErrLoginFailed)
	}

	chrome := launcher.New().Headless(opts.Headless)
	controlURL, err := chrome.Launch()
	if err != nil {
		return models.TokenSet{}, fmt.Errorf("launch browser: %w", err)
	}
	defer chrome.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return models.TokenSet{}, fmt.Errorf("connect to browser: %w", err)
	}
	defer func() { _ = browser.Close() }()

	log.Debug().Str("url", opts.loginURL()).Bool("headless", opts.Headless).Msg("opening the login page")

	page, err := browser.Page(proto.TargetCreateTarget{URL: opts.loginURL()})
	if err != nil {
		return models.TokenSet{}, fmt.Errorf("open login page: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return models.TokenSet{}, fmt.Errorf("load login page: %w", err)
	}

	if err := fillField(page, usernameSelector, creds.Email); err != nil {
		return models.TokenSet{}, err
	}
	if err := fillField(page, passwordSelector, creds.Password); err != nil {
		return models.TokenSet{}, err
	}

	log.Debug().Str("email", creds.Email).Msg("submitting the sign-in form")

	submit, err := page.ElementR(submitSelector, submitLabel)
	if err != nil {
		return models.TokenSet{}, fmt.Errorf("find sign-in button: %w", err)
	}
	if err := submit.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return models.TokenSet{}, fmt.Errorf("click sign-in: %w", err)
	}

	if err := waitLoggedIn(ctx, page, opts.timeout()); err != nil {
		return models.TokenSet{}, err
	}

	// The app writes its cookies shortly after the redirect lands.
	time.Sleep(settleWait)

	tokens, err := captureTokens(page)
	if err != nil {
		return models.TokenSet{}, err
	}
	if tokens.Empty() {
		return models.TokenSet{}, ErrNoTokens
	}

	log.Debug().Time("expires", tokens.ExpiresAt()).Msg("session tokens captured")

	return tokens, nil
}

func fillField(page *rod.Page, selector, value string) error {
	el, err := page.Element(selector)
	if err != nil {
		return fmt.Errorf("find %s: %w", selector, err)
	}
	if err := el.Input(value); err != nil {
		return fmt.Errorf("fill %s: %w", selector, err)
	}
	return nil
}

// waitLoggedIn waits for the portal to redirect away from /login, the
// only success signal the page gives. Staying on the login page past the
// deadline means the credentials were rejected (or a captcha is up).
func waitLoggedIn(ctx context.Context, page *rod.Page, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		info, err := page.Info()
		if err == nil && !strings.Contains(info.URL, "login") {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrLoginFailed
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

// captureTokens reads the browser's cookies and keeps the session ones.
// Older portal builds kept the tokens in localStorage instead, so an
// empty cookie capture falls back to reading storage under the same
// name filter.
func captureTokens(page *rod.Page) (models.TokenSet, error) {
	res, err := proto.NetworkGetCookies{}.Call(page)
	if err != nil {
		return models.TokenSet{}, fmt.Errorf("read cookies: %w", err)
	}

	raw := make([]*http.Cookie, 0, len(res.Cookies))
	for _, c := range res.Cookies {
		raw = append(raw, &http.Cookie{Name: c.Name, Value: c.Value})
	}
	if tokens := models.NewTokenSet(raw); !tokens.Empty() {
		return tokens, nil
	}

	return localStorageTokens(page)
}

func localStorageTokens(page *rod.Page) (models.TokenSet, error) {
	res, err := page.Evaluate(&rod.EvalOptions{
		JS:      `() => Object.entries(localStorage)`,
		ByValue: true,
	})
	if err != nil {
		return models.TokenSet{}, fmt.Errorf("read localStorage: %w", err)
	}

	data, err := res.Value.MarshalJSON()
	if err != nil {
		return models.TokenSet{}, fmt.Errorf("decode localStorage: %w", err)
	}
	var entries [][]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return models.TokenSet{}, fmt.Errorf("decode localStorage: %w", err)
	}

	raw := make([]*http.Cookie, 0, len(entries))
	for _, kv := range entries {
		if len(kv) != 2 {
			continue
		}
		raw = append(raw, &http.Cookie{Name: kv[0], Value: kv[1]})
	}
	return models.NewTokenSet(raw), nil
}
