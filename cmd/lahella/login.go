package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lahella/internal/browser"
	"lahella/internal/config"
	"lahella/internal/logger"
	"lahella/internal/session"
	"lahella/internal/tui"
	"lahella/models"
)

var (
	showBrowser  bool
	loginTimeout time.Duration
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the portal and capture a session",
	Long: `Drives a Chromium through the portal's login page, captures the session
cookies the web app stores, and persists them in the auth file for the
other commands to reuse.

Credentials come from auth.email / auth.password in the auth file; when
they are absent an interactive prompt asks for them. Use --show-browser
when the portal presents a captcha or an MFA challenge that needs a
human.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().BoolVar(&showBrowser, "show-browser", false, "run the browser visibly instead of headless")
	loginCmd.Flags().DurationVar(&loginTimeout, "login-timeout", 0, "time to wait for the post-login redirect (default 30s)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	st, err := loadSettings()
	if err != nil {
		return err
	}
	log := logger.NewLogger("login", st.Verbose)

	// A first run has no auth file yet; the prompt covers the credentials
	// and session.Save creates the file.
	var creds models.Credentials
	authDoc, err := config.LoadDocument(st.AuthFile)
	switch {
	case err == nil:
		creds = models.Credentials{Email: authDoc.Auth.Email, Password: authDoc.Auth.Password}
	case errors.Is(err, config.ErrMissingFile):
		log.Debug().Str("file", st.AuthFile).Msg("no auth file yet")
	default:
		return err
	}
	applyBaseURL(st, authDoc)

	if !creds.Complete() {
		creds, err = tui.PromptCredentials()
		if err != nil {
			return err
		}
	}

	ctx, cancel := commandContext()
	defer cancel()

	tokens, err := browser.Login(ctx, creds, browser.Options{
		BaseURL:  st.BaseURL,
		Headless: !st.ShowBrowser,
		Timeout:  st.LoginTimeout,
	}, log)
	if err != nil {
		return err
	}

	if err := session.Save(st.AuthFile, tokens); err != nil {
		return fmt.Errorf("persist captured session: %w", err)
	}

	event := log.Info().Str("file", st.AuthFile)
	if expires := tokens.ExpiresAt(); !expires.IsZero() {
		event = event.Time("expires", expires)
	}
	event.Msg("session captured")

	fmt.Fprintf(cmd.OutOrStdout(), "Signed in. Session saved to %s.\n", st.AuthFile)

	return nil
}
