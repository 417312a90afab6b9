// Package main is the lahella CLI: it publishes and maintains hobby course
// listings on the hallinta.lahella.fi portal from YAML documents.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"lahella/internal/activity"
	"lahella/internal/adapter"
	"lahella/internal/config"
	"lahella/internal/logger"
	"lahella/internal/service"
	"lahella/internal/session"
	"lahella/models"
)

// Global flags. Zero values mean "not set on the command line" and fall
// through to the LAHELLA_* environment variables and the built-in defaults.
var (
	authFile       string
	defaultsFile   string
	baseURL        string
	requestTimeout time.Duration
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "lahella",
	Short: "Publish and maintain hobby course listings on the Lähellä portal",
	Long: `lahella automates hallinta.lahella.fi: it validates course listings
written as YAML documents, previews the exact payloads, and creates or
updates the listings over the portal's REST API.

Course data is assembled from up to three YAML layers (course file,
shared defaults file, auth file) merged field by field with
course > defaults > auth precedence. The session captured by
'lahella login' is stored in the auth file and refreshed across
invocations until the portal forces a new sign-in.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&authFile, "auth", "", `auth layer file with credentials, group and session (default "auth.yaml")`)
	rootCmd.PersistentFlags().StringVar(&defaultsFile, "defaults", "", `shared defaults layer file, skipped when absent (default "defaults.yaml")`)
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "portal address (default "+config.DefaultBaseURL+")")
	rootCmd.PersistentFlags().DurationVar(&requestTimeout, "timeout", 0, "portal request timeout (default 30s)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(loginCmd)
}

// loadSettings merges the command-line flags, the LAHELLA_* environment
// variables and the built-in defaults into the effective runtime settings.
func loadSettings() (*config.Settings, error) {
	flags := &config.Settings{
		AuthFile:       authFile,
		DefaultsFile:   defaultsFile,
		BaseURL:        baseURL,
		RequestTimeout: requestTimeout,
		LoginTimeout:   loginTimeout,
		ShowBrowser:    showBrowser,
		Verbose:        verbose,
	}

	return config.GetSettings(flags)
}

// applyBaseURL lets auth.base_url override the portal address when neither
// the --base-url flag nor LAHELLA_BASE_URL picked one explicitly.
func applyBaseURL(st *config.Settings, doc *models.Document) {
	if baseURL != "" || os.Getenv("LAHELLA_BASE_URL") != "" {
		return
	}
	if doc != nil && doc.Auth.BaseURL != "" {
		st.BaseURL = doc.Auth.BaseURL
	}
}

// resolveCourse assembles the effective document for one course file.
func resolveCourse(path string, st *config.Settings) (*models.Document, error) {
	return config.NewResolver().
		WithCourse(path).
		WithDefaults(st.DefaultsFile).
		WithAuth(st.AuthFile).
		Resolve()
}

// resolveAuth assembles the document layers of commands that take no
// course file, such as pull.
func resolveAuth(st *config.Settings) (*models.Document, error) {
	return config.NewResolver().
		WithDefaults(st.DefaultsFile).
		WithAuth(st.AuthFile).
		Resolve()
}

// buildServices wires the platform client and, when withSession is set, the
// session manager persisted in the auth file. Dry-run create passes false:
// it must work before any session exists and never touches the network.
func buildServices(st *config.Settings, group string, withSession bool, log *logger.Logger) (*service.Services, error) {
	platform, err := adapter.NewHTTPPlatform(st, log)
	if err != nil {
		return nil, err
	}

	var sessions service.SessionKeeper
	if withSession {
		manager, err := session.NewManager(st.AuthFile, platform, log)
		if err != nil {
			return nil, err
		}
		sessions = manager
	}

	return service.NewServices(platform, sessions, st.BaseURL, group, log), nil
}

// commandContext is cancelled on Ctrl-C or SIGTERM so an in-flight portal
// call aborts cleanly.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// printJSON writes v as indented JSON. HTML escaping is off: listing
// descriptions carry markup and the previews must stay readable.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(v)
}

// printYAML writes v as YAML with the two-space indent the document files
// use themselves.
func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func printChanges(w io.Writer, changes []activity.Change) {
	for _, change := range changes {
		fmt.Fprintln(w, change.String())
	}
}
