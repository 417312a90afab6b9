package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// DefaultBaseURL is the production portal address.
const DefaultBaseURL = "https://hallinta.lahella.fi"

// Settings carries the runtime knobs that live outside the document layers:
// file locations and transport behavior.
//
// Settings are assembled from three sources, highest precedence first:
//  1. Command-line flags
//  2. LAHELLA_* environment variables
//  3. Built-in defaults
type Settings struct {
	// AuthFile is the path of the auth layer (credentials, cookies, group).
	AuthFile string `env:"LAHELLA_AUTH_FILE"`

	// DefaultsFile is the path of the shared defaults layer. The file is
	// optional.
	DefaultsFile string `env:"LAHELLA_DEFAULTS_FILE"`

	// BaseURL is the portal address. The auth file may override it via
	// auth.base_url when neither flag nor env set one explicitly.
	BaseURL string `env:"LAHELLA_BASE_URL"`

	// RequestTimeout bounds every portal API request.
	RequestTimeout time.Duration `env:"LAHELLA_REQUEST_TIMEOUT"`

	// LoginTimeout bounds the browser login's wait for the post-login
	// redirect.
	LoginTimeout time.Duration `env:"LAHELLA_LOGIN_TIMEOUT"`

	// ShowBrowser disables headless mode during login, the escape hatch
	// for captchas and MFA prompts.
	ShowBrowser bool `env:"LAHELLA_SHOW_BROWSER"`

	// Verbose lowers the log level to debug.
	Verbose bool `env:"LAHELLA_VERBOSE"`
}

func defaultSettings() *Settings {
	return &Settings{
		AuthFile:       "auth.yaml",
		DefaultsFile:   "defaults.yaml",
		BaseURL:        DefaultBaseURL,
		RequestTimeout: 30 * time.Second,
		LoginTimeout:   30 * time.Second,
	}
}

// GetSettings builds the effective runtime settings. flags holds the values
// bound to command-line flags and may be nil; unset flag fields are zero and
// fall through to the environment and the defaults.
func GetSettings(flags *Settings) (*Settings, error) {
	envCfg := new(Settings)
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	merged := new(Settings)
	for _, layer := range []*Settings{flags, envCfg, defaultSettings()} {
		if layer == nil {
			continue
		}
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	return merged, merged.validate()
}

func (s *Settings) validate() error {
	if s.BaseURL == "" {
		return fmt.Errorf("%w: base URL is empty", ErrInvalidSettings)
	}
	if s.AuthFile == "" {
		return fmt.Errorf("%w: auth file path is empty", ErrInvalidSettings)
	}
	if s.RequestTimeout <= 0 || s.LoginTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidSettings)
	}
	return nil
}
