package config

import "errors"

// Errors returned while loading and resolving configuration layers.
var (
	// ErrMissingFile indicates a configuration layer file that could not
	// be read. The wrapped message names the file.
	ErrMissingFile = errors.New("configuration file not readable")
	// ErrParse indicates a configuration layer that is not valid YAML.
	// The wrapped message names the file.
	ErrParse = errors.New("malformed configuration file")
	// ErrInvalidSettings indicates runtime settings that fail validation
	// after merging (for example, an empty portal address).
	ErrInvalidSettings = errors.New("invalid runtime settings")
)
