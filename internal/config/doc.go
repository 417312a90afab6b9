// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Two kinds of configuration live here:
//
//   - Course documents: layered YAML files (course file, defaults file,
//     auth file) merged field by field with course > defaults > auth
//     precedence via [Resolver].
//   - Runtime settings: file locations and transport knobs assembled from
//     command-line flags, LAHELLA_* environment variables and built-in
//     defaults via [GetSettings].
package config
