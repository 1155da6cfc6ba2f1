// Package config provides configuration loading, merging, and validation
// facilities for the forum server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. Defaults are applied after
// merging; only the token signing key has no default and must be supplied.
package config
