// Package config provides configuration loading, merging, defaulting and
// validation for the bracket tool server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables, after a .env file is loaded when present
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied after merging, then the result is validated. The
// main entry point is [GetStructuredConfig].
package config
