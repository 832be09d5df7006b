// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// bracket tool server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the reported version
	// and the log level.
	App App

	// Auth holds JWT signing and validation parameters.
	Auth Auth `envPrefix:"JWT_"`

	// Storage holds configuration for all persistence backends: the
	// relational database and the PDF report store.
	Storage Storage

	// Server holds listener addresses, CORS and request limits.
	Server Server

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by /health and stamped into every PDF.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`

	// Environment is "development" or "production". Production refuses to
	// start with the default JWT secret.
	// Env: APP_ENV
	Environment string `env:"APP_ENV"`

	// LogLevel is a zerolog level name (debug, info, warn, ...).
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Auth holds JWT parameters.
type Auth struct {
	// Secret is the HMAC key used to sign and verify access tokens.
	// Env: JWT_SECRET
	Secret string `env:"SECRET"`

	// Issuer is the "iss" claim of issued tokens.
	// Env: JWT_ISSUER
	Issuer string `env:"ISSUER"`

	// Audience is the "aud" claim of issued tokens.
	// Env: JWT_AUDIENCE
	Audience string `env:"AUDIENCE"`

	// TTL is how long an access token stays valid (e.g. "24h").
	// Env: JWT_TTL
	TTL time.Duration `env:"TTL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB

	// Postgres holds the discrete connection parts used to build a DSN when
	// DATABASE_URL is not set.
	Postgres Postgres `envPrefix:"POSTGRES_"`

	// PDF holds the report store settings.
	PDF PDF `envPrefix:"PDF_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// URL is the database location: postgres://... or sqlite://path.
	// Env: DATABASE_URL
	URL string `env:"DATABASE_URL"`

	// MaxOpenConns bounds the connection pool.
	// Env: DATABASE_MAX_OPEN_CONNS
	MaxOpenConns int `env:"DATABASE_MAX_OPEN_CONNS"`

	// MaxIdleConns bounds idle pooled connections.
	// Env: DATABASE_MAX_IDLE_CONNS
	MaxIdleConns int `env:"DATABASE_MAX_IDLE_CONNS"`
}

// Postgres holds the parts of a PostgreSQL DSN as provided by the
// container environment.
type Postgres struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Database string `env:"DB"`
}

// PDF holds settings for the report store.
type PDF struct {
	// Store selects the backend: "local" (default) or "s3".
	// Env: PDF_STORE
	Store string `env:"STORE"`

	// OutputDir is the directory for the local backend.
	// Env: PDF_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`

	// S3Bucket, S3Region and S3Endpoint configure the s3 backend. The
	// endpoint is optional and enables S3-compatible services.
	S3Bucket   string `env:"S3_BUCKET"`
	S3Region   string `env:"S3_REGION"`
	S3Endpoint string `env:"S3_ENDPOINT"`
}

// Server holds network, CORS and timeout settings for the inbound
// transport layer.
type Server struct {
	// HTTPAddress is the API listener in "host:port" form (":8000").
	// Env: HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// FrontendAddress is the SPA listener. Empty disables it.
	// Env: FRONTEND_ADDRESS
	FrontendAddress string `env:"FRONTEND_ADDRESS"`

	// PublicAPIBase is the API base URL exposed to the SPA via /config.js.
	// Env: PUBLIC_API_BASE
	PublicAPIBase string `env:"PUBLIC_API_BASE"`

	// CORSOrigins lists allowed browser origins.
	// Env: CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`

	// MaxUploadBytes limits CSV upload bodies.
	// Env: SERVER_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"SERVER_MAX_UPLOAD_BYTES"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// AuditInterval is the period of the PDF integrity audit. Zero keeps
	// the worker disabled.
	// Env: WORKERS_AUDIT_INTERVAL
	AuditInterval time.Duration `env:"AUDIT_INTERVAL"`
}

// GetStructuredConfig loads, merges, defaults and validates the server
// configuration. Sources are consulted in the following priority order
// (the first non-zero value wins):
//  1. Environment variables (after loading a .env file when present)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
