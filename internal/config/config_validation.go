// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Defaults applied by [StructuredConfig.applyDefaults].
const (
	DefaultVersion        = "0.1.0"
	DefaultEnvironment    = EnvDevelopment
	DefaultJWTSecret      = "change_me"
	DefaultJWTIssuer      = "mep-bracket-tool"
	DefaultJWTAudience    = "mep-bracket-tool-users"
	DefaultJWTTTL         = 24 * time.Hour
	DefaultHTTPAddress    = ":8000"
	DefaultCORSOrigin     = "http://localhost:3000"
	DefaultDatabaseURL    = "sqlite://./dev.db"
	DefaultPDFOutputDir   = "/data/pdfs"
	DefaultRequestTimeout = 60 * time.Second
	DefaultMaxUploadBytes = 10 << 20
	DefaultMaxOpenConns   = 10
	DefaultMaxIdleConns   = 5
	DefaultPostgresHost   = "db"
	DefaultPostgresPort   = 5432
	DefaultPostgresUser   = "mep"
	DefaultPostgresDB     = "mep"
	DefaultPublicAPIBase  = "/api"
	DefaultPDFStore       = PDFStoreLocal
)

// Deployment environments.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// PDF store backends.
const (
	PDFStoreLocal = "local"
	PDFStoreS3    = "s3"
)

// Database drivers resolved from the database URL scheme.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// applyDefaults fills every zero field that has a documented default.
// When no DATABASE_URL is given but POSTGRES_PASSWORD is, the URL is
// assembled from the POSTGRES_* parts.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = DefaultEnvironment
	}

	if cfg.Auth.Secret == "" {
		cfg.Auth.Secret = DefaultJWTSecret
	}
	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = DefaultJWTIssuer
	}
	if cfg.Auth.Audience == "" {
		cfg.Auth.Audience = DefaultJWTAudience
	}
	if cfg.Auth.TTL == 0 {
		cfg.Auth.TTL = DefaultJWTTTL
	}

	if cfg.Storage.DB.URL == "" {
		if cfg.Storage.Postgres.Password != "" {
			cfg.Storage.DB.URL = cfg.Storage.Postgres.url()
		} else {
			cfg.Storage.DB.URL = DefaultDatabaseURL
		}
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = DefaultMaxOpenConns
	}
	if cfg.Storage.DB.MaxIdleConns == 0 {
		cfg.Storage.DB.MaxIdleConns = DefaultMaxIdleConns
	}

	if cfg.Storage.PDF.Store == "" {
		cfg.Storage.PDF.Store = DefaultPDFStore
	}
	if cfg.Storage.PDF.OutputDir == "" {
		cfg.Storage.PDF.OutputDir = DefaultPDFOutputDir
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.PublicAPIBase == "" {
		cfg.Server.PublicAPIBase = DefaultPublicAPIBase
	}
	cfg.Server.CORSOrigins = cleanOrigins(cfg.Server.CORSOrigins)
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{DefaultCORSOrigin}
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = DefaultMaxUploadBytes
	}
}

func (p Postgres) url() string {
	host := p.Host
	if host == "" {
		host = DefaultPostgresHost
	}
	port := p.Port
	if port == 0 {
		port = DefaultPostgresPort
	}
	user := p.User
	if user == "" {
		user = DefaultPostgresUser
	}
	db := p.Database
	if db == "" {
		db = DefaultPostgresDB
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, p.Password),
		Host:     net.JoinHostPort(host, strconv.Itoa(port)),
		Path:     "/" + db,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func cleanOrigins(origins []string) []string {
	cleaned := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			cleaned = append(cleaned, o)
		}
	}
	return cleaned
}

// Driver returns the database driver selected by the URL scheme and the
// connection string that driver expects.
//
//	postgres://u:p@h/db  -> "postgres", "postgres://u:p@h/db"
//	sqlite://./dev.db    -> "sqlite", "./dev.db"
//	sqlite:///data/x.db  -> "sqlite", "/data/x.db"
func (d DB) Driver() (driver, dsn string, err error) {
	scheme, rest, ok := strings.Cut(d.URL, "://")
	if !ok {
		return "", "", fmt.Errorf("%w: %q has no scheme", ErrInvalidStorageConfigs, d.URL)
	}

	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return DriverPostgres, d.URL, nil
	case "sqlite", "sqlite3":
		// sqlite:///./dev.db is the relative form some tools emit.
		if strings.HasPrefix(rest, "/./") {
			rest = rest[1:]
		}
		if rest == "" {
			return "", "", fmt.Errorf("%w: empty sqlite path", ErrInvalidStorageConfigs)
		}
		return DriverSQLite, rest, nil
	default:
		return "", "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidStorageConfigs, scheme)
	}
}

// IsDefaultSecret reports whether the JWT secret is the built-in placeholder.
func (a Auth) IsDefaultSecret() bool {
	return a.Secret == DefaultJWTSecret
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}

	if cfg.Auth.Secret == "" || cfg.Auth.Issuer == "" || cfg.Auth.TTL <= 0 {
		return ErrInvalidAuthConfigs
	}
	if cfg.App.Environment == EnvProduction && cfg.Auth.IsDefaultSecret() {
		return fmt.Errorf("%w: JWT_SECRET must be set in production", ErrInvalidAuthConfigs)
	}

	if _, _, err := cfg.Storage.DB.Driver(); err != nil {
		return err
	}

	switch cfg.Storage.PDF.Store {
	case PDFStoreLocal:
		if cfg.Storage.PDF.OutputDir == "" {
			return fmt.Errorf("%w: empty PDF output dir", ErrInvalidStorageConfigs)
		}
	case PDFStoreS3:
		if cfg.Storage.PDF.S3Bucket == "" {
			return fmt.Errorf("%w: PDF_S3_BUCKET is required for the s3 store", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown PDF store %q", ErrInvalidStorageConfigs, cfg.Storage.PDF.Store)
	}

	if cfg.Server.MaxUploadBytes < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.AuditInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
