package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a API listen address in format [host]:port
//	-frontend-address SPA listen address in format [host]:port
//	-d database URL (postgres://... or sqlite://path)
//	-pdf-dir PDF output directory
//	-c/-config json file path with configs
//	-jwt-secret token signing key
//	-jwt-issuer token issuer name
//	-jwt-audience token audience
//	-jwt-ttl token lifetime (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-audit-interval PDF integrity audit period (e.g., "1h")
//	-log-level log level
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress, frontendAddress NetAddress
	var databaseURL string
	var pdfDir string
	var jsonConfigPath string
	var jwtSecret, jwtIssuer, jwtAudience string
	var jwtTTL time.Duration
	var requestTimeout time.Duration
	var auditInterval time.Duration
	var logLevel string

	fs := flag.CommandLine
	fs.Var(&serverAddress, "a", "API net address [host]:port")
	fs.Var(&frontendAddress, "frontend-address", "Frontend net address [host]:port")
	fs.StringVar(&databaseURL, "d", "", "Database URL")
	fs.StringVar(&pdfDir, "pdf-dir", "", "PDF output directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&jwtSecret, "jwt-secret", "", "JWT signing key")
	fs.StringVar(&jwtIssuer, "jwt-issuer", "", "JWT issuer")
	fs.StringVar(&jwtAudience, "jwt-audience", "", "JWT audience")
	fs.DurationVar(&jwtTTL, "jwt-ttl", 0, "JWT lifetime (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&auditInterval, "audit-interval", 0, "PDF integrity audit interval (e.g., 1h)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Auth: Auth{
			Secret:   jwtSecret,
			Issuer:   jwtIssuer,
			Audience: jwtAudience,
			TTL:      jwtTTL,
		},
		Storage: Storage{
			DB: DB{
				URL: databaseURL,
			},
			PDF: PDF{
				OutputDir: pdfDir,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			FrontendAddress: frontendAddress.String(),
			RequestTimeout:  requestTimeout,
		},
		Workers: Workers{
			AuditInterval: auditInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host listens on all interfaces; any other host must
// be "localhost" or a literal IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
