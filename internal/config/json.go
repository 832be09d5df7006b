package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON config files.
type StructuredJSONConfig struct {
	App struct {
		Version     string `json:"version"`
		Environment string `json:"environment"`
		LogLevel    string `json:"log_level"`
	} `json:"app,omitempty"`

	Auth struct {
		Secret   string   `json:"secret"`
		Issuer   string   `json:"issuer"`
		Audience string   `json:"audience"`
		TTL      Duration `json:"ttl"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			URL          string `json:"url"`
			MaxOpenConns int    `json:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns"`
		} `json:"db,omitempty"`

		PDF struct {
			Store      string `json:"store"`
			OutputDir  string `json:"output_dir"`
			S3Bucket   string `json:"s3_bucket"`
			S3Region   string `json:"s3_region"`
			S3Endpoint string `json:"s3_endpoint"`
		} `json:"pdf,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		FrontendAddress string   `json:"frontend_address"`
		PublicAPIBase   string   `json:"public_api_base"`
		CORSOrigins     []string `json:"cors_origins"`
		RequestTimeout  Duration `json:"request_timeout"`
		MaxUploadBytes  int64    `json:"max_upload_bytes"`
	} `json:"server,omitempty"`

	Workers struct {
		AuditInterval Duration `json:"audit_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:     jsonCfg.App.Version,
			Environment: jsonCfg.App.Environment,
			LogLevel:    jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			Secret:   jsonCfg.Auth.Secret,
			Issuer:   jsonCfg.Auth.Issuer,
			Audience: jsonCfg.Auth.Audience,
			TTL:      time.Duration(jsonCfg.Auth.TTL),
		},
		Storage: Storage{
			DB: DB{
				URL:          jsonCfg.Storage.DB.URL,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns: jsonCfg.Storage.DB.MaxIdleConns,
			},
			PDF: PDF{
				Store:      jsonCfg.Storage.PDF.Store,
				OutputDir:  jsonCfg.Storage.PDF.OutputDir,
				S3Bucket:   jsonCfg.Storage.PDF.S3Bucket,
				S3Region:   jsonCfg.Storage.PDF.S3Region,
				S3Endpoint: jsonCfg.Storage.PDF.S3Endpoint,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			FrontendAddress: jsonCfg.Server.FrontendAddress,
			PublicAPIBase:   jsonCfg.Server.PublicAPIBase,
			CORSOrigins:     jsonCfg.Server.CORSOrigins,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadBytes:  jsonCfg.Server.MaxUploadBytes,
		},
		Workers: Workers{
			AuditInterval: time.Duration(jsonCfg.Workers.AuditInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
