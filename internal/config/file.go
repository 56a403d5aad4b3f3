package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout of a configuration file. The same
// structure is read from JSON and YAML.
type fileConfig struct {
	App struct {
		Name    string `json:"name" yaml:"name"`
		Env     string `json:"env" yaml:"env"`
		Version string `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Server struct {
		HTTPAddress        string   `json:"http_address" yaml:"http_address"`
		RequestTimeout     Duration `json:"request_timeout" yaml:"request_timeout"`
		RateLimitPerMinute int      `json:"rate_limit_per_minute" yaml:"rate_limit_per_minute"`
	} `json:"server" yaml:"server"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn" yaml:"dsn"`
			MaxOpenConns int    `json:"max_open_conns" yaml:"max_open_conns"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	JWT struct {
		PrivateKeyPath string   `json:"private_key_path" yaml:"private_key_path"`
		PublicKeyPath  string   `json:"public_key_path" yaml:"public_key_path"`
		AccessExpiry   Duration `json:"access_expiry" yaml:"access_expiry"`
		Issuer         string   `json:"issuer" yaml:"issuer"`
		Audience       string   `json:"audience" yaml:"audience"`
	} `json:"jwt" yaml:"jwt"`

	Log struct {
		Level string `json:"level" yaml:"level"`
	} `json:"log" yaml:"log"`

	Telemetry struct {
		Enabled      bool    `json:"enabled" yaml:"enabled"`
		Exporter     string  `json:"exporter" yaml:"exporter"`
		OTLPEndpoint string  `json:"otlp_endpoint" yaml:"otlp_endpoint"`
		Insecure     bool    `json:"insecure" yaml:"insecure"`
		SampleRate   float64 `json:"sample_rate" yaml:"sample_rate"`
		ServiceName  string  `json:"service_name" yaml:"service_name"`
	} `json:"telemetry" yaml:"telemetry"`

	Redaction struct {
		ExtraKeys []string `json:"extra_keys" yaml:"extra_keys"`
	} `json:"redaction" yaml:"redaction"`
}

// parseFile reads a JSON (.json) or YAML (.yaml, .yml) configuration file.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:    fc.App.Name,
			Env:     fc.App.Env,
			Version: fc.App.Version,
		},
		Server: Server{
			HTTPAddress:        fc.Server.HTTPAddress,
			RequestTimeout:     time.Duration(fc.Server.RequestTimeout),
			RateLimitPerMinute: fc.Server.RateLimitPerMinute,
		},
		Storage: Storage{
			DB: DB{
				DSN:          fc.Storage.DB.DSN,
				MaxOpenConns: fc.Storage.DB.MaxOpenConns,
			},
		},
		JWT: JWT{
			PrivateKeyPath: fc.JWT.PrivateKeyPath,
			PublicKeyPath:  fc.JWT.PublicKeyPath,
			AccessExpiry:   time.Duration(fc.JWT.AccessExpiry),
			Issuer:         fc.JWT.Issuer,
			Audience:       fc.JWT.Audience,
		},
		Log: Log{Level: fc.Log.Level},
		Telemetry: Telemetry{
			Enabled:      fc.Telemetry.Enabled,
			Exporter:     fc.Telemetry.Exporter,
			OTLPEndpoint: fc.Telemetry.OTLPEndpoint,
			Insecure:     fc.Telemetry.Insecure,
			SampleRate:   fc.Telemetry.SampleRate,
			ServiceName:  fc.Telemetry.ServiceName,
		},
		Redaction: Redaction{ExtraKeys: fc.Redaction.ExtraKeys},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings
// like "1h" or "30s" as well as from plain nanosecond numbers.
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
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
