package config

import "time"

const (
	DefaultAppName            = "ERP-IAM API Demo"
	DefaultAppEnv             = "development"
	DefaultAppVersion         = "1.0.0"
	DefaultHTTPAddress        = ":3333"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultRateLimitPerMinute = 600
	DefaultMaxOpenConns       = 10
	DefaultAccessExpiry       = 15 * time.Minute
	DefaultJWTIssuer          = "erpiam-svc"
	DefaultJWTAudience        = "erpiam-apps"
	DefaultPrivateKeyPath     = "keys/private.pem"
	DefaultPublicKeyPath      = "keys/public.pem"
	DefaultLogLevel           = "info"
	DefaultExporter           = "otlp"
	DefaultOTLPEndpoint       = "localhost:4317"
	DefaultSampleRate         = 1.0
	DefaultServiceName        = "erpiam-api"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:    DefaultAppName,
			Env:     DefaultAppEnv,
			Version: DefaultAppVersion,
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			RequestTimeout:     DefaultRequestTimeout,
			RateLimitPerMinute: DefaultRateLimitPerMinute,
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: DefaultMaxOpenConns},
		},
		JWT: JWT{
			PrivateKeyPath: DefaultPrivateKeyPath,
			PublicKeyPath:  DefaultPublicKeyPath,
			AccessExpiry:   DefaultAccessExpiry,
			Issuer:         DefaultJWTIssuer,
			Audience:       DefaultJWTAudience,
		},
		Log: Log{Level: DefaultLogLevel},
		Telemetry: Telemetry{
			Exporter:     DefaultExporter,
			OTLPEndpoint: DefaultOTLPEndpoint,
			SampleRate:   DefaultSampleRate,
			ServiceName:  DefaultServiceName,
		},
	}
}
