package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Stripe    StripeConfig
	Checkout  CheckoutConfig
	Firebase  FirebaseConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string

	// BasePath is the prefix all payment routes are mounted under.
	BasePath string

	// PublicURL is the externally reachable base URL, used for onboarding
	// refresh/return links and checkout redirects.
	PublicURL string `validate:"required,url"`
}

type StripeConfig struct {
	SecretKey string `validate:"required"`
}

type CheckoutConfig struct {
	Currency string
}

type FirebaseConfig struct {
	CredentialsFile string

	ProjectID           string
	PrivateKeyID        string
	PrivateKey          string
	ClientEmail         string
	ClientID            string
	AuthURI             string
	TokenURI            string
	AuthProviderCertURL string
	ClientCertURL       string
}

type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OTLPEndpoint string
	MetricsPort  string
}

// envKeys lists every environment variable the service reads, so viper binds
// them all whether or not a config file is present.
var envKeys = []string{
	"PORT", "HOST", "APP_ENV", "BASE_PATH", "API_URL",
	"STRIPE_PRIVATE_KEY", "CHECKOUT_CURRENCY",
	"FIREBASE_CREDENTIALS_FILE",
	"FIREBASE_PROJECT_ID", "FIREBASE_PRIVATE_KEY_ID", "FIREBASE_PRIVATE_KEY",
	"FIREBASE_CLIENT_EMAIL", "FIREBASE_CLIENT_ID",
	"FIREBASE_AUTH_URI", "FIREBASE_TOKEN_URI",
	"FIREBASE_AUTH_PROVIDER_X509_CERT_URL", "FIREBASE_CLIENT_X509_CERT_URL",
	"OTEL_ENABLED", "OTEL_SERVICE_NAME", "OTEL_EXPORTER_ENDPOINT", "OTEL_METRICS_PORT",
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	v.SetDefault("PORT", "4000")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CHECKOUT_CURRENCY", "usd")
	v.SetDefault("OTEL_SERVICE_NAME", "fastpay-api")
	v.SetDefault("OTEL_EXPORTER_ENDPOINT", "localhost:4317")
	v.SetDefault("OTEL_METRICS_PORT", "9090")

	cfg := &Config{
		Server: ServerConfig{
			Port:        v.GetString("PORT"),
			Host:        v.GetString("HOST"),
			Environment: v.GetString("APP_ENV"),
			BasePath:    v.GetString("BASE_PATH"),
			PublicURL:   v.GetString("API_URL"),
		},
		Stripe: StripeConfig{
			SecretKey: v.GetString("STRIPE_PRIVATE_KEY"),
		},
		Checkout: CheckoutConfig{
			Currency: v.GetString("CHECKOUT_CURRENCY"),
		},
		Firebase: FirebaseConfig{
			CredentialsFile:     v.GetString("FIREBASE_CREDENTIALS_FILE"),
			ProjectID:           v.GetString("FIREBASE_PROJECT_ID"),
			PrivateKeyID:        v.GetString("FIREBASE_PRIVATE_KEY_ID"),
			PrivateKey:          v.GetString("FIREBASE_PRIVATE_KEY"),
			ClientEmail:         v.GetString("FIREBASE_CLIENT_EMAIL"),
			ClientID:            v.GetString("FIREBASE_CLIENT_ID"),
			AuthURI:             v.GetString("FIREBASE_AUTH_URI"),
			TokenURI:            v.GetString("FIREBASE_TOKEN_URI"),
			AuthProviderCertURL: v.GetString("FIREBASE_AUTH_PROVIDER_X509_CERT_URL"),
			ClientCertURL:       v.GetString("FIREBASE_CLIENT_X509_CERT_URL"),
		},
		Telemetry: TelemetryConfig{
			Enabled:      v.GetBool("OTEL_ENABLED"),
			ServiceName:  v.GetString("OTEL_SERVICE_NAME"),
			OTLPEndpoint: v.GetString("OTEL_EXPORTER_ENDPOINT"),
			MetricsPort:  v.GetString("OTEL_METRICS_PORT"),
		},
	}

	if cfg.Server.PublicURL == "" {
		cfg.Server.PublicURL = "http://localhost:" + cfg.Server.Port
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// The document store needs either a credentials file or the full set of
	// service-account fields.
	if cfg.Firebase.CredentialsFile == "" {
		if cfg.Firebase.ProjectID == "" || cfg.Firebase.PrivateKey == "" || cfg.Firebase.ClientEmail == "" {
			return nil, fmt.Errorf("FIREBASE_CREDENTIALS_FILE or FIREBASE_PROJECT_ID/FIREBASE_PRIVATE_KEY/FIREBASE_CLIENT_EMAIL are required")
		}
	}

	return cfg, nil
}
