package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/satriahrh/buyer-hash/adapters/hasher"
)

const (
	DebugKey           = "debug"
	HasherBackendKey   = "hasher_backend"
	HTTPAddrKey        = "http_addr"
	JWTSecretKey       = "jwt_secret"
	JWTExpiryKey       = "jwt_expiry"
	APIKeyKey          = "api_key"
	APISecretKey       = "api_secret"
	MaxConcurrentKey   = "max_concurrent"
	ShutdownTimeoutKey = "shutdown_timeout"

	// DefaultJWTSecret is only suitable for local development.
	DefaultJWTSecret = "buyer-hash-dev-secret-change-in-production"
)

type Config struct {
	Debug           bool
	HasherBackend   string
	HTTPAddr        string
	JWTSecret       string
	JWTExpiry       time.Duration
	APIKey          string
	APISecret       string
	MaxConcurrent   int
	ShutdownTimeout time.Duration
}

// New returns a viper instance bound to the process environment with defaults set.
// Keys map to upper-case environment variables, e.g. hasher_backend to HASHER_BACKEND.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(DebugKey, false)
	v.SetDefault(HasherBackendKey, hasher.Keccak256Backend)
	v.SetDefault(HTTPAddrKey, ":8080")
	v.SetDefault(JWTSecretKey, DefaultJWTSecret)
	v.SetDefault(JWTExpiryKey, 24*time.Hour)
	v.SetDefault(APIKeyKey, "")
	v.SetDefault(APISecretKey, "")
	v.SetDefault(MaxConcurrentKey, 10)
	v.SetDefault(ShutdownTimeoutKey, 10*time.Second)
	v.AutomaticEnv()
	return v
}

// LoadDotEnv reads .env files into the environment. Missing files are ignored.
func LoadDotEnv(filenames ...string) {
	_ = gotenv.Load(filenames...)
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Debug:           v.GetBool(DebugKey),
		HasherBackend:   v.GetString(HasherBackendKey),
		HTTPAddr:        v.GetString(HTTPAddrKey),
		JWTSecret:       v.GetString(JWTSecretKey),
		JWTExpiry:       v.GetDuration(JWTExpiryKey),
		APIKey:          v.GetString(APIKeyKey),
		APISecret:       v.GetString(APISecretKey),
		MaxConcurrent:   v.GetInt(MaxConcurrentKey),
		ShutdownTimeout: v.GetDuration(ShutdownTimeoutKey),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := hasher.New(c.HasherBackend); err != nil {
		return fmt.Errorf("invalid %s: %w", HasherBackendKey, err)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("%s must not be empty", JWTSecretKey)
	}
	if c.JWTExpiry <= 0 {
		return fmt.Errorf("%s must be positive, got %s", JWTExpiryKey, c.JWTExpiry)
	}
	if c.MaxConcurrent <= 0 {
		return fmt.Errorf("%s must be positive, got %d", MaxConcurrentKey, c.MaxConcurrent)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%s must be positive, got %s", ShutdownTimeoutKey, c.ShutdownTimeout)
	}
	return nil
}
