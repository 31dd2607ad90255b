package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Storage       StorageConfig
	Auth          AuthConfig
	ReCAPTCHA     ReCAPTCHAConfig
	Webhooks      WebhooksConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
	Cache         CacheConfig
	Session       SessionConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	BaseURL        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	URL         string
	MaxConns    int32
	MinConns    int32
	WorkOffline bool
}

type StorageConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Endpoint        string
	Region          string
	PublicBaseURL   string
}

type AuthConfig struct {
	FreelancersAPIToken        string
	FreelancersAPITokenPartner string
	InternalFreelancersAPI     string
}

type ReCAPTCHAConfig struct {
	Enabled   bool
	SecretKey string
	SiteKey   string
}

type WebhooksConfig struct {
	RegistrationWebhookURL string
}

type LoggingConfig struct {
	Level string
}

type ObservabilityConfig struct {
	OTLPEndpoint      string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

type CacheConfig struct {
	FreelancerTTLSeconds    int  // Freelancer cache TTL in seconds
	DisableFreelancersCache bool // Experimental: disable cache and read from DB on every request
}

type SessionConfig struct {
	JWTSecret           string
	JWTIssuer           string
	SessionTTLHours     int
	ChallengeTTLMinutes int
	CookieDomain        string
	CookieSecure        bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("BASE_URL", "https://gigboard.xyz")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "https://gigboard.xyz,https://www.gigboard.xyz")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "alloy:4318") // OTLP over HTTP
	v.SetDefault("O11Y_BE_SERVICE_NAME", "gigboard-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "gigboard-dev")
	v.SetDefault("O11Y_BE_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "gigboard-api")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,alloc_objects,goroutines,mutex,block")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)
	v.SetDefault("FREELANCER_CACHE_TTL", 600) // 10 minutes in seconds
	v.SetDefault("DISABLE_FREELANCERS_CACHE", false)
	v.SetDefault("RECAPTCHA_ENABLED", false)
	v.SetDefault("STORAGE_REGION", "us-east-1")

	// Session defaults
	v.SetDefault("JWT_ISSUER", "gigboard-api")
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("CHALLENGE_TTL_MINUTES", 5)
	v.SetDefault("COOKIE_DOMAIN", "")
	v.SetDefault("COOKIE_SECURE", true)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	// Parse allowed CORS origins (comma-separated)
	allowedOrigins := []string{}
	originsStr := v.GetString("ALLOWED_CORS_ORIGINS")
	if originsStr != "" {
		for _, origin := range strings.Split(originsStr, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			BaseURL:        v.GetString("BASE_URL"),
			AllowedOrigins: allowedOrigins,
		},
		Database: DatabaseConfig{
			URL:         v.GetString("DATABASE_URL"),
			MaxConns:    20,
			MinConns:    2,
			WorkOffline: v.GetBool("DB_WORK_OFFLINE"),
		},
		Storage: StorageConfig{
			AccessKeyID:     v.GetString("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("STORAGE_SECRET_ACCESS_KEY"),
			BucketName:      v.GetString("STORAGE_BUCKET_NAME"),
			Endpoint:        v.GetString("STORAGE_ENDPOINT"),
			Region:          v.GetString("STORAGE_REGION"),
			PublicBaseURL:   v.GetString("STORAGE_PUBLIC_BASE_URL"),
		},
		Auth: AuthConfig{
			FreelancersAPIToken:        v.GetString("FREELANCERS_API_LIST_AUTH_TOKEN"),
			FreelancersAPITokenPartner: v.GetString("FREELANCERS_API_LIST_AUTH_TOKEN_PARTNER"),
			InternalFreelancersAPI:     v.GetString("INTERNAL_FREELANCERS_API"),
		},
		ReCAPTCHA: ReCAPTCHAConfig{
			Enabled:   v.GetBool("RECAPTCHA_ENABLED"),
			SecretKey: v.GetString("RECAPTCHA_SECRET_KEY"),
			SiteKey:   v.GetString("RECAPTCHA_SITE_KEY"),
		},
		Webhooks: WebhooksConfig{
			RegistrationWebhookURL: v.GetString("REGISTRATION_WEBHOOK_URL"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint:      v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_BE_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_BE_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
		Cache: CacheConfig{
			FreelancerTTLSeconds:    v.GetInt("FREELANCER_CACHE_TTL"),
			DisableFreelancersCache: v.GetBool("DISABLE_FREELANCERS_CACHE"),
		},
		Session: SessionConfig{
			JWTSecret:           v.GetString("JWT_SECRET"),
			JWTIssuer:           v.GetString("JWT_ISSUER"),
			SessionTTLHours:     v.GetInt("SESSION_TTL_HOURS"),
			ChallengeTTLMinutes: v.GetInt("CHALLENGE_TTL_MINUTES"),
			CookieDomain:        v.GetString("COOKIE_DOMAIN"),
			CookieSecure:        v.GetBool("COOKIE_SECURE"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	// Database configuration
	if !c.Database.WorkOffline && c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required when not in offline mode")
	}

	// Authentication tokens
	if c.Auth.FreelancersAPIToken == "" {
		return fmt.Errorf("FREELANCERS_API_LIST_AUTH_TOKEN is required")
	}
	if c.Auth.InternalFreelancersAPI == "" {
		return fmt.Errorf("INTERNAL_FREELANCERS_API is required")
	}

	// ReCAPTCHA configuration
	if c.ReCAPTCHA.Enabled && c.ReCAPTCHA.SecretKey == "" {
		return fmt.Errorf("RECAPTCHA_SECRET_KEY is required when recaptcha is enabled")
	}

	// Server configuration
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
