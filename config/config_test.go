package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name: "development environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "development"},
			},
			expected: true,
		},
		{
			name: "debug gin mode",
			config: &Config{
				Server: ServerConfig{GinMode: "debug"},
			},
			expected: true,
		},
		{
			name: "production environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "production"},
			},
			expected: false,
		},
		{
			name: "release mode",
			config: &Config{
				Server: ServerConfig{GinMode: "release", AppEnv: "production"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.IsDevelopment()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name: "production environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "production"},
			},
			expected: true,
		},
		{
			name: "development environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "development"},
			},
			expected: false,
		},
		{
			name: "empty environment",
			config: &Config{
				Server: ServerConfig{AppEnv: ""},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.IsProduction()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			BaseURL:        "https://gigboard.xyz",
			AllowedOrigins: []string{"https://gigboard.xyz"},
		},
		Database: DatabaseConfig{WorkOffline: true},
		Auth: AuthConfig{
			FreelancersAPIToken:    "public-token",
			InternalFreelancersAPI: "internal-token",
		},
	}
}

func TestConfig_Validate_ServerFields(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		errorMsg string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:     "missing port",
			mutate:   func(c *Config) { c.Server.Port = "" },
			errorMsg: "PORT is required",
		},
		{
			name:     "missing base URL",
			mutate:   func(c *Config) { c.Server.BaseURL = "" },
			errorMsg: "BASE_URL is required",
		},
		{
			name:     "no CORS origins",
			mutate:   func(c *Config) { c.Server.AllowedOrigins = nil },
			errorMsg: "ALLOWED_CORS_ORIGINS is required",
		},
		{
			name:     "online mode without database URL",
			mutate:   func(c *Config) { c.Database.WorkOffline = false },
			errorMsg: "DATABASE_URL is required when not in offline mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errorMsg == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			}
		})
	}
}

func TestLoad_OriginParsing(t *testing.T) {
	os.Clearenv()
	os.Setenv("DB_WORK_OFFLINE", "true")
	os.Setenv("FREELANCERS_API_LIST_AUTH_TOKEN", "public-token")
	os.Setenv("INTERNAL_FREELANCERS_API", "internal-token")
	os.Setenv("ALLOWED_CORS_ORIGINS", "https://gigboard.xyz, https://www.gigboard.xyz,https://staging.gigboard.xyz")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, []string{
		"https://gigboard.xyz",
		"https://www.gigboard.xyz",
		"https://staging.gigboard.xyz",
	}, cfg.Server.AllowedOrigins)
}

func TestLoad_GinModeDefault(t *testing.T) {
	os.Clearenv()
	os.Setenv("DB_WORK_OFFLINE", "true")
	os.Setenv("FREELANCERS_API_LIST_AUTH_TOKEN", "public-token")
	os.Setenv("INTERNAL_FREELANCERS_API", "internal-token")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "production", cfg.Server.AppEnv)
	assert.True(t, cfg.IsProduction())
}
