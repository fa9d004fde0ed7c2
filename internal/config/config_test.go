package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	// Check defaults are applied
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
	if cfg.LunarTZOffset != 7 {
		t.Errorf("LunarTZOffset = %v, want 7", cfg.LunarTZOffset)
	}
	if cfg.DefaultLang != "vi" {
		t.Errorf("DefaultLang = %q, want %q", cfg.DefaultLang, "vi")
	}
	if cfg.YearCacheSize != 16 {
		t.Errorf("YearCacheSize = %d, want 16", cfg.YearCacheSize)
	}
	if cfg.DayCacheSize != 1024 {
		t.Errorf("DayCacheSize = %d, want 1024", cfg.DayCacheSize)
	}
	if cfg.LunarCacheSize != 2048 {
		t.Errorf("LunarCacheSize = %d, want 2048", cfg.LunarCacheSize)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	// Set custom values
	os.Setenv("PORT", "3000")
	os.Setenv("ENV", "production")
	os.Setenv("DATABASE_PATH", "/data/test.db")
	os.Setenv("API_KEY", "secret-key-123")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("LUNAR_TZ_OFFSET", "8")
	os.Setenv("DEFAULT_LANG", "en")
	os.Setenv("DAY_CACHE_SIZE", "64")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.DatabasePath != "/data/test.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/data/test.db")
	}
	if cfg.APIKey != "secret-key-123" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "secret-key-123")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
	if cfg.LunarTZOffset != 8 {
		t.Errorf("LunarTZOffset = %v, want 8", cfg.LunarTZOffset)
	}
	if cfg.DefaultLang != "en" {
		t.Errorf("DefaultLang = %q, want %q", cfg.DefaultLang, "en")
	}
	if cfg.DayCacheSize != 64 {
		t.Errorf("DayCacheSize = %d, want 64", cfg.DayCacheSize)
	}
}

// validConfig returns a config that passes validation; tests mutate one
// field at a time.
func validConfig() Config {
	return Config{
		Port:           8080,
		Env:            EnvDevelopment,
		DatabasePath:   "./data/test.db",
		LogLevel:       "info",
		LogFormat:      "text",
		LunarTZOffset:  7,
		DefaultLang:    "vi",
		YearCacheSize:  4,
		DayCacheSize:   32,
		LunarCacheSize: 32,
	}
}

func TestConfig_Validate(t *testing.T) {
	// Table-driven tests for validation
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid development config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "valid production config",
			mutate: func(c *Config) {
				c.Env = EnvProduction
				c.APIKey = "required-in-prod"
				c.LogFormat = "json"
			},
			wantErr: false,
		},
		{
			name: "production requires API key",
			mutate: func(c *Config) {
				c.Env = EnvProduction
				c.APIKey = ""
			},
			wantErr: true,
		},
		{
			name:    "invalid port - too low",
			mutate:  func(c *Config) { c.Port = 0 },
			wantErr: true,
		},
		{
			name:    "invalid port - too high",
			mutate:  func(c *Config) { c.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "invalid environment",
			mutate:  func(c *Config) { c.Env = "invalid" },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: true,
		},
		{
			name:    "empty database path",
			mutate:  func(c *Config) { c.DatabasePath = "" },
			wantErr: true,
		},
		{
			name:    "invalid language",
			mutate:  func(c *Config) { c.DefaultLang = "fr" },
			wantErr: true,
		},
		{
			name:    "zero day cache",
			mutate:  func(c *Config) { c.DayCacheSize = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{Env: EnvDevelopment}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}

	cfg.Env = EnvProduction
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{Env: EnvProduction}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}

	cfg.Env = EnvDevelopment
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false")
	}
}

// clearEnv removes all config-related environment variables
func clearEnv() {
	vars := []string{
		"PORT", "ENV", "DATABASE_PATH", "API_KEY",
		"LOG_LEVEL", "LOG_FORMAT",
		"LUNAR_TZ_OFFSET", "DEFAULT_LANG",
		"YEAR_CACHE_SIZE", "DAY_CACHE_SIZE", "LUNAR_CACHE_SIZE",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}
