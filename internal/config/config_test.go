package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "API_PREFIX", "CORS_ORIGINS", "DB_DRIVER", "DATABASE_URL",
		"GEMINI_API_KEY", "LLM_API_KEY", "LLM_PROVIDER", "LLM_TIMEOUT", "ROADMAP_STRICT_SCHEMA", "LOG_MODE",
	} {
		t.Setenv(key, "")
	}

	cfg, _ := Load()

	if cfg.Server.Port != "8001" || cfg.Server.APIPrefix != "/api" {
		t.Fatalf("server: got=%+v", cfg.Server)
	}
	if !reflect.DeepEqual(cfg.Server.CORSOrigins, []string{"*"}) {
		t.Fatalf("cors origins: got=%v", cfg.Server.CORSOrigins)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Fatalf("db driver: want=%q got=%q", DriverPostgres, cfg.Database.Driver)
	}
	if cfg.LLM.Provider != ProviderGemini || cfg.LLM.APIKey != "" {
		t.Fatalf("llm: got=%+v", cfg.LLM)
	}
	if cfg.LLM.Timeout != 60*time.Second {
		t.Fatalf("llm timeout: want=60s got=%s", cfg.LLM.Timeout)
	}
	if !cfg.Generator.StrictSchema {
		t.Fatalf("strict schema: want=true")
	}
	if cfg.Log.Mode != "development" {
		t.Fatalf("log mode: want=development got=%q", cfg.Log.Mode)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("LLM_API_KEY", "alias-key")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("LLM_PROVIDER", "ADK")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("ROADMAP_STRICT_SCHEMA", "false")

	cfg, _ := Load()

	if want := []string{"https://a.example", "https://b.example"}; !reflect.DeepEqual(cfg.Server.CORSOrigins, want) {
		t.Fatalf("cors origins: want=%v got=%v", want, cfg.Server.CORSOrigins)
	}
	if cfg.LLM.APIKey != "alias-key" {
		t.Fatalf("api key alias: got=%q", cfg.LLM.APIKey)
	}
	if cfg.LLM.Provider != ProviderADK {
		t.Fatalf("provider: got=%q", cfg.LLM.Provider)
	}
	if cfg.LLM.Timeout != 5*time.Second {
		t.Fatalf("timeout: got=%s", cfg.LLM.Timeout)
	}
	if cfg.LLM.Temperature < 0.19 || cfg.LLM.Temperature > 0.21 {
		t.Fatalf("temperature: got=%v", cfg.LLM.Temperature)
	}
	if cfg.Generator.StrictSchema {
		t.Fatalf("strict schema: want=false")
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	tests := []struct {
		name string
		db   DatabaseConfig
		want string
	}{
		{
			name: "explicit url wins",
			db:   DatabaseConfig{Driver: DriverPostgres, URL: "postgres://u:p@db:5432/x", Host: "ignored"},
			want: "postgres://u:p@db:5432/x",
		},
		{
			name: "postgres parts",
			db:   DatabaseConfig{Driver: DriverPostgres, Host: "localhost", Port: "5432", User: "postgres", Password: "secret", DBName: "career_mentor"},
			want: "host=localhost port=5432 user=postgres password=secret dbname=career_mentor sslmode=disable",
		},
		{
			name: "sqlite path",
			db:   DatabaseConfig{Driver: DriverSQLite, SQLitePath: "mentor.db"},
			want: "mentor.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Database: tt.db}
			if got := cfg.GetDatabaseDSN(); got != tt.want {
				t.Fatalf("dsn: want=%q got=%q", tt.want, got)
			}
		})
	}
}

func TestInitDatabaseRejectsUnknownDriver(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Driver: "mongodb"}}
	if _, err := InitDatabase(cfg); err == nil {
		t.Fatalf("InitDatabase: want error for unknown driver")
	}
}
