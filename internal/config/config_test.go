package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.SQLitePath != "petminder.db" {
		t.Errorf("Expected default SQLitePath 'petminder.db', got %q", cfg.SQLitePath)
	}
	if cfg.ServerPort != "8080" {
		t.Errorf("Expected default ServerPort '8080', got %q", cfg.ServerPort)
	}
	if cfg.FrontendURL != "http://localhost:3000" {
		t.Errorf("Expected default FrontendURL 'http://localhost:3000', got %q", cfg.FrontendURL)
	}
	if cfg.RateLimit != "5-S" {
		t.Errorf("Expected default RateLimit '5-S', got %q", cfg.RateLimit)
	}
	if cfg.OTELEnabled {
		t.Error("Expected OTEL disabled by default")
	}
	if cfg.ServerDebugMode {
		t.Error("Expected debug mode disabled by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SQLITE_PATH", "/tmp/pets.db")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("AI_MODEL", "gpt-4o-mini")
	t.Setenv("ENABLE_HSTS", "true")
	t.Setenv("OTEL_ENABLED", "1")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.SQLitePath != "/tmp/pets.db" {
		t.Errorf("Expected SQLitePath '/tmp/pets.db', got %q", cfg.SQLitePath)
	}
	if cfg.ServerPort != "9090" {
		t.Errorf("Expected ServerPort '9090', got %q", cfg.ServerPort)
	}
	if cfg.OpenAIKey != "sk-test" {
		t.Errorf("Expected OpenAIKey 'sk-test', got %q", cfg.OpenAIKey)
	}
	if cfg.AIModel != "gpt-4o-mini" {
		t.Errorf("Expected AIModel 'gpt-4o-mini', got %q", cfg.AIModel)
	}
	if !cfg.EnableHSTS {
		t.Error("Expected EnableHSTS true")
	}
	if !cfg.OTELEnabled {
		t.Error("Expected OTELEnabled true")
	}
	if cfg.OTELEndpoint != "localhost:4318" {
		t.Errorf("Expected OTELEndpoint 'localhost:4318', got %q", cfg.OTELEndpoint)
	}
}

func TestGetEnvBoolVariants(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"banana", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("PETMINDER_TEST_BOOL", tt.value)
			if got := getEnvBool("PETMINDER_TEST_BOOL", false); got != tt.want {
				t.Errorf("getEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
