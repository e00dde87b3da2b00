package config

import "os"

// Config holds application configuration
type Config struct {
	SQLitePath      string
	ServerPort      string
	FrontendURL     string
	OpenAIKey       string
	AIModel         string
	AIBaseURL       string
	RateLimit       string
	EnableHSTS      bool
	OTELEnabled     bool
	OTELEndpoint    string
	ServerDebugMode bool
}

// Load loads configuration from environment variables. Every value has a
// local-first default so the server starts with no environment at all; the
// assistant stays disabled until OPENAI_API_KEY is provided.
func Load() (*Config, error) {
	cfg := &Config{
		SQLitePath:      getEnv("SQLITE_PATH", "petminder.db"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
		OpenAIKey:       getEnv("OPENAI_API_KEY", ""),
		AIModel:         getEnv("AI_MODEL", ""),
		AIBaseURL:       getEnv("AI_BASE_URL", ""),
		RateLimit:       getEnv("RATE_LIMIT", "5-S"),
		EnableHSTS:      getEnvBool("ENABLE_HSTS", false),
		OTELEnabled:     getEnvBool("OTEL_ENABLED", false),
		OTELEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServerDebugMode: getEnvBool("SERVER_DEBUG_MODE", false),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
