package config

import (
	"log"     // Standard log package
	"os"      // Environment variables
	"strconv" // Numeric settings

	"github.com/joho/godotenv" // Package to load .env files
)

// Config holds all configuration for the application.
// Values are read from environment variables.
type Config struct {
	ServerPort string // Default 8080

	// Database: DATABASE_URL wins over the Supabase pair
	DatabaseURL        string
	SupabaseURL        string
	SupabaseDBPassword string

	JWTSecret string // Verifies tokens issued by the auth provider

	// AI completion service (OpenAI-compatible)
	AIAPIKey         string // Empty disables the AI path, the local generator answers
	AIBaseURL        string
	AIModel          string
	AITemperature    float64 // Non-zero, plans are not deterministic
	AITimeoutSeconds int
	AIRatePerMinute  int // 0 disables local throttling
	AIBurst          int

	NutritionStrategy string // mifflin_st_jeor or weight_based

	RedisURL         string // Empty keeps latest plans in memory
	PlanTTLHours     int
	CORSAllowOrigins string
}

// LoadConfig reads configuration from environment variables.
// It loads a .env file first if it exists.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file. Ignore error if it doesn't exist.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	// Read environment variables or use defaults
	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseDBPassword: getEnv("SUPABASE_DB_PASSWORD", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AIAPIKey:           getEnv("AI_API_KEY", ""),
		AIBaseURL:          getEnv("AI_BASE_URL", "https://api.openai.com/v1"),
		AIModel:            getEnv("AI_MODEL", "gpt-4o-mini"),
		AITemperature:      getEnvFloat("AI_TEMPERATURE", 0.7),
		AITimeoutSeconds:   getEnvInt("AI_TIMEOUT_SECONDS", 60),
		AIRatePerMinute:    getEnvInt("AI_RATE_PER_MINUTE", 20),
		AIBurst:            getEnvInt("AI_BURST", 5),
		NutritionStrategy:  getEnv("NUTRITION_STRATEGY", "mifflin_st_jeor"),
		RedisURL:           getEnv("REDIS_URL", ""),
		PlanTTLHours:       getEnvInt("PLAN_TTL_HOURS", 168),
		CORSAllowOrigins:   getEnv("CORS_ALLOW_ORIGINS", "*"),
	}

	// Basic validation (ensure critical keys are present). main refuses to
	// start without JWT_SECRET.
	if (cfg.DatabaseURL == "" && (cfg.SupabaseURL == "" || cfg.SupabaseDBPassword == "")) || cfg.JWTSecret == "" {
		log.Println("Warning: One or more critical configuration keys (DATABASE_URL or Supabase URL/DB Password, JWT Secret) are missing.")
	}
	if cfg.AIAPIKey == "" {
		log.Println("Warning: AI_API_KEY is not set, meal plans will come from the local generator only.")
	}

	log.Println("Configuration loaded successfully")
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using fallback '%s'", key, fallback)
	return fallback
}

// getEnvInt is getEnv for integer settings; unparsable values use the fallback.
func getEnvInt(key string, fallback int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		log.Printf("Environment variable %s not set, using fallback '%d'", key, fallback)
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Environment variable %s=%q is not an integer, using fallback '%d'", key, raw, fallback)
		return fallback
	}
	return v
}

// getEnvFloat is getEnv for float settings.
func getEnvFloat(key string, fallback float64) float64 {
	raw, exists := os.LookupEnv(key)
	if !exists {
		log.Printf("Environment variable %s not set, using fallback '%g'", key, fallback)
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Environment variable %s=%q is not a number, using fallback '%g'", key, raw, fallback)
		return fallback
	}
	return v
}
