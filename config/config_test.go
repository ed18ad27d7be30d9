package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ParsesAndFallsBack(t *testing.T) {
	t.Setenv("AI_TEMPERATURE", "warm")
	t.Setenv("AI_RATE_PER_MINUTE", "lots")
	t.Setenv("PLAN_TTL_HOURS", "24")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 0.7, cfg.AITemperature)
	assert.Equal(t, 20, cfg.AIRatePerMinute)
	assert.Equal(t, 24, cfg.PlanTTLHours)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("FITTRACK_TEST_INT", "42")
	t.Setenv("FITTRACK_TEST_FLOAT", "0.25")

	assert.Equal(t, 42, getEnvInt("FITTRACK_TEST_INT", 1))
	assert.Equal(t, 0.25, getEnvFloat("FITTRACK_TEST_FLOAT", 1))
	assert.Equal(t, 7, getEnvInt("FITTRACK_TEST_MISSING_INT", 7))
	assert.Equal(t, "x", getEnv("FITTRACK_TEST_MISSING", "x"))
}
