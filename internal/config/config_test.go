package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewConfigWithDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.True(t, cfg.UseSeasonalModel)
	assert.Equal(t, 366, cfg.ScaleHeightCacheSize)
}

func TestWithEnvironment(t *testing.T) {
	cfg := New(WithEnvironment("development"))

	assert.Equal(t, "development", cfg.Environment)
}

func TestWithLogLevel(t *testing.T) {
	cfg := New(WithLogLevel("debug"))
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)

	cfg = New(WithLogLevel("not-a-level"))
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
}

func TestWithSeasonalModel(t *testing.T) {
	cfg := New(WithSeasonalModel(false))

	assert.False(t, cfg.UseSeasonalModel)
}

func TestWithScaleHeightCacheSize(t *testing.T) {
	cfg := New(WithScaleHeightCacheSize(0))

	assert.Equal(t, 0, cfg.ScaleHeightCacheSize)
}

func TestInitializeLogging(t *testing.T) {
	previous := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(previous)

	cfg := New(WithEnvironment("local"), WithLogLevel("debug"))
	cfg.InitializeLogging()

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("GTHC_SEASONAL", "false")
	t.Setenv("GTHC_SCALE_HEIGHT_CACHE_SIZE", "32")

	cfg := LoadFromEnv()

	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel)
	assert.False(t, cfg.UseSeasonalModel)
	assert.Equal(t, 32, cfg.ScaleHeightCacheSize)
}

func TestLoadFromEnvInvalidValues(t *testing.T) {
	t.Setenv("GTHC_SEASONAL", "maybe")
	t.Setenv("GTHC_SCALE_HEIGHT_CACHE_SIZE", "lots")

	cfg := LoadFromEnv()

	assert.False(t, cfg.UseSeasonalModel)
	assert.Equal(t, 366, cfg.ScaleHeightCacheSize)
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_ENV_VAR", "value")

	assert.Equal(t, "value", getEnvOrDefault("TEST_ENV_VAR", "default"))
	assert.Equal(t, "default", getEnvOrDefault("NON_EXISTENT_VAR", "default"))
}

func TestGetEnvBool(t *testing.T) {
	for _, val := range []string{"true", "1", "yes"} {
		t.Setenv("TEST_BOOL_VAR", val)
		assert.True(t, getEnvBool("TEST_BOOL_VAR", false), val)
	}
	assert.True(t, getEnvBool("NON_EXISTENT_BOOL_VAR", true))
}
