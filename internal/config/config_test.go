package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "json", cfg.SeedSource)
	assert.Equal(t, "local", cfg.UploadBackend)
	assert.Equal(t, "uploads/posts", cfg.UploadDir)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "https://picsum.photos", cfg.PicsumBaseURL)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.TrustProxy)
	assert.Contains(t, cfg.CorsConfig.AllowedOrigins, "http://localhost:5173")
}

func TestLoad_FromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"PORT=3000\nENV=production\nSEED_SOURCE=database\nTOKEN_TTL=2h\nMAX_UPLOAD_MB=12\nTRUST_PROXY=true\nCORS_ORIGINS=https://a.example, https://b.example\n",
	), 0o644))
	t.Setenv("ENV_FILE", envFile)
	// godotenv never overrides variables that are already set.
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	t.Setenv("ENV", "")
	os.Unsetenv("ENV")
	t.Setenv("SEED_SOURCE", "")
	os.Unsetenv("SEED_SOURCE")
	t.Setenv("TOKEN_TTL", "")
	os.Unsetenv("TOKEN_TTL")
	t.Setenv("MAX_UPLOAD_MB", "")
	os.Unsetenv("MAX_UPLOAD_MB")
	t.Setenv("CORS_ORIGINS", "")
	os.Unsetenv("CORS_ORIGINS")
	t.Setenv("TRUST_PROXY", "")
	os.Unsetenv("TRUST_PROXY")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "database", cfg.SeedSource)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, int64(12), cfg.MaxUploadMB)
	assert.True(t, cfg.TrustProxy)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsConfig.AllowedOrigins)
}

func TestGetters_FallBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "twelve")
	t.Setenv("SOME_DURATION", "soon")
	t.Setenv("SOME_BOOL", "maybe")

	assert.Equal(t, 7, getInt("SOME_INT", 7))
	assert.Equal(t, time.Minute, getDuration("SOME_DURATION", time.Minute))
	assert.True(t, getBool("SOME_BOOL", true))
	assert.Equal(t, "fallback", getEnv("UNSET_FOR_SURE_123", "fallback"))
}
