package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DB_HOST", "R2_ACCOUNT_ID", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY",
		"R2_BUCKET_NAME", "PRESIGN_EXPIRY", "GEMINI_API_KEY", "QDRANT_URL",
		"CORPUS_BATCH_SIZE", "CORPUS_RETAIN_CAP",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "equihire-secure", cfg.Storage.Bucket)
	assert.Equal(t, 300*time.Second, cfg.Storage.PresignExpiry)
	assert.Equal(t, 3000, cfg.Corpus.BatchSize)
	assert.Equal(t, 5000, cfg.Corpus.RetainCap)

	assert.False(t, cfg.Database.Enabled())
	assert.False(t, cfg.Storage.Enabled())
	assert.False(t, cfg.Gemini.Enabled())
	assert.False(t, cfg.Qdrant.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("R2_ACCOUNT_ID", "acct")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("PRESIGN_EXPIRY", "2m")
	t.Setenv("CORPUS_BATCH_SIZE", "10")
	t.Setenv("DB_HOST", "db.internal")

	cfg := Load()

	assert.True(t, cfg.Storage.Enabled())
	assert.Equal(t, "https://acct.r2.cloudflarestorage.com", cfg.Storage.EndpointURL())
	assert.Equal(t, 2*time.Minute, cfg.Storage.PresignExpiry)
	assert.Equal(t, 10, cfg.Corpus.BatchSize)
	assert.True(t, cfg.Database.Enabled())
	assert.Contains(t, cfg.GetDatabaseDSN(), "host=db.internal")
}

func TestGetEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	t.Setenv("SOME_DURATION", "soon")

	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))
	assert.Equal(t, int64(9), getEnvAsInt64("SOME_INT", 9))
	assert.Equal(t, 5*time.Second, getEnvAsDuration("SOME_DURATION", "5s"))
}
