package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "HOST", "PORT", "HTTP_ADDR", "STORAGE_BACKEND", "SQLITE_PATH", "SQL_LOG",
		"MONGO_URI", "MONGO_DB", "KAFKA_BROKERS", "KAFKA_TOPIC_PREFIX", "IDEMP_TTL", "OUTBOX_POLL_INTERVAL", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "127.0.0.1:8000", cfg.HTTPAddr)
	assert.Equal(t, BackendORM, cfg.StorageBackend)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", " SQL ")
	t.Setenv("SQL_LOG", "yes")
	t.Setenv("KAFKA_BROKERS", "k1:9092, ,k2:9092")
	t.Setenv("IDEMP_TTL", "90m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTPAddr)
	assert.Equal(t, BackendSQL, cfg.StorageBackend)
	assert.True(t, cfg.SQLLog)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 90*time.Minute, cfg.IdempotencyTTL)

	t.Setenv("HTTP_ADDR", ":8081")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.HTTPAddr)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"STORAGE_BACKEND": "redis"}},
		{"mongo without uri", map[string]string{"STORAGE_BACKEND": "mongo"}},
		{"bad duration", map[string]string{"IDEMP_TTL": "soon"}},
		{"bad shutdown", map[string]string{"SHUTDOWN_TIMEOUT": "5"}},
		{"bad bool", map[string]string{"SQL_LOG": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadMongo(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "mongo")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendMongo, cfg.StorageBackend)
	assert.Equal(t, "smart_host", cfg.MongoDB)
}
