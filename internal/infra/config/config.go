package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"
)

const (
	BackendMemory = "memory"
	BackendSQL    = "sql"
	BackendORM    = "orm"
	BackendMongo  = "mongo"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env              string
	HTTPAddr         string
	StorageBackend   string
	SQLitePath       string
	SQLLog           bool
	MongoURI         string
	MongoDB          string
	KafkaBrokers     []string
	KafkaTopicPrefix string
	IdempotencyTTL   time.Duration
	OutboxRetry      time.Duration
	ShutdownTimeout  time.Duration
}

// Default mirrors Load with an empty environment.
func Default() Config {
	return Config{
		Env:             "dev",
		HTTPAddr:        net.JoinHostPort("127.0.0.1", "8000"),
		StorageBackend:  BackendORM,
		SQLitePath:      "smart_host.db",
		MongoDB:         "smart_host",
		IdempotencyTTL:  24 * time.Hour,
		OutboxRetry:     5 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	def := Default()
	cfg := Config{
		Env:              getEnv("APP_ENV", def.Env),
		StorageBackend:   strings.ToLower(strings.TrimSpace(getEnv("STORAGE_BACKEND", def.StorageBackend))),
		SQLitePath:       getEnv("SQLITE_PATH", def.SQLitePath),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          getEnv("MONGO_DB", def.MongoDB),
		KafkaTopicPrefix: getEnv("KAFKA_TOPIC_PREFIX", ""),
	}
	cfg.HTTPAddr = getEnv("HTTP_ADDR", net.JoinHostPort(getEnv("HOST", "127.0.0.1"), getEnv("PORT", "8000")))

	for _, raw := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker := strings.TrimSpace(raw); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}

	sqlLog, err := parseBoolEnv("SQL_LOG", false)
	if err != nil {
		return Config{}, err
	}
	cfg.SQLLog = sqlLog

	idempotencyTTL, err := parseDurationEnv("IDEMP_TTL", def.IdempotencyTTL)
	if err != nil {
		return Config{}, err
	}
	cfg.IdempotencyTTL = idempotencyTTL

	retry, err := parseDurationEnv("OUTBOX_POLL_INTERVAL", def.OutboxRetry)
	if err != nil {
		return Config{}, err
	}
	cfg.OutboxRetry = retry

	shutdown, err := parseDurationEnv("SHUTDOWN_TIMEOUT", def.ShutdownTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.ShutdownTimeout = shutdown

	switch cfg.StorageBackend {
	case BackendMemory, BackendSQL, BackendORM:
	case BackendMongo:
		if cfg.MongoURI == "" {
			return Config{}, fmt.Errorf("MONGO_URI is required for the %s backend", BackendMongo)
		}
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_BACKEND %q: want memory, sql, orm or mongo", cfg.StorageBackend)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

func parseBoolEnv(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "yes", "y", "on":
		return true, nil
	case "0", "f", "false", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s boolean: %q", key, raw)
	}
}
