package app

import (
	"time"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/data/db"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/observability"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/envutil"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/realtime/bus"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/services"
)

type Config struct {
	Port string

	DB db.Config

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisChannel  string

	AggregateConcurrency int
	AggregateTimeout     time.Duration

	MetricsEnabled bool
	Otel           observability.OtelConfig

	AdminAPIKey     string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	SSEHeartbeat    time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port: envutil.String("PORT", "8080", log),
		DB: db.Config{
			Driver:           envutil.String("DB_DRIVER", db.DriverPostgres, log),
			DSN:              envutil.String("DATABASE_URL", "", log),
			PostgresHost:     envutil.String("POSTGRES_HOST", "localhost", log),
			PostgresPort:     envutil.String("POSTGRES_PORT", "5432", log),
			PostgresUser:     envutil.String("POSTGRES_USER", "postgres", log),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", "", log),
			PostgresName:     envutil.String("POSTGRES_NAME", "mentor", log),
			PostgresSSLMode:  envutil.String("POSTGRES_SSLMODE", "disable", log),
			SQLitePath:       envutil.String("SQLITE_PATH", "mentor.db", log),
			MaxOpenConns:     envutil.Int("DB_MAX_OPEN_CONNS", 20, log),
			SlowThreshold:    envutil.Duration("DB_SLOW_THRESHOLD", time.Second, log),
		},
		RedisAddr:            envutil.String("REDIS_ADDR", "", log),
		RedisPassword:        envutil.String("REDIS_PASSWORD", "", log),
		RedisDB:              envutil.Int("REDIS_DB", 0, log),
		RedisChannel:         envutil.String("REDIS_CHANNEL", bus.DefaultChannel, log),
		AggregateConcurrency: envutil.Int("AGGREGATE_CONCURRENCY", services.DefaultAggregateConcurrency, log),
		AggregateTimeout:     envutil.Duration("AGGREGATE_TIMEOUT", services.DefaultAggregateTimeout, log),
		MetricsEnabled:       envutil.Bool("METRICS_ENABLED", true, log),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false, log),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", observability.DefaultServiceName, log),
			Environment: envutil.String("OTEL_ENVIRONMENT", "development", log),
			Version:     envutil.String("SERVICE_VERSION", "dev", log),
			SampleRatio: envutil.Float("OTEL_TRACES_SAMPLER_RATIO", 1, log),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", "", log),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "", log)),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false, log),
		},
		AdminAPIKey:     envutil.String("ADMIN_API_KEY", "", log),
		CORSOrigins:     envutil.List("CORS_ALLOW_ORIGINS", nil, log),
		ShutdownTimeout: envutil.Duration("SHUTDOWN_TIMEOUT", 15*time.Second, log),
		SSEHeartbeat:    envutil.Duration("SSE_HEARTBEAT", 15*time.Second, log),
	}
	if cfg.AggregateConcurrency <= 0 {
		log.Warn("AGGREGATE_CONCURRENCY must be positive, using default", "value", cfg.AggregateConcurrency)
		cfg.AggregateConcurrency = services.DefaultAggregateConcurrency
	}
	if cfg.AggregateTimeout <= 0 {
		log.Warn("AGGREGATE_TIMEOUT must be positive, using default", "value", cfg.AggregateTimeout.String())
		cfg.AggregateTimeout = services.DefaultAggregateTimeout
	}
	return cfg
}

func (c Config) Addr() string {
	return ":" + c.Port
}
