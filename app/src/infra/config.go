package infra

import (
	"context"
	"os"
	"strconv"

	"wip-service/app/src/infra/utils"
)

type Config struct {
	ServiceName       string
	HTTPPort          string
	GRPCPort          string
	MetricsPort       string
	VersionFile       string
	ShutdownTimeoutMS int
}

func LoadConfig() Config {
	return Config{
		ServiceName:       getEnv("SERVICE_NAME", "wip-service"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		GRPCPort:          getEnv("GRPC_PORT", "50051"),
		MetricsPort:       getEnv("METRICS_PORT", "2112"),
		VersionFile:       getEnv("VERSION_FILE", "version.txt"),
		ShutdownTimeoutMS: getEnvInt("SHUTDOWN_TIMEOUT_MS", 5000),
	}
}

func LogConfig(ctx context.Context, logger *Logger, cfg Config) {
	logger.Printf(ctx, "SERVICE_NAME=%s", cfg.ServiceName)
	logger.Printf(ctx, "HTTP_PORT=%s", cfg.HTTPPort)
	logger.Printf(ctx, "GRPC_PORT=%s", cfg.GRPCPort)
	logger.Printf(ctx, "METRICS_PORT=%s", utils.EmptyFallback(cfg.MetricsPort, "(disabled)"))
	logger.Printf(ctx, "VERSION_FILE=%s", cfg.VersionFile)
	logger.Printf(ctx, "SHUTDOWN_TIMEOUT_MS=%d", cfg.ShutdownTimeoutMS)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
