package main

import (
	"io"
	"time"

	"wip-service/app/src/core"
	"wip-service/app/src/domain"
	"wip-service/app/src/infra"
)

func provideConfig() infra.Config {
	return infra.LoadConfig()
}

func provideServiceName(cfg infra.Config) string {
	return cfg.ServiceName
}

func provideLogger(out io.Writer, serviceName string) *infra.Logger {
	return infra.NewLogger(out, serviceName)
}

func provideClock() domain.Clock {
	return domain.ClockFunc(func() int64 {
		return time.Now().UnixMilli()
	})
}

func provideVersionProvider(cfg infra.Config, clock domain.Clock, logger *infra.Logger) domain.VersionProvider {
	return core.NewVersionService(cfg.VersionFile, clock, logger)
}
