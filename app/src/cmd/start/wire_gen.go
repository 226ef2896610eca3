package main

import (
	"context"
	"io"
)

func initApplication(ctx context.Context, out io.Writer) (*application, func(), error) {
	cfg := provideConfig()
	logger := provideLogger(out, provideServiceName(cfg))
	clock := provideClock()
	provider := provideVersionProvider(cfg, clock, logger)

	app := newApplication(cfg, logger, clock, provider)
	return assembleApplication(app)
}
