package main

import (
	"wip-service/app/src/domain"
	"wip-service/app/src/infra"
)

type application struct {
	Config   infra.Config
	Logger   *infra.Logger
	Clock    domain.Clock
	Provider domain.VersionProvider
}

func newApplication(cfg infra.Config, logger *infra.Logger, clock domain.Clock, provider domain.VersionProvider) *application {
	return &application{
		Config:   cfg,
		Logger:   logger,
		Clock:    clock,
		Provider: provider,
	}
}

func assembleApplication(app *application) (*application, func(), error) {
	return app, func() {}, nil
}
