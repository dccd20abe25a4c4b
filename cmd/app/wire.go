//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/lookia/lookia/internal/bootstrap"
	"github.com/lookia/lookia/internal/domain/feedback"
	"github.com/lookia/lookia/internal/domain/generation"
	"github.com/lookia/lookia/internal/domain/lookbook"
	"github.com/lookia/lookia/internal/domain/quiz"
	"github.com/lookia/lookia/internal/infra/config"
	httpiface "github.com/lookia/lookia/internal/interface/http"
	"github.com/lookia/lookia/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		bootstrap.NewResources,
		provideCatalog,
		provideTokenCounter,
		provideModel,
		generation.NewGenerator,
		provideOpenWeatherClient,
		provideWeatherService,
		provideLocationService,
		provideStylistService,
		provideChatService,
		provideImageProxyService,
		provideInspirationService,
		provideFeedbackRepository,
		provideLookbookRepository,
		feedback.NewService,
		lookbook.NewService,
		quiz.NewService,
		provideServices,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
