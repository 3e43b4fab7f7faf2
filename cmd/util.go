package cmd

import (
	"fmt"

	"stockhealth/api"
	"stockhealth/internal"
	"stockhealth/internal/app"
	"stockhealth/internal/logger"
	"stockhealth/internal/repository"
	"stockhealth/internal/service"
)

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	fundamentalsRepository := repository.NewFundamentalsRepository()

	historyRepository := repository.NewHistoryRepository()
	if secrets.Alpaca.Configured() {
		logger.Info("using alpaca for historical bars")
		historyRepository = repository.NewAlpacaHistoryRepository(
			secrets.Alpaca.ApiKey,
			secrets.Alpaca.ApiSecret,
			secrets.Alpaca.Endpoint,
		)
	}

	analysisHandler := app.AnalysisHandler{
		FundamentalsRepository: fundamentalsRepository,
		HistoryRepository:      historyRepository,
		ChartService:           service.NewChartService(),
	}

	return &api.ApiHandler{
		AnalysisHandler: analysisHandler,
	}, nil
}
