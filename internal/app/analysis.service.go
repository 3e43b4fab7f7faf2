package app

import (
	"context"

	"stockhealth/internal"
	"stockhealth/internal/domain"
	"stockhealth/internal/logger"
	"stockhealth/internal/repository"
	"stockhealth/internal/service"
)

type AnalysisHandler struct {
	FundamentalsRepository repository.FundamentalsRepository
	HistoryRepository      repository.HistoryRepository
	ChartService           service.ChartService
}

type AnalyzeInput struct {
	Symbol string
	Period domain.Period
	// SkipCharts drops the render step entirely (CLI runs)
	SkipCharts bool
}

// Analyze runs the full pipeline for one ticker: fetch fundamentals, score
// them, then best-effort chart rendering. Chart failures degrade to a result
// without images; fetch and scoring failures are returned as-is so the
// delivery layer can tell them apart.
func (h AnalysisHandler) Analyze(ctx context.Context, in AnalyzeInput) (*domain.AnalysisResult, error) {
	metrics, profile, err := h.FundamentalsRepository.Get(ctx, in.Symbol)
	if err != nil {
		return nil, err
	}

	card, recommendation, err := internal.Score(in.Symbol, metrics)
	if err != nil {
		return nil, err
	}

	result := &domain.AnalysisResult{
		Symbol:         in.Symbol,
		Profile:        profile,
		ScoreCard:      card,
		Recommendation: recommendation,
	}

	if in.SkipCharts {
		return result, nil
	}

	bars, err := h.HistoryRepository.ListBars(ctx, in.Symbol, in.Period)
	if err != nil {
		logger.Warn("skipping charts for %s: %v", in.Symbol, err)
		return result, nil
	}

	if priceChart, err := h.ChartService.RenderPriceChart(in.Symbol, in.Period, bars); err != nil {
		logger.Warn("price chart for %s: %v", in.Symbol, err)
	} else {
		result.PriceChart = priceChart
	}
	if volumeChart, err := h.ChartService.RenderVolumeChart(in.Symbol, in.Period, bars); err != nil {
		logger.Warn("volume chart for %s: %v", in.Symbol, err)
	} else {
		result.VolumeChart = volumeChart
	}

	return result, nil
}
