package repository

import (
	"context"
	"time"

	"stockhealth/internal/domain"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

// Alternate bar source for deployments with Alpaca credentials. US listings
// only - Alpaca has no NSE/BSE coverage, so the yahoo repository stays the
// default.

func NewAlpacaHistoryRepository(apiKey, apiSecret, endpoint string) HistoryRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &alpacaHistoryRepositoryHandler{
		MdClient: mdClient,
	}
}

type alpacaHistoryRepositoryHandler struct {
	MdClient *marketdata.Client
}

func (h alpacaHistoryRepositoryHandler) ListBars(ctx context.Context, symbol string, period domain.Period) ([]domain.AssetBar, error) {
	now := time.Now()
	results, err := h.MdClient.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame: marketdata.OneDay,
		Start:     period.Start(now),
		End:       now,
	})
	if err != nil {
		return nil, domain.UpstreamUnavailableError{Err: err}
	}

	bars := make([]domain.AssetBar, 0, len(results))
	for _, b := range results {
		bars = append(bars, domain.AssetBar{
			Symbol: symbol,
			Date:   b.Timestamp.UTC(),
			Open:   decimal.NewFromFloat(b.Open),
			High:   decimal.NewFromFloat(b.High),
			Low:    decimal.NewFromFloat(b.Low),
			Close:  decimal.NewFromFloat(b.Close),
			Volume: int64(b.Volume),
		})
	}

	return bars, nil
}
