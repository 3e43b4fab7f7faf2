package repository

import (
	"context"
	"time"

	"stockhealth/internal/domain"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// HistoryRepository supplies the daily OHLCV series the chart layer draws.
type HistoryRepository interface {
	ListBars(ctx context.Context, symbol string, period domain.Period) ([]domain.AssetBar, error)
}

func NewHistoryRepository() HistoryRepository {
	return historyRepositoryHandler{}
}

type historyRepositoryHandler struct{}

func (h historyRepositoryHandler) ListBars(ctx context.Context, symbol string, period domain.Period) ([]domain.AssetBar, error) {
	now := time.Now()
	start := period.Start(now)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	bars := []domain.AssetBar{}
	for iter.Next() {
		b := iter.Bar()
		bars = append(bars, domain.AssetBar{
			Symbol: symbol,
			Date:   time.Unix(int64(b.Timestamp), 0).UTC(),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: int64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, domain.UpstreamUnavailableError{Err: err}
	}

	return bars, nil
}
