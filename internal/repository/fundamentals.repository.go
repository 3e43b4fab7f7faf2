package repository

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"stockhealth/internal/domain"
	"stockhealth/internal/logger"
	"stockhealth/pkg/yahoo"

	"github.com/piquette/finance-go/equity"
)

type FundamentalsRepository interface {
	Get(ctx context.Context, symbol string) (domain.FundamentalMetrics, domain.CompanyProfile, error)
}

func NewFundamentalsRepository() FundamentalsRepository {
	return fundamentalsRepositoryHandler{
		SummaryClient: yahoo.Client{
			HttpClient: &http.Client{Timeout: 15 * time.Second},
		},
	}
}

type fundamentalsRepositoryHandler struct {
	SummaryClient yahoo.Client
}

func (h fundamentalsRepositoryHandler) Get(ctx context.Context, symbol string) (domain.FundamentalMetrics, domain.CompanyProfile, error) {
	summary, err := h.SummaryClient.GetQuoteSummary(ctx, symbol)
	if err != nil {
		if errors.Is(err, yahoo.ErrNotFound) {
			return domain.FundamentalMetrics{}, domain.CompanyProfile{}, domain.SymbolNotFoundError{Symbol: symbol}
		}
		return domain.FundamentalMetrics{}, domain.CompanyProfile{}, domain.UpstreamUnavailableError{Err: err}
	}

	profile := domain.CompanyProfile{
		Name:      symbol,
		Sector:    summary.Profile.Sector,
		Industry:  summary.Profile.Industry,
		Website:   summary.Profile.Website,
		Summary:   summary.Profile.LongBusinessSummary,
		Employees: summary.Profile.FullTimeEmployees,
		City:      summary.Profile.City,
		Country:   summary.Profile.Country,
	}

	metrics := domain.FundamentalMetrics{
		PERatio:       sanitize(summary.TrailingPE, 1),
		PBRatio:       sanitize(summary.PriceToBook, 1),
		ROE:           sanitize(summary.ReturnOnEquity, 100),
		DebtToEquity:  sanitize(summary.DebtToEquity, 0.01),
		CurrentRatio:  sanitize(summary.CurrentRatio, 1),
		ProfitMargin:  sanitize(summary.ProfitMargins, 100),
		DividendYield: sanitize(summary.DividendYield, 100),
		RevenueGrowth: sanitize(summary.RevenueGrowth, 100),
		EPS:           sanitize(summary.TrailingEps, 1),
		Beta:          sanitize(summary.Beta, 1),
	}

	// the quote endpoint fills valuation gaps quoteSummary sometimes leaves,
	// and carries the listed company name. losing it is not fatal.
	q, err := equity.Get(symbol)
	if err != nil || q == nil {
		logger.Warn("equity quote for %s unavailable: %v", symbol, err)
		return metrics, profile, nil
	}

	if q.LongName != "" {
		profile.Name = q.LongName
	} else if q.ShortName != "" {
		profile.Name = q.ShortName
	}
	if metrics.PERatio == nil && q.TrailingPE != 0 {
		metrics.PERatio = domain.Float64Ptr(q.TrailingPE)
	}
	if metrics.PBRatio == nil && q.PriceToBook != 0 {
		metrics.PBRatio = domain.Float64Ptr(q.PriceToBook)
	}
	if metrics.EPS == nil && q.EpsTrailingTwelveMonths != 0 {
		metrics.EPS = domain.Float64Ptr(q.EpsTrailingTwelveMonths)
	}
	if metrics.DividendYield == nil && q.TrailingAnnualDividendYield != 0 {
		metrics.DividendYield = domain.Float64Ptr(q.TrailingAnnualDividendYield * 100)
	}

	return metrics, profile, nil
}

// sanitize converts a raw upstream value into engine units, dropping
// non-finite garbage on the floor.
func sanitize(v *float64, scale float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	scaled := *v * scale
	return &scaled
}
