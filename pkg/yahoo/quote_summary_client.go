package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"stockhealth/internal/logger"
)

// Client pulls the quoteSummary modules that the quote endpoints don't carry:
// balance-sheet and profitability ratios plus the company profile.

const defaultBaseUrl = "https://query2.finance.yahoo.com"

var ErrNotFound = errors.New("symbol not found")

type Client struct {
	HttpClient *http.Client
	// BaseUrl overrides the production endpoint; mostly for tests
	BaseUrl string
}

// rawValue is yahoo's {raw, fmt} number envelope. Raw is nil when the field
// exists but carries no value ({} or {"fmt": "N/A"}).
type rawValue struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

type AssetProfile struct {
	Sector              string `json:"sector"`
	Industry            string `json:"industry"`
	Website             string `json:"website"`
	LongBusinessSummary string `json:"longBusinessSummary"`
	FullTimeEmployees   int    `json:"fullTimeEmployees"`
	City                string `json:"city"`
	Country             string `json:"country"`
}

type financialData struct {
	ReturnOnEquity rawValue `json:"returnOnEquity"`
	DebtToEquity   rawValue `json:"debtToEquity"`
	CurrentRatio   rawValue `json:"currentRatio"`
	ProfitMargins  rawValue `json:"profitMargins"`
	RevenueGrowth  rawValue `json:"revenueGrowth"`
}

type defaultKeyStatistics struct {
	Beta        rawValue `json:"beta"`
	TrailingEps rawValue `json:"trailingEps"`
	PriceToBook rawValue `json:"priceToBook"`
}

type summaryDetail struct {
	TrailingPE    rawValue `json:"trailingPE"`
	DividendYield rawValue `json:"dividendYield"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile         AssetProfile         `json:"assetProfile"`
			FinancialData        financialData        `json:"financialData"`
			DefaultKeyStatistics defaultKeyStatistics `json:"defaultKeyStatistics"`
			SummaryDetail        summaryDetail        `json:"summaryDetail"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// QuoteSummary is the flattened view the repository layer consumes. Ratio
// fields keep yahoo's native units (fractions for ROE/margins/growth/yield, a
// percentage for debtToEquity); conversions happen upstream of the engine.
type QuoteSummary struct {
	Profile        AssetProfile
	ReturnOnEquity *float64
	DebtToEquity   *float64
	CurrentRatio   *float64
	ProfitMargins  *float64
	RevenueGrowth  *float64
	Beta           *float64
	TrailingEps    *float64
	PriceToBook    *float64
	TrailingPE     *float64
	DividendYield  *float64
}

func (c Client) GetQuoteSummary(ctx context.Context, symbol string) (*QuoteSummary, error) {
	baseUrl := c.BaseUrl
	if baseUrl == "" {
		baseUrl = defaultBaseUrl
	}
	endpoint := fmt.Sprintf(
		"%s/v10/finance/quoteSummary/%s?modules=assetProfile,financialData,defaultKeyStatistics,summaryDetail",
		baseUrl, url.PathEscape(symbol),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; stockhealth/1.0)")

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quoteSummary request failed: %w", err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	} else if response.StatusCode != http.StatusOK {
		logger.Debug("quoteSummary for %s failed with status %d", symbol, response.StatusCode)
		return nil, fmt.Errorf("quoteSummary failed with status code %d", response.StatusCode)
	}

	var responseJson quoteSummaryResponse
	if err := json.Unmarshal(responseBytes, &responseJson); err != nil {
		return nil, fmt.Errorf("failed to parse quoteSummary response: %w", err)
	}

	if e := responseJson.QuoteSummary.Error; e != nil {
		if e.Code == "Not Found" {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
		}
		return nil, fmt.Errorf("quoteSummary error: %s: %s", e.Code, e.Description)
	}
	if len(responseJson.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}

	result := responseJson.QuoteSummary.Result[0]
	return &QuoteSummary{
		Profile:        result.AssetProfile,
		ReturnOnEquity: result.FinancialData.ReturnOnEquity.Raw,
		DebtToEquity:   result.FinancialData.DebtToEquity.Raw,
		CurrentRatio:   result.FinancialData.CurrentRatio.Raw,
		ProfitMargins:  result.FinancialData.ProfitMargins.Raw,
		RevenueGrowth:  result.FinancialData.RevenueGrowth.Raw,
		Beta:           result.DefaultKeyStatistics.Beta.Raw,
		TrailingEps:    result.DefaultKeyStatistics.TrailingEps.Raw,
		PriceToBook:    result.DefaultKeyStatistics.PriceToBook.Raw,
		TrailingPE:     result.SummaryDetail.TrailingPE.Raw,
		DividendYield:  result.SummaryDetail.DividendYield.Raw,
	}, nil
}
