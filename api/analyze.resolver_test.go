package api

import (
	"testing"

	"stockhealth/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_normalizeSymbol(t *testing.T) {
	t.Run("bare symbols default to NSE", func(t *testing.T) {
		require.Equal(t, "RELIANCE.NS", normalizeSymbol("reliance"))
		require.Equal(t, "TCS.NS", normalizeSymbol("  tcs "))
	})

	t.Run("existing suffixes are kept", func(t *testing.T) {
		require.Equal(t, "RELIANCE.BO", normalizeSymbol("RELIANCE.BO"))
		require.Equal(t, "INFY.NS", normalizeSymbol("infy.ns"))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		require.Equal(t, "", normalizeSymbol("   "))
	})
}

func Test_buildAnalyzeResponse(t *testing.T) {
	result := &domain.AnalysisResult{
		Symbol:  "TEST.NS",
		Profile: domain.CompanyProfile{Name: "Test Ltd", Sector: "Energy"},
		ScoreCard: domain.ScoreCard{
			Parameters: []domain.ParameterScore{
				{
					Name:        "pe_ratio",
					DisplayName: "P/E Ratio",
					Value:       domain.Float64Ptr(20.11111),
					Display:     "20.11",
					Score:       9.876543,
					Weight:      1.2,
					Included:    true,
				},
				{
					Name:        "roe",
					DisplayName: "Return on Equity (ROE)",
					Display:     "N/A",
					Weight:      1.5,
				},
			},
		},
		Recommendation: domain.Recommendation{
			Score:  7.999,
			Label:  domain.Buy,
			Reason: "Good fundamentals, suitable for long-term",
		},
		PriceChart: "aW1n",
	}

	resp := buildAnalyzeResponse(result)

	require.True(t, resp.Success)
	require.Equal(t, "TEST.NS", resp.Symbol)
	require.Equal(t, []string{"P/E Ratio", "Return on Equity (ROE)"}, resp.ParameterOrder)

	pe := resp.Scores["P/E Ratio"]
	require.NotNil(t, pe.Value)
	require.Equal(t, 20.11, *pe.Value)
	require.Equal(t, 9.88, pe.Score)
	require.True(t, pe.Included)

	roe := resp.Scores["Return on Equity (ROE)"]
	require.Nil(t, roe.Value)
	require.False(t, roe.Included)

	// display rounds, the label doesn't: 7.999 was classified as BUY by the
	// engine and stays BUY even though it displays as 8.0
	require.Equal(t, 8.0, resp.OverallScore)
	require.Equal(t, "BUY", resp.Recommendation)
	require.Equal(t, "aW1n", resp.PriceChart)
}
