package api

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"stockhealth/internal/app"
	"stockhealth/internal/domain"

	"github.com/gin-gonic/gin"
)

type analyzeRequest struct {
	Symbol string `json:"symbol"`
	Period string `json:"period"`
}

type parameterScoreResponse struct {
	Value    *float64 `json:"value"`
	Display  string   `json:"display"`
	Score    float64  `json:"score"`
	Weight   float64  `json:"weight"`
	Included bool     `json:"included"`
}

type analyzeResponse struct {
	Success        bool                              `json:"success"`
	Symbol         string                            `json:"symbol"`
	CompanyInfo    domain.CompanyProfile             `json:"company_info"`
	Scores         map[string]parameterScoreResponse `json:"scores"`
	ParameterOrder []string                          `json:"parameter_order"`
	OverallScore   float64                           `json:"overall_score"`
	Recommendation string                            `json:"recommendation"`
	Reason         string                            `json:"reason"`
	PriceChart     string                            `json:"price_chart,omitempty"`
	VolumeChart    string                            `json:"volume_chart,omitempty"`
}

func (m ApiHandler) analyze(c *gin.Context) {
	var requestBody analyzeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	symbol := normalizeSymbol(requestBody.Symbol)
	if symbol == "" {
		returnErrorJsonCode(fmt.Errorf("please enter a stock symbol"), c, 400)
		return
	}

	periodStr := requestBody.Period
	if periodStr == "" {
		periodStr = string(domain.Period5Y)
	}
	period, err := domain.ParsePeriod(periodStr)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := m.AnalysisHandler.Analyze(c.Request.Context(), app.AnalyzeInput{
		Symbol: symbol,
		Period: period,
	})
	if err != nil {
		var notFound domain.SymbolNotFoundError
		var unavailable domain.UpstreamUnavailableError
		var insufficient domain.InsufficientDataError
		switch {
		case errors.As(err, &notFound):
			returnErrorJsonCode(err, c, 404)
		case errors.As(err, &unavailable):
			returnErrorJsonCode(err, c, 502)
		case errors.As(err, &insufficient):
			returnErrorJsonCode(err, c, 422)
		default:
			returnErrorJson(err, c)
		}
		return
	}

	c.JSON(200, buildAnalyzeResponse(result))
}

func buildAnalyzeResponse(result *domain.AnalysisResult) analyzeResponse {
	scores := map[string]parameterScoreResponse{}
	order := make([]string, 0, len(result.ScoreCard.Parameters))
	for _, p := range result.ScoreCard.Parameters {
		order = append(order, p.DisplayName)
		entry := parameterScoreResponse{
			Display:  p.Display,
			Score:    round2(p.Score),
			Weight:   p.Weight,
			Included: p.Included,
		}
		if p.Value != nil {
			v := round2(*p.Value)
			entry.Value = &v
		}
		scores[p.DisplayName] = entry
	}

	return analyzeResponse{
		Success:        true,
		Symbol:         result.Symbol,
		CompanyInfo:    result.Profile,
		Scores:         scores,
		ParameterOrder: order,
		OverallScore:   round2(result.Recommendation.Score),
		Recommendation: string(result.Recommendation.Label),
		Reason:         result.Recommendation.Reason,
		PriceChart:     result.PriceChart,
		VolumeChart:    result.VolumeChart,
	}
}

// normalizeSymbol uppercases the ticker and defaults bare symbols to the NSE
// listing, matching how users of the original deployment typed them.
func normalizeSymbol(symbol string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return ""
	}
	if !strings.Contains(symbol, ".") {
		symbol += ".NS"
	}
	return symbol
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
