package internal

import (
	"fmt"
	"math"

	"stockhealth/internal/domain"
)

// Scoring engine. Pure - same metrics in, same scorecard out, no I/O.
//
// Each parameter maps to a [0, 10] sub-score through a piecewise-linear
// curve. Peaked parameters (P/E, P/B, beta) hold 10 inside an ideal band and
// fall off linearly on both sides; the rest are monotone with a saturation
// point. The overall score is the weighted mean over the parameters that were
// actually present upstream - missing metrics are dropped from both the
// numerator and the denominator rather than scored as zero, so a company with
// sparse coverage isn't punished for the coverage itself.

type scoreRule struct {
	name        string
	displayName string
	weight      float64
	percent     bool
	curve       func(v float64) float64
	pick        func(m domain.FundamentalMetrics) *float64
}

// rising maps (lo, hi) to (0, 10) linearly, saturating outside.
func rising(lo, hi float64) func(float64) float64 {
	return func(v float64) float64 {
		return clampScore(10 * (v - lo) / (hi - lo))
	}
}

// peaked holds 10 on [peakLo, peakHi], falling linearly to 0 at lo and hi.
func peaked(lo, peakLo, peakHi, hi float64) func(float64) float64 {
	return func(v float64) float64 {
		switch {
		case v <= peakLo:
			return clampScore(10 * (v - lo) / (peakLo - lo))
		case v <= peakHi:
			return 10
		default:
			return clampScore(10 * (hi - v) / (hi - peakHi))
		}
	}
}

// falling holds 10 at or below lo and drops linearly to 0 at hi. A negative
// input means negative equity upstream - floor it, don't reward it.
func falling(lo, hi float64) func(float64) float64 {
	return func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v <= lo {
			return 10
		}
		return clampScore(10 * (hi - v) / (hi - lo))
	}
}

func clampScore(s float64) float64 {
	return math.Max(0, math.Min(10, s))
}

// canonical parameter order; also the scorecard's display order
var scoreRules = []scoreRule{
	{
		name:        "pe_ratio",
		displayName: "P/E Ratio",
		weight:      1.2,
		// sweet spot 15-25; cheap-for-a-reason below, overvalued above
		curve: peaked(0, 15, 25, 60),
		pick:  func(m domain.FundamentalMetrics) *float64 { return m.PERatio },
	},
	{
		name:        "pb_ratio",
		displayName: "P/B Ratio",
		weight:      1.0,
		curve:       peaked(0, 1, 3, 10),
		pick:        func(m domain.FundamentalMetrics) *float64 { return m.PBRatio },
	},
	{
		name:        "roe",
		displayName: "Return on Equity (ROE)",
		weight:      1.5,
		percent:     true,
		curve:       rising(0, 15),
		pick:        func(m domain.FundamentalMetrics) *float64 { return m.ROE },
	},
	{
		name:        "debt_to_equity",
		displayName: "Debt to Equity",
		weight:      1.3,
		curve:       falling(1.0, 3.0),
		pick:        func(m domain.FundamentalMetrics) *float64 { return m.DebtToEquity },
	},
	{
		name:        "current_ratio",
		displayName: "Current Ratio",
		weight:      0.8,
		curve:       rising(0, 1.5),
		pick:        func(m domain.FundamentalMetrics) *float64 { return m.CurrentRatio },
	},
	{
		name:        "profit_margin",
		displayName: "Profit Margin",
		weight:      1.2,
		percent:     true,
		curve:       rising(0, 10),
		pick:        func(m domain.FundamentalMetrics) *float64 { return m.ProfitMargin },
	},
	{
		name:        "dividend_yield",
		displayName: "Dividend Yield",
		weight:      0.9,
		percent:     true,
		// full credit at 2%; no extra credit above - fat yields are
		// usually a falling price, not a healthy payout
		curve: rising(0, 2),
		pick:  func(m domain.FundamentalMetrics) *float64 { return m.DividendYield },
	},
	{
		name:        "revenue_growth",
		displayName: "Revenue Growth",
		weight:      1.1,
		percent:     true,
		curve:       rising(0, 10),
		pick:        func(m domain.FundamentalMetrics) *float64 { return m.RevenueGrowth },
	},
	{
		name:        "eps",
		displayName: "Earnings Per Share (EPS)",
		weight:      1.0,
		curve:       rising(0, 30),
		pick:        func(m domain.FundamentalMetrics) *float64 { return m.EPS },
	},
	{
		name:        "beta",
		displayName: "Beta (Volatility)",
		weight:      0.7,
		curve:       peaked(0, 0.8, 1.2, 2.5),
		pick:        func(m domain.FundamentalMetrics) *float64 { return m.Beta },
	},
}

// Score builds the scorecard and recommendation for one metric set. Fails
// only when not a single metric is usable.
func Score(symbol string, metrics domain.FundamentalMetrics) (domain.ScoreCard, domain.Recommendation, error) {
	card := domain.ScoreCard{
		Parameters: make([]domain.ParameterScore, 0, len(scoreRules)),
	}

	weightedSum := 0.0
	totalWeight := 0.0
	for _, rule := range scoreRules {
		entry := domain.ParameterScore{
			Name:        rule.name,
			DisplayName: rule.displayName,
			Weight:      rule.weight,
			Display:     "N/A",
		}

		v := rule.pick(metrics)
		if domain.Usable(v) {
			entry.Value = v
			entry.Score = rule.curve(*v)
			entry.Included = true
			if rule.percent {
				entry.Display = fmt.Sprintf("%.2f%%", *v)
			} else {
				entry.Display = fmt.Sprintf("%.2f", *v)
			}
			weightedSum += entry.Score * rule.weight
			totalWeight += rule.weight
		}

		card.Parameters = append(card.Parameters, entry)
	}

	if totalWeight == 0 {
		return domain.ScoreCard{}, domain.Recommendation{}, domain.InsufficientDataError{Symbol: symbol}
	}

	overall := weightedSum / totalWeight
	rec := domain.Recommendation{
		Score:  overall,
		Label:  labelFor(overall),
		Reason: reasonFor(overall, card),
	}

	return card, rec, nil
}

func labelFor(overall float64) domain.RecommendationLabel {
	switch {
	case overall >= 8:
		return domain.StrongBuy
	case overall >= 6.5:
		return domain.Buy
	case overall >= 5:
		return domain.Hold
	case overall >= 3:
		return domain.Weak
	default:
		return domain.Avoid
	}
}

var labelSummaries = map[domain.RecommendationLabel]string{
	domain.StrongBuy: "Excellent fundamentals for long-term investment",
	domain.Buy:       "Good fundamentals, suitable for long-term",
	domain.Hold:      "Average fundamentals, monitor closely",
	domain.Weak:      "Below average fundamentals, risky for long-term",
	domain.Avoid:     "Poor fundamentals, not recommended",
}

// reasonFor names the best and worst scored parameters so the caller always
// sees where the number came from. Ties keep the earlier (canonical-order)
// parameter.
func reasonFor(overall float64, card domain.ScoreCard) string {
	var best, worst *domain.ParameterScore
	for i := range card.Parameters {
		p := &card.Parameters[i]
		if !p.Included {
			continue
		}
		if best == nil || p.Score > best.Score {
			best = p
		}
		if worst == nil || p.Score < worst.Score {
			worst = p
		}
	}

	summary := labelSummaries[labelFor(overall)]
	if best == nil {
		return summary
	}
	if best.Name == worst.Name {
		return fmt.Sprintf("%s; driven by %s (%.1f/10)", summary, best.DisplayName, best.Score)
	}
	return fmt.Sprintf(
		"%s; strongest: %s (%.1f/10), weakest: %s (%.1f/10)",
		summary, best.DisplayName, best.Score, worst.DisplayName, worst.Score,
	)
}
