package domain

import "math"

// FundamentalMetrics holds the raw inputs to the scoring engine. Every field
// is optional - upstream regularly omits some of them, especially for small
// caps and recent listings. Percent-type fields (ROE, ProfitMargin,
// RevenueGrowth, DividendYield) are percentages, not fractions; DebtToEquity
// is a plain ratio. The provider adapter owns the unit conversions.
type FundamentalMetrics struct {
	PERatio       *float64
	PBRatio       *float64
	ROE           *float64
	DebtToEquity  *float64
	CurrentRatio  *float64
	ProfitMargin  *float64
	DividendYield *float64
	RevenueGrowth *float64
	EPS           *float64
	Beta          *float64
}

type CompanyProfile struct {
	Name      string `json:"name"`
	Sector    string `json:"sector"`
	Industry  string `json:"industry"`
	Website   string `json:"website"`
	Summary   string `json:"summary"`
	Employees int    `json:"employees"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

// Float64Ptr is a convenience for building metric sets by hand.
func Float64Ptr(f float64) *float64 {
	return &f
}

// Usable reports whether v carries a real number. NaN and Inf sneak through
// some upstream payloads as valid JSON-adjacent values.
func Usable(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
