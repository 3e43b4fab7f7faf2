package domain

import (
	"fmt"
	"time"
)

// Period is the lookback window for historical bars. The set mirrors what the
// upstream chart API accepts.
type Period string

const (
	Period1Mo Period = "1mo"
	Period3Mo Period = "3mo"
	Period6Mo Period = "6mo"
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
	Period5Y  Period = "5y"
	Period10Y Period = "10y"
	PeriodYTD Period = "ytd"
	PeriodMax Period = "max"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case Period1Mo, Period3Mo, Period6Mo, Period1Y, Period2Y, Period5Y, Period10Y, PeriodYTD, PeriodMax:
		return Period(s), nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Start returns the beginning of the lookback window relative to now. "max"
// uses a fixed floor well before any listed equity's history.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case Period1Mo:
		return now.AddDate(0, -1, 0)
	case Period3Mo:
		return now.AddDate(0, -3, 0)
	case Period6Mo:
		return now.AddDate(0, -6, 0)
	case Period1Y:
		return now.AddDate(-1, 0, 0)
	case Period2Y:
		return now.AddDate(-2, 0, 0)
	case Period5Y:
		return now.AddDate(-5, 0, 0)
	case Period10Y:
		return now.AddDate(-10, 0, 0)
	case PeriodYTD:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	case PeriodMax:
		return time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return now.AddDate(-5, 0, 0)
}
