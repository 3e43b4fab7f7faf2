package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetBar is one daily OHLCV observation. Series are ordered oldest first.
type AssetBar struct {
	Symbol string
	Date   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume int64
}
