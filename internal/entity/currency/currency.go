package currency

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ErrMissingField = errors.New("missing field")

// MarketPrice is one element of the pricenode getAllMarketPrices data list.
// Absent and null values decode to nil; they are only an error once read.
type MarketPrice struct {
	CurrencyCode *string          `json:"currencyCode"`
	Price        *decimal.Decimal `json:"price"`
	TimestampSec int64            `json:"timestampSec,omitempty"`
	Provider     string           `json:"provider,omitempty"`
}

func (p MarketPrice) Code() (string, error) {
	if p.CurrencyCode == nil {
		return "", errors.Wrap(ErrMissingField, "currencyCode")
	}
	return *p.CurrencyCode, nil
}

// WholePrice returns the price truncated toward zero.
func (p MarketPrice) WholePrice() (decimal.Decimal, error) {
	if p.Price == nil {
		return decimal.Zero, errors.Wrap(ErrMissingField, "price")
	}
	return p.Price.Truncate(0), nil
}
