package prices

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/trade-test-tools/internal/entity/currency"
	"max.ks1230/trade-test-tools/internal/logger"
)

//go:generate minimock -i marketPricesGetter -o ./mock/market_prices_getter_mock.go -n MarketPricesGetterMock

type marketPricesGetter interface {
	GetMarketPrices(ctx context.Context) ([]currency.MarketPrice, error)
}

type Lookup struct {
	provider marketPricesGetter
}

func NewLookup(provider marketPricesGetter) *Lookup {
	return &Lookup{provider: provider}
}

// FindPrice returns the whole price of the first entry whose code equals code exactly.
// Entries scanned up to the match must carry a currencyCode, the match must carry a price.
func (l *Lookup) FindPrice(ctx context.Context, code string) (decimal.Decimal, bool, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "findPrice")
	defer span.Finish()
	span.SetTag("currency", code)

	start := time.Now()
	whole, found, err := l.find(ctx, code)
	observeLookup(time.Since(start), err != nil, found)

	if err != nil {
		ext.Error.Set(span, true)
		return decimal.Zero, false, errors.Wrap(err, "find price")
	}
	return whole, found, nil
}

func (l *Lookup) find(ctx context.Context, code string) (decimal.Decimal, bool, error) {
	entries, err := l.provider.GetMarketPrices(ctx)
	if err != nil {
		return decimal.Zero, false, err
	}

	for i, entry := range entries {
		entryCode, err := entry.Code()
		if err != nil {
			return decimal.Zero, false, errors.Wrapf(err, "market price entry %d", i)
		}
		if entryCode != code {
			continue
		}

		whole, err := entry.WholePrice()
		if err != nil {
			return decimal.Zero, false, errors.Wrapf(err, "market price entry %d", i)
		}

		logger.Info("found market price",
			zap.String("currency", entryCode),
			zap.String("price", entry.Price.String()),
			zap.String("provider", entry.Provider),
		)
		return whole, true, nil
	}
	return decimal.Zero, false, nil
}
