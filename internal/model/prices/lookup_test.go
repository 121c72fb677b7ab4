package prices

import (
	"context"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"max.ks1230/trade-test-tools/internal/entity/currency"
	"max.ks1230/trade-test-tools/internal/model/prices/mock"
)

func price(t *testing.T, code, value string) currency.MarketPrice {
	d, err := decimal.NewFromString(value)
	assert.NoError(t, err)
	return currency.MarketPrice{CurrencyCode: &code, Price: &d}
}

func Test_OnMatchingCode_ShouldReturnTruncatedPrice(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewMarketPricesGetterMock(m)

	provider.GetMarketPricesMock.Return([]currency.MarketPrice{
		price(t, "EUR", "60000.9"),
		price(t, "USD", "65000.7"),
	}, nil)

	value, found, err := NewLookup(provider).FindPrice(ctx, "USD")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "65000", value.String())
}

func Test_OnDuplicateCodes_ShouldPickFirst(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewMarketPricesGetterMock(m)

	provider.GetMarketPricesMock.Return([]currency.MarketPrice{
		price(t, "USD", "1.5"),
		price(t, "USD", "2.5"),
	}, nil)

	value, found, err := NewLookup(provider).FindPrice(ctx, "USD")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "1", value.String())
}

func Test_OnDifferentCase_ShouldNotMatch(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewMarketPricesGetterMock(m)

	provider.GetMarketPricesMock.Return([]currency.MarketPrice{price(t, "usd", "10")}, nil)

	_, found, err := NewLookup(provider).FindPrice(ctx, "USD")
	assert.NoError(t, err)
	assert.False(t, found)
}

func Test_OnNoMatch_ShouldReportNotFound(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewMarketPricesGetterMock(m)

	provider.GetMarketPricesMock.Return([]currency.MarketPrice{price(t, "EUR", "60000")}, nil)

	value, found, err := NewLookup(provider).FindPrice(ctx, "JPY")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.True(t, value.IsZero())
}

func Test_OnProviderError_ShouldWrapIt(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("connection refused")

	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewMarketPricesGetterMock(m)

	provider.GetMarketPricesMock.Return(nil, cause)

	_, found, err := NewLookup(provider).FindPrice(ctx, "USD")
	assert.False(t, found)
	assert.ErrorIs(t, err, cause)
}

func Test_OnEntryWithoutCodeBeforeMatch_ShouldFail(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewMarketPricesGetterMock(m)

	one := decimal.NewFromInt(1)
	provider.GetMarketPricesMock.Return([]currency.MarketPrice{
		{Price: &one},
		price(t, "USD", "5"),
	}, nil)

	_, found, err := NewLookup(provider).FindPrice(ctx, "USD")
	assert.False(t, found)
	assert.ErrorIs(t, err, currency.ErrMissingField)
}

func Test_OnMatchWithoutPrice_ShouldFail(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewMarketPricesGetterMock(m)

	code := "USD"
	provider.GetMarketPricesMock.Return([]currency.MarketPrice{{CurrencyCode: &code}}, nil)

	_, found, err := NewLookup(provider).FindPrice(ctx, "USD")
	assert.False(t, found)
	assert.ErrorIs(t, err, currency.ErrMissingField)
}

func Test_OnBrokenEntryAfterMatch_ShouldIgnoreIt(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewMarketPricesGetterMock(m)

	provider.GetMarketPricesMock.Return([]currency.MarketPrice{
		price(t, "USD", "65000.7"),
		{},
	}, nil)

	value, found, err := NewLookup(provider).FindPrice(ctx, "USD")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "65000", value.String())
}
