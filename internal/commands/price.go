package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/trade-test-tools/internal/clients/pricenode"
	"max.ks1230/trade-test-tools/internal/logger"
)

const priceUsage = "usage: market-price <currency_code>"

type PriceFinder interface {
	FindPrice(ctx context.Context, code string) (decimal.Decimal, bool, error)
}

// Price prints the whole BTC market price for the currency code in args[0].
// An unknown code prints nothing and still succeeds. newFinder runs only after the arguments are accepted,
// so a usage error never touches the network.
func Price(ctx context.Context, args []string, stdout io.Writer, newFinder func() (PriceFinder, error)) (int, error) {
	if len(args) < 1 {
		fmt.Fprintln(stdout, priceUsage)
		return ExitFailure, nil
	}
	code := strings.ToUpper(args[0])

	finder, err := newFinder()
	if err != nil {
		return ExitFailure, errors.Wrap(err, "init market price lookup")
	}

	price, found, err := finder.FindPrice(ctx, code)

	var statusErr *pricenode.StatusError
	if errors.As(err, &statusErr) {
		fmt.Fprintf(stdout, "Error: could not get %s market price (http %d)\n", code, statusErr.StatusCode)
		return ExitFailure, nil
	}
	if err != nil {
		return ExitFailure, errors.Wrap(err, "market price")
	}

	if !found {
		logger.Warn("currency not listed by price service, nothing printed", zap.String("currency", code))
		return ExitOK, nil
	}

	fmt.Fprintln(stdout, price.String())
	return ExitOK, nil
}
