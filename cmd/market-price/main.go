package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"max.ks1230/trade-test-tools/internal/clients/cache"
	"max.ks1230/trade-test-tools/internal/clients/pricenode"
	"max.ks1230/trade-test-tools/internal/commands"
	"max.ks1230/trade-test-tools/internal/config"
	"max.ks1230/trade-test-tools/internal/logger"
	"max.ks1230/trade-test-tools/internal/model/prices"
	"max.ks1230/trade-test-tools/internal/tracing"
)

// app holds what newFinder set up, so shutdown only tears down what exists.
type app struct {
	conf   *config.Service
	closer io.Closer
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)

	a := &app{}
	code, err := commands.Price(ctx, os.Args[1:], os.Stdout, a.newFinder)
	cancel()
	a.shutdown()
	if err != nil {
		logger.Fatal("failed to get market price", zap.Error(err))
	}

	logger.Sync()
	os.Exit(code)
}

func (a *app) newFinder() (commands.PriceFinder, error) {
	conf, err := config.New()
	if err != nil {
		return nil, err
	}
	a.conf = conf

	a.closer, err = tracing.Init(conf.Tracing())
	if err != nil {
		return nil, err
	}

	client := pricenode.New(conf.PriceNode())
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Error("memcached unavailable, fetching without cache", zap.Error(err))
		} else {
			client.WithCache(mc)
		}
	}

	return prices.NewLookup(client), nil
}

func (a *app) shutdown() {
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			logger.Error("failed to flush traces", zap.Error(err))
		}
	}

	if a.conf != nil {
		if err := prices.PushMetrics(a.conf.Metrics()); err != nil {
			logger.Error("failed to push metrics", zap.Error(err))
		}
	}
}
