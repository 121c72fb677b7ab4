package pricenode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/trade-test-tools/internal/clients/cache"
	"max.ks1230/trade-test-tools/internal/entity/currency"
	"max.ks1230/trade-test-tools/internal/logger"
)

const allMarketPricesPath = "/getAllMarketPrices"

type config interface {
	BaseURL() string
	UserAgent() string
	Timeout() time.Duration
}

type responseCache interface {
	GetResponse(url string) ([]byte, error)
	CacheResponse(url string, body []byte) error
	InvalidateResponse(url string) error
}

// StatusError is returned when the price service answers with anything but 200.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("price service responded with http %d", e.StatusCode)
}

type Client struct {
	url       string
	userAgent string
	client    *http.Client
	cache     responseCache
}

type marketPricesResponse struct {
	Data *[]currency.MarketPrice `json:"data"`
}

func New(config config) *Client {
	return &Client{
		url:       strings.TrimRight(config.BaseURL(), "/") + allMarketPricesPath,
		userAgent: config.UserAgent(),
		client:    &http.Client{Timeout: config.Timeout()},
	}
}

// WithCache serves repeated lookups from c until the cached body expires.
func (c *Client) WithCache(rc responseCache) *Client {
	c.cache = rc
	return c
}

func (c *Client) GetMarketPrices(ctx context.Context) ([]currency.MarketPrice, error) {
	if body, err := c.cachedBody(); err == nil {
		prices, err := decode(body)
		if err == nil {
			return prices, nil
		}
		logger.Error("cached response is unreadable, dropping it", zap.Error(err))
		c.dropBody()
	}

	body, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	prices, err := decode(body)
	if err != nil {
		return nil, err
	}
	c.storeBody(body)

	return prices, nil
}

func decode(body []byte) ([]currency.MarketPrice, error) {
	resp := marketPricesResponse{}
	err := json.Unmarshal(body, &resp)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshalling response")
	}
	if resp.Data == nil {
		return nil, errors.New("response has no data field")
	}
	return *resp.Data, nil
}

func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "requesting market prices")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response")
	}
	logger.Info("new response from price service", zap.String("url", c.url), zap.Int("bytes", len(body)))

	return body, nil
}

func (c *Client) cachedBody() ([]byte, error) {
	if c.cache == nil {
		return nil, cache.ErrMiss
	}
	body, err := c.cache.GetResponse(c.url)
	if err != nil && !errors.Is(err, cache.ErrMiss) {
		logger.Error("cannot read cached response", zap.Error(err))
	}
	return body, err
}

func (c *Client) dropBody() {
	if err := c.cache.InvalidateResponse(c.url); err != nil {
		logger.Error("cannot invalidate cached response", zap.Error(err))
	}
}

func (c *Client) storeBody(body []byte) {
	if c.cache == nil {
		return
	}
	if err := c.cache.CacheResponse(c.url, body); err != nil {
		logger.Error("cannot cache response", zap.Error(err))
	}
}
