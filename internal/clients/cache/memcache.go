package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/trade-test-tools/internal/logger"
)

const keyPrefix = "pricenode:"

var ErrMiss = errors.New("cache miss")

type memcacheClient interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Delete(key string) error
}

type MemcacheClient struct {
	client memcacheClient
	ttl    time.Duration
}

type config interface {
	Hosts() []string
	TTL() time.Duration
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{client: mc, ttl: config.TTL()}, mc.Ping()
}

// formatKey hashes the url, memcached keys must not contain spaces or control characters.
func formatKey(url string) string {
	sum := sha1.Sum([]byte(url))
	return keyPrefix + hex.EncodeToString(sum[:])
}

func (mc *MemcacheClient) CacheResponse(url string, body []byte) error {
	logger.Info("cache response", zap.String("url", url), zap.Int("bytes", len(body)))
	return mc.client.Set(&memcache.Item{
		Key:        formatKey(url),
		Value:      body,
		Expiration: int32(mc.ttl / time.Second),
	})
}

func (mc *MemcacheClient) GetResponse(url string) ([]byte, error) {
	logger.Info("get response from cache", zap.String("url", url))
	item, err := mc.client.Get(formatKey(url))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}

func (mc *MemcacheClient) InvalidateResponse(url string) error {
	logger.Info("invalidate cache", zap.String("url", url))

	err := mc.client.Delete(formatKey(url))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return err
	}
	return nil
}
