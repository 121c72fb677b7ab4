package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pricesURL = "https://price.bisq.wiz.biz/getAllMarketPrices"

type fakeMemcache struct {
	items   map[string]*memcache.Item
	getErr  error
	deleted []string
}

func newFakeMemcache() *fakeMemcache {
	return &fakeMemcache{items: map[string]*memcache.Item{}}
}

func (f *fakeMemcache) Get(key string) (*memcache.Item, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	item, ok := f.items[key]
	if !ok {
		return nil, memcache.ErrCacheMiss
	}
	return item, nil
}

func (f *fakeMemcache) Set(item *memcache.Item) error {
	f.items[item.Key] = item
	return nil
}

func (f *fakeMemcache) Delete(key string) error {
	f.deleted = append(f.deleted, key)
	if _, ok := f.items[key]; !ok {
		return memcache.ErrCacheMiss
	}
	delete(f.items, key)
	return nil
}

func Test_OnFormatKey_ShouldBeStableAndSafe(t *testing.T) {
	a := formatKey(pricesURL)
	b := formatKey(pricesURL)
	c := formatKey("http://localhost:8080/getAllMarketPrices")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a, keyPrefix))
	assert.LessOrEqual(t, len(a), 250)
	assert.NotContains(t, a, " ")
}

func Test_OnCacheResponse_ShouldStoreBodyWithTTLInSeconds(t *testing.T) {
	cases := map[time.Duration]int32{
		90 * time.Second:        90,
		1500 * time.Millisecond: 1,
		0:                       0,
	}
	for ttl, want := range cases {
		fake := newFakeMemcache()
		mc := &MemcacheClient{client: fake, ttl: ttl}

		require.NoError(t, mc.CacheResponse(pricesURL, []byte(`{"data":[]}`)))

		item, ok := fake.items[formatKey(pricesURL)]
		require.True(t, ok, ttl.String())
		assert.Equal(t, want, item.Expiration, ttl.String())
		assert.Equal(t, []byte(`{"data":[]}`), item.Value)
	}
}

func Test_OnGetResponse_ShouldReturnCachedBody(t *testing.T) {
	fake := newFakeMemcache()
	mc := &MemcacheClient{client: fake, ttl: time.Minute}
	require.NoError(t, mc.CacheResponse(pricesURL, []byte("body")))

	body, err := mc.GetResponse(pricesURL)
	require.NoError(t, err)
	assert.Equal(t, []byte("body"), body)
}

func Test_OnCacheMiss_ShouldReturnErrMiss(t *testing.T) {
	mc := &MemcacheClient{client: newFakeMemcache(), ttl: time.Minute}

	_, err := mc.GetResponse(pricesURL)
	assert.ErrorIs(t, err, ErrMiss)
}

func Test_OnServerFailure_ShouldReturnOriginalError(t *testing.T) {
	fake := newFakeMemcache()
	fake.getErr = errors.New("connection reset")
	mc := &MemcacheClient{client: fake, ttl: time.Minute}

	_, err := mc.GetResponse(pricesURL)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrMiss))
	assert.Equal(t, fake.getErr, err)
}

func Test_OnInvalidateResponse_ShouldDeleteAndIgnoreMiss(t *testing.T) {
	fake := newFakeMemcache()
	mc := &MemcacheClient{client: fake, ttl: time.Minute}
	require.NoError(t, mc.CacheResponse(pricesURL, []byte("body")))

	require.NoError(t, mc.InvalidateResponse(pricesURL))
	assert.Empty(t, fake.items)

	assert.NoError(t, mc.InvalidateResponse(pricesURL))
	assert.Equal(t, []string{formatKey(pricesURL), formatKey(pricesURL)}, fake.deleted)
}
