package providers

import (
	"testing"
	"time"

	"htbnotes/internal/structures"

	"github.com/stretchr/testify/assert"
)

// local mock logger to avoid import cycle with testutil
type providerTestLogger struct{}

func (m *providerTestLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *providerTestLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *providerTestLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *providerTestLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *providerTestLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *providerTestLogger) Close()                                        {}

func cacheConfig(enabled bool, size int, ttl time.Duration) *structures.Config {
	return &structures.Config{
		Cache: structures.CacheConfig{
			Enabled: enabled,
			Size:    size,
			TTL:     ttl,
		},
	}
}

func TestCacheProvider_DisabledReturnsNoop(t *testing.T) {
	c := NewCacheProvider(cacheConfig(false, 10, 5*time.Second), &providerTestLogger{})
	_, ok := c.Get("any")
	assert.False(t, ok)
	assert.IsType(t, &noopCache{}, c)
}

func TestCacheProvider_ZeroSizeReturnsNoop(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 0, 5*time.Second), &providerTestLogger{})
	assert.IsType(t, &noopCache{}, c)
}

func TestCacheProvider_SetAndGet(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5*time.Second), &providerTestLogger{})

	c.Set("machine:620", []byte(`{"id":620}`))
	val, ok := c.Get("machine:620")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"id":620}`), val)
}

func TestCacheProvider_Miss(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5*time.Second), &providerTestLogger{})

	val, ok := c.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestCacheProvider_Overwrite(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5*time.Second), &providerTestLogger{})

	c.Set("key1", []byte("v1"))
	c.Set("key1", []byte("v2"))

	val, ok := c.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, []byte("v2"), val)
}

func TestNoopCache_AlwaysMiss(t *testing.T) {
	c := &noopCache{}
	c.Set("key1", []byte("value1"))

	val, ok := c.Get("key1")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestCacheProvider_TTLExpiry(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 1*time.Second), &providerTestLogger{})

	c.Set("key1", []byte("value1"))
	_, ok := c.Get("key1")
	assert.True(t, ok)

	time.Sleep(1100 * time.Millisecond)

	_, ok = c.Get("key1")
	assert.False(t, ok)
}
