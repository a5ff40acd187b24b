package cache

import (
	"runtime"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mr *miniredis.Miniredis

func init() {
	var err error
	mr, err = miniredis.Run()
	if err != nil {
		panic(err)
	}
	runtime.SetFinalizer(mr, func(mr *miniredis.Miniredis) {
		mr.Close()
	})
}

func TestNullCache(t *testing.T) {
	c := NullCache{}

	c.Set("render", []byte("svg"), 60)
	_, err := c.Get("render")
	assert.Equal(t, ErrNotFound, err, "null cache must always miss")
}

func TestExpireCache(t *testing.T) {
	c := NewExpireCache(1024 * 1024)

	_, err := c.Get("missing")
	assert.Equal(t, ErrNotFound, err)

	c.Set("render", []byte("svg"), 60)
	got, err := c.Get("render")
	require.NoError(t, err)
	assert.Equal(t, []byte("svg"), got)

	ec := c.(*ExpireCache)
	assert.Equal(t, 1, ec.Items(), "bad item count")
	assert.Equal(t, uint64(3), ec.Size(), "size must track stored bytes")
}

func TestRedisCache(t *testing.T) {
	c := NewRedis("scatter", RedisConfig{Address: mr.Addr()})

	_, err := c.Get("missing")
	assert.Equal(t, ErrNotFound, err)

	c.Set("render", []byte("svg"), 60)
	// Set writes in the background
	require.Eventually(t, func() bool {
		got, err := c.Get("render")
		return err == nil && string(got) == "svg"
	}, time.Second, 10*time.Millisecond, "async set never landed")

	mr.FastForward(61 * time.Second)
	_, err = c.Get("render")
	assert.Equal(t, ErrNotFound, err, "expired key must miss")

	assert.Equal(t, uint64(0), c.(*RedisCache).Timeouts())
}
