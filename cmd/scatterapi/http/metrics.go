package http

import (
	"expvar"
	"strconv"
	"sync/atomic"

	metrics "github.com/msaf1980/go-metrics"
	"go.uber.org/zap"

	"github.com/go-graphite/scatterapi/cache"
	"github.com/go-graphite/scatterapi/cmd/scatterapi/config"
)

// ApiMetrics feed both the expvar endpoint and the graphite exporter.
// Counters live in the go-metrics default registry and are mirrored into
// expvar under the same names.
var ApiMetrics = struct {
	Requests              metrics.Counter
	RenderRequests        metrics.Counter
	RenderErrors          metrics.Counter
	RequestCacheHits      metrics.Counter
	RequestCacheMisses    metrics.Counter
	RenderCacheOverheadNS metrics.Counter

	MemcacheTimeouts metrics.Gauge
	RedisTimeouts    metrics.Gauge

	CacheSize  metrics.Gauge
	CacheItems metrics.Gauge
}{
	Requests:              metrics.GetOrRegisterCounter("requests", nil),
	RenderRequests:        metrics.GetOrRegisterCounter("render_requests", nil),
	RenderErrors:          metrics.GetOrRegisterCounter("render_errors", nil),
	RequestCacheHits:      metrics.GetOrRegisterCounter("request_cache_hits", nil),
	RequestCacheMisses:    metrics.GetOrRegisterCounter("request_cache_misses", nil),
	RenderCacheOverheadNS: metrics.GetOrRegisterCounter("render_cache_overhead_ns", nil),
}

type BucketEntry int

var TimeBuckets []int64

func (b BucketEntry) String() string {
	return strconv.Itoa(int(atomic.LoadInt64(&TimeBuckets[b])))
}

func RenderTimeBuckets() interface{} {
	return TimeBuckets
}

func publishCounter(name string, c metrics.Counter) {
	expvar.Publish(name, expvar.Func(func() interface{} { return c.Count() }))
}

func SetupMetrics(logger *zap.Logger) {
	publishCounter("requests", ApiMetrics.Requests)
	publishCounter("render_requests", ApiMetrics.RenderRequests)
	publishCounter("render_errors", ApiMetrics.RenderErrors)
	publishCounter("request_cache_hits", ApiMetrics.RequestCacheHits)
	publishCounter("request_cache_misses", ApiMetrics.RequestCacheMisses)
	publishCounter("render_cache_overhead_ns", ApiMetrics.RenderCacheOverheadNS)

	switch config.Config.Cache.Type {
	case "memcache":
		mcache := config.Config.ResponseCache.(*cache.MemcachedCache)

		ApiMetrics.MemcacheTimeouts = metrics.NewRegisteredFunctionalGauge("memcache_timeouts", nil, func() int64 {
			return int64(mcache.Timeouts())
		})
		expvar.Publish("memcache_timeouts", expvar.Func(func() interface{} {
			return mcache.Timeouts()
		}))

	case "redis":
		rcache := config.Config.ResponseCache.(*cache.RedisCache)

		ApiMetrics.RedisTimeouts = metrics.NewRegisteredFunctionalGauge("redis_timeouts", nil, func() int64 {
			return int64(rcache.Timeouts())
		})
		expvar.Publish("redis_timeouts", expvar.Func(func() interface{} {
			return rcache.Timeouts()
		}))

	case "mem":
		ecache := config.Config.ResponseCache.(*cache.ExpireCache)

		ApiMetrics.CacheSize = metrics.NewRegisteredFunctionalGauge("cache_size", nil, func() int64 {
			return int64(ecache.Size())
		})
		expvar.Publish("cache_size", expvar.Func(func() interface{} {
			return ecache.Size()
		}))

		ApiMetrics.CacheItems = metrics.NewRegisteredFunctionalGauge("cache_items", nil, func() int64 {
			return int64(ecache.Items())
		})
		expvar.Publish("cache_items", expvar.Func(func() interface{} {
			return ecache.Items()
		}))
	default:
	}

	// +1 to track every over the number of buckets we track
	TimeBuckets = make([]int64, config.Config.Buckets+1)
	expvar.Publish("requestBuckets", expvar.Func(RenderTimeBuckets))
}
