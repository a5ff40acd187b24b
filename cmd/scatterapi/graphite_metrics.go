package main

import (
	"expvar"
	"os"
	"strings"
	"time"

	metrics "github.com/msaf1980/go-metrics"
	"github.com/msaf1980/go-metrics/graphite"
	"go.uber.org/zap"

	"github.com/go-graphite/scatterapi/cmd/scatterapi/config"
	"github.com/go-graphite/scatterapi/mstats"
)

// setupGraphiteMetrics starts the periodic exporter for everything in the
// default metrics registry. GRAPHITEHOST/GRAPHITEPORT override an unset
// graphite.host.
func setupGraphiteMetrics(logger *zap.Logger) *graphite.Graphite {
	var host string
	if envhost := os.Getenv("GRAPHITEHOST") + ":" + os.Getenv("GRAPHITEPORT"); envhost != ":" || config.Config.Graphite.Host != "" {
		switch {
		case envhost != ":" && config.Config.Graphite.Host != "":
			host = config.Config.Graphite.Host
		case envhost != ":":
			host = envhost
		case config.Config.Graphite.Host != "":
			host = config.Config.Graphite.Host
		}
	}

	if host == "" {
		return nil
	}

	hostname, _ := os.Hostname()
	hostname = strings.Replace(hostname, ".", "_", -1)

	pattern := config.Config.Graphite.Pattern
	pattern = strings.Replace(pattern, "{prefix}", config.Config.Graphite.Prefix, -1)
	pattern = strings.Replace(pattern, "{fqdn}", hostname, -1)

	go mstats.Start(config.Config.Graphite.Interval)

	metrics.NewRegisteredFunctionalGauge("alloc", nil, func() int64 { return int64(mstats.Alloc.Get()) })
	metrics.NewRegisteredFunctionalGauge("total_alloc", nil, func() int64 { return int64(mstats.TotalAlloc.Get()) })
	metrics.NewRegisteredFunctionalGauge("num_gc", nil, func() int64 { return int64(mstats.NumGC.Get()) })
	metrics.NewRegisteredFunctionalGauge("pause_ns", nil, func() int64 { return int64(mstats.PauseNS.Get()) })

	expvar.Publish("mstats.alloc", &mstats.Alloc)
	expvar.Publish("mstats.total_alloc", &mstats.TotalAlloc)
	expvar.Publish("mstats.num_gc", &mstats.NumGC)
	expvar.Publish("mstats.pause_ns", &mstats.PauseNS)

	g := graphite.WithConfig(&graphite.Config{
		Host:          host,
		FlushInterval: config.Config.Graphite.Interval,
		DurationUnit:  time.Nanosecond,
		Prefix:        pattern,
	})
	g.Start(nil)

	logger.Info("graphite exporter started",
		zap.String("host", host),
		zap.String("prefix", pattern),
		zap.Duration("interval", config.Config.Graphite.Interval),
	)

	return g
}
