package http

import (
	"time"

	"github.com/cactus/go-statsd-client/v5/statsd"
	"go.uber.org/zap"

	"github.com/go-graphite/scatterapi/cmd/scatterapi/config"
)

// NullSender  is disabled sender (if stat need to be disabled)
type NullSender struct{}

func (NullSender) Inc(string, int64, float32, ...statsd.Tag) error                    { return nil }
func (NullSender) Dec(string, int64, float32, ...statsd.Tag) error                    { return nil }
func (NullSender) Gauge(string, int64, float32, ...statsd.Tag) error                  { return nil }
func (NullSender) GaugeDelta(string, int64, float32, ...statsd.Tag) error             { return nil }
func (NullSender) Timing(string, int64, float32, ...statsd.Tag) error                 { return nil }
func (NullSender) TimingDuration(string, time.Duration, float32, ...statsd.Tag) error { return nil }
func (NullSender) Set(string, string, float32, ...statsd.Tag) error                   { return nil }
func (NullSender) SetInt(string, int64, float32, ...statsd.Tag) error                 { return nil }
func (NullSender) Raw(string, string, float32, ...statsd.Tag) error                   { return nil }
func (NullSender) NewSubStatter(string) statsd.SubStatter                             { return NullSender{} }
func (NullSender) SetPrefix(string)                                                   {}
func (NullSender) SetSamplerFunc(statsd.SamplerFunc)                                  {}
func (NullSender) Close() error                                                       { return nil }

var Gstatsd statsd.Statter = NullSender{}

// SetupStatsd swaps the null sender for a real client when an address is
// configured.
func SetupStatsd(logger *zap.Logger) {
	if config.Config.Statsd.Address == "" {
		return
	}

	client, err := statsd.NewClientWithConfig(&statsd.ClientConfig{
		Address: config.Config.Statsd.Address,
		Prefix:  config.Config.Statsd.Prefix,
	})
	if err != nil {
		logger.Error("failed to initialize statsd client, stats disabled",
			zap.String("address", config.Config.Statsd.Address),
			zap.Error(err),
		)
		return
	}

	Gstatsd = client
}
