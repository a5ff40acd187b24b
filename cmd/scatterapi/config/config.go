package config

import (
	"encoding/json"
	"time"

	"github.com/go-graphite/scatterapi/cache"
	"github.com/go-graphite/scatterapi/limiter"

	"github.com/lomik/zapwriter"
)

var DefaultLoggerConfig = zapwriter.Config{
	Logger:           "",
	File:             "stdout",
	Level:            "info",
	Encoding:         "console",
	EncodingTime:     "iso8601",
	EncodingDuration: "seconds",
}

type CacheConfig struct {
	Type              string            `mapstructure:"type"`
	Size              int               `mapstructure:"size_mb"`
	MemcachedServers  []string          `mapstructure:"memcachedServers"`
	DefaultTimeoutSec int32             `mapstructure:"defaultTimeoutSec"`
	Redis             cache.RedisConfig `mapstructure:"redis"`
}

type GraphiteConfig struct {
	Pattern  string
	Host     string
	Interval time.Duration
	Prefix   string
}

type StatsdConfig struct {
	Address string `mapstructure:"address"`
	Prefix  string `mapstructure:"prefix"`
}

type GracefulConfig struct {
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

type ExpvarConfig struct {
	Listen       string `mapstructure:"listen"`
	Enabled      bool   `mapstructure:"enabled"`
	PProfEnabled bool   `mapstructure:"pprofEnabled"`
}

type ConfigType struct {
	Logger           []zapwriter.Config `mapstructure:"logger"`
	Listen           string             `mapstructure:"listen"`
	UseReusePort     bool               `mapstructure:"useReusePort"`
	Buckets          int                `mapstructure:"buckets"`
	ConcurrencyLimit int                `mapstructure:"concurrencyLimit"`
	Cache            CacheConfig        `mapstructure:"cache"`
	Cpus             int                `mapstructure:"cpus"`
	Graphite         GraphiteConfig     `mapstructure:"graphite"`
	Statsd           StatsdConfig       `mapstructure:"statsd"`
	PidFile          string             `mapstructure:"pidFile"`
	GraphTemplates   string             `mapstructure:"graphTemplates"`
	DefaultColors    map[string]string  `mapstructure:"defaultColors"`
	ColorFile        string             `mapstructure:"colors"`
	HeadersToLog     []string           `mapstructure:"headersToLog"`
	Graceful         GracefulConfig     `mapstructure:"graceful"`
	Expvar           ExpvarConfig       `mapstructure:"expvar"`

	ResponseCache cache.BytesCache `mapstructure:"-" json:"-"`

	// Limiter caps concurrent render requests
	Limiter limiter.SimpleLimiter `mapstructure:"-" json:"-"`
}

// skipcq: CRT-P0003
func (c ConfigType) String() string {
	data, err := json.Marshal(c)
	if err != nil {
		return "Failed to marshal config: " + err.Error()
	} else {
		return string(data)
	}
}

var Config = ConfigType{
	Listen:           ":8080",
	Buckets:          10,
	ConcurrencyLimit: 0,
	Cache: CacheConfig{
		Type:              "mem",
		DefaultTimeoutSec: 60,
	},
	Graphite: GraphiteConfig{
		Pattern:  "{prefix}.{fqdn}",
		Host:     "",
		Interval: 60 * time.Second,
		Prefix:   "scatter.api",
	},
	Cpus:    0,
	PidFile: "",
	Graceful: GracefulConfig{
		ShutdownTimeout: 10 * time.Second,
	},
	Expvar: ExpvarConfig{
		Listen:       "",
		Enabled:      true,
		PProfEnabled: false,
	},

	ResponseCache: cache.NullCache{},

	Logger: []zapwriter.Config{DefaultLoggerConfig},
}
