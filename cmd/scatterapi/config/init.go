package config

import (
	"bytes"
	"expvar"
	"os"
	"runtime"
	"strings"

	"github.com/ansel1/merry"
	"github.com/dustin/go-humanize"
	"github.com/lomik/zapwriter"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/go-graphite/scatterapi/cache"
	"github.com/go-graphite/scatterapi/limiter"
	"github.com/go-graphite/scatterapi/plot"
	"github.com/go-graphite/scatterapi/util/pidfile"
)

var graphTemplates map[string]plot.Params

func SetUpConfig(logger *zap.Logger, BuildVersion string) {
	Config.Cache.MemcachedServers = viper.GetStringSlice("cache.memcachedServers")
	if n := viper.GetString("logger.logger"); n != "" {
		Config.Logger[0].Logger = n
	}
	if n := viper.GetString("logger.file"); n != "" {
		Config.Logger[0].File = n
	}
	if n := viper.GetString("logger.level"); n != "" {
		Config.Logger[0].Level = n
	}
	if n := viper.GetString("logger.encoding"); n != "" {
		Config.Logger[0].Encoding = n
	}
	if n := viper.GetString("logger.encodingtime"); n != "" {
		Config.Logger[0].EncodingTime = n
	}
	if n := viper.GetString("logger.encodingduration"); n != "" {
		Config.Logger[0].EncodingDuration = n
	}
	err := zapwriter.ApplyConfig(Config.Logger)
	if err != nil {
		logger.Fatal("failed to initialize logger with requested configuration",
			zap.Any("configuration", Config.Logger),
			zap.Error(err),
		)
	}

	needStackTrace := false
	for _, l := range Config.Logger {
		if strings.ToLower(l.Level) == "debug" {
			needStackTrace = true
			break
		}
	}
	merry.SetStackCaptureEnabled(needStackTrace)

	if Config.GraphTemplates != "" {
		graphTemplates = make(map[string]plot.Params)
		graphTemplatesViper := viper.New()
		b, err := os.ReadFile(Config.GraphTemplates)
		if err != nil {
			logger.Fatal("error reading graphTemplates file",
				zap.String("graphTemplate_path", Config.GraphTemplates),
				zap.Error(err),
			)
		}

		if strings.HasSuffix(Config.GraphTemplates, ".toml") {
			logger.Info("will parse config as toml",
				zap.String("graphTemplate_path", Config.GraphTemplates),
			)
			graphTemplatesViper.SetConfigType("TOML")
		} else {
			logger.Info("will parse config as yaml",
				zap.String("graphTemplate_path", Config.GraphTemplates),
			)
			graphTemplatesViper.SetConfigType("YAML")
		}

		err = graphTemplatesViper.ReadConfig(bytes.NewBuffer(b))
		if err != nil {
			logger.Fatal("failed to parse config",
				zap.String("graphTemplate_path", Config.GraphTemplates),
				zap.Error(err),
			)
		}

		for k := range graphTemplatesViper.AllSettings() {
			// we need to explicitly copy ColorList
			newStruct := plot.DefaultParams
			newStruct.ColorList = nil
			sub := graphTemplatesViper.Sub(k)
			err = sub.Unmarshal(&newStruct)
			if err != nil {
				logger.Error("failed to parse graphTemplates config, settings will be ignored",
					zap.String("graphTemplate_path", Config.GraphTemplates),
					zap.Error(err),
				)
			}
			if len(newStruct.ColorList) == 0 && len(plot.DefaultParams.ColorList) > 0 {
				newStruct.ColorList = make([]string, len(plot.DefaultParams.ColorList))
				copy(newStruct.ColorList, plot.DefaultParams.ColorList)
			}
			graphTemplates[k] = newStruct
		}

		for name, params := range graphTemplates {
			plot.SetTemplate(name, params)
		}
	}

	if Config.DefaultColors != nil {
		for name, color := range Config.DefaultColors {
			err = plot.SetColor(name, color)
			if err != nil {
				logger.Warn("invalid color specified and will be ignored",
					zap.String("reason", "color must be valid hex rgb or rgba value, e.x. '#c80032', 'c80032', 'c80032ff', etc."),
					zap.Error(err),
				)
			}
		}
	}

	if Config.ColorFile != "" {
		b, err := os.ReadFile(Config.ColorFile)
		if err != nil {
			logger.Fatal("error reading colors file",
				zap.String("colors_path", Config.ColorFile),
				zap.Error(err),
			)
		}

		// parsed directly, the main config loader folds palette names to
		// lower case
		palette := make(map[string]string)
		err = yaml.Unmarshal(b, &palette)
		if err != nil {
			logger.Fatal("failed to parse colors file",
				zap.String("colors_path", Config.ColorFile),
				zap.Error(err),
			)
		}

		for name, color := range palette {
			err = plot.SetColor(name, color)
			if err != nil {
				logger.Warn("invalid color specified and will be ignored",
					zap.String("color_name", name),
					zap.Error(err),
				)
			}
		}
	}

	expvar.NewString("GoVersion").Set(runtime.Version())
	expvar.NewString("BuildVersion").Set(BuildVersion)
	expvar.Publish("config", Config)

	Config.Limiter = limiter.NewSimpleLimiter(Config.ConcurrencyLimit)

	switch Config.Cache.Type {
	case "memcache":
		if len(Config.Cache.MemcachedServers) == 0 {
			logger.Fatal("memcache cache requested but no memcache servers provided")
		}

		logger.Info("memcached configured",
			zap.Strings("servers", Config.Cache.MemcachedServers),
		)
		Config.ResponseCache = cache.NewMemcached("scatter", Config.Cache.MemcachedServers...)
	case "redis":
		if Config.Cache.Redis.Address == "" {
			logger.Fatal("redis cache requested but no redis address provided")
		}

		logger.Info("redis configured",
			zap.String("address", Config.Cache.Redis.Address),
			zap.Int("database", Config.Cache.Redis.Database),
		)
		Config.ResponseCache = cache.NewRedis("scatter", Config.Cache.Redis)
	case "mem":
		Config.ResponseCache = cache.NewExpireCache(uint64(Config.Cache.Size * 1024 * 1024))
		logger.Info("memory cache configured",
			zap.String("max_size", humanize.IBytes(uint64(Config.Cache.Size)*1024*1024)),
		)
	case "null":
		// defaults
		Config.ResponseCache = cache.NullCache{}
	default:
		logger.Error("unknown cache type",
			zap.String("cache_type", Config.Cache.Type),
			zap.Strings("known_cache_types", []string{"null", "mem", "memcache", "redis"}),
		)
	}

	if Config.Cpus != 0 {
		runtime.GOMAXPROCS(Config.Cpus)
	}

	if Config.PidFile != "" {
		err := pidfile.WritePidFile(Config.PidFile)
		if err != nil {
			logger.Fatal("error writing pidfile",
				zap.String("pidfile_path", Config.PidFile),
				zap.Error(err),
			)
		}
	}
}

func SetUpViper(logger *zap.Logger, configPath *string, viperPrefix string) {
	if *configPath != "" {
		b, err := os.ReadFile(*configPath)
		if err != nil {
			logger.Fatal("error reading config file",
				zap.String("config_path", *configPath),
				zap.Error(err),
			)
		}

		if strings.HasSuffix(*configPath, ".toml") {
			logger.Info("will parse config as toml",
				zap.String("config_file", *configPath),
			)
			viper.SetConfigType("TOML")
		} else {
			logger.Info("will parse config as yaml",
				zap.String("config_file", *configPath),
			)
			viper.SetConfigType("YAML")
		}
		err = viper.ReadConfig(bytes.NewBuffer(b))
		if err != nil {
			logger.Fatal("failed to parse config",
				zap.String("config_path", *configPath),
				zap.Error(err),
			)
		}
	}

	if viperPrefix != "" {
		viper.SetEnvPrefix(viperPrefix)
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("listen", ":8080")
	viper.SetDefault("useReusePort", false)
	viper.SetDefault("buckets", 10)
	viper.SetDefault("concurrencyLimit", 0)
	viper.SetDefault("cache.type", "mem")
	viper.SetDefault("cache.size_mb", 0)
	viper.SetDefault("cache.defaultTimeoutSec", 60)
	viper.SetDefault("cache.memcachedServers", []string{})
	viper.SetDefault("cache.redis.address", "127.0.0.1:6379")
	viper.SetDefault("cpus", 0)
	viper.SetDefault("graphite.host", "")
	viper.SetDefault("graphite.interval", "60s")
	viper.SetDefault("graphite.prefix", "scatter.api")
	viper.SetDefault("graphite.pattern", "{prefix}.{fqdn}")
	viper.SetDefault("statsd.address", "")
	viper.SetDefault("statsd.prefix", "scatterapi")
	viper.SetDefault("pidFile", "")
	viper.SetDefault("graceful.shutdownTimeout", "10s")
	viper.SetDefault("expvar.enabled", true)
	viper.SetDefault("expvar.pprofEnabled", false)
	viper.SetDefault("expvar.listen", "")
	viper.SetDefault("logger", map[string]string{})
	viper.AutomaticEnv()

	err := viper.Unmarshal(&Config)
	if err != nil {
		logger.Fatal("failed to parse config",
			zap.Error(err),
		)
	}
}
