package main

import (
	"context"
	"expvar"
	"flag"
	"log"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	"github.com/lomik/zapwriter"
	"go.uber.org/zap"

	"github.com/go-graphite/scatterapi/cmd/scatterapi/config"
	"github.com/go-graphite/scatterapi/cmd/scatterapi/helper"
	scatterapiHttp "github.com/go-graphite/scatterapi/cmd/scatterapi/http"
)

// BuildVersion is provided to be overridden at build time. Eg. go build -ldflags -X 'main.BuildVersion=...'
var BuildVersion = "(development build)"

func main() {
	err := zapwriter.ApplyConfig([]zapwriter.Config{config.DefaultLoggerConfig})
	if err != nil {
		log.Fatal("Failed to initialize logger with default configuration")
	}
	logger := zapwriter.Logger("main")

	configPath := flag.String("config", "", "Path to the `config file`.")
	envPrefix := flag.String("envprefix", "SCATTERAPI_", "Prefix for environment variables override")
	flag.Parse()
	if *envPrefix == "" {
		logger.Warn("empty prefix is not recommended due to possible collisions with OS environment variables")
	}

	config.SetUpViper(logger, configPath, *envPrefix)
	config.SetUpConfig(logger, BuildVersion)

	scatterapiHttp.SetupMetrics(logger)
	scatterapiHttp.SetupStatsd(logger)
	graphiteExporter := setupGraphiteMetrics(logger)

	r := scatterapiHttp.InitHandlers(config.Config.HeadersToLog)
	handler := handlers.CompressHandler(r)
	handler = handlers.CORS()(handler)
	handler = handlers.ProxyHeaders(handler)

	if config.Config.Expvar.Enabled && config.Config.Expvar.Listen != "" && config.Config.Expvar.Listen != config.Config.Listen {
		expvarMux := http.NewServeMux()
		expvarMux.Handle("/debug/vars", expvar.Handler())
		if config.Config.Expvar.PProfEnabled {
			expvarMux.HandleFunc("/debug/pprof/", pprof.Index)
			expvarMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
			expvarMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
			expvarMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
			expvarMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
		}

		logger.Info("expvar handler will listen on a separate address/port",
			zap.String("expvar_listen", config.Config.Expvar.Listen),
			zap.Bool("pprof_enabled", config.Config.Expvar.PProfEnabled),
		)

		go func() {
			err := http.ListenAndServe(config.Config.Expvar.Listen, expvarMux)
			if err != nil {
				logger.Fatal("failed to start expvar server",
					zap.Error(err),
				)
			}
		}()
	}

	server := &http.Server{
		Addr:    config.Config.Listen,
		Handler: handler,
	}

	var listener net.Listener
	if config.Config.UseReusePort {
		lc := net.ListenConfig{Control: helper.ReusePort}
		listener, err = lc.Listen(context.Background(), "tcp", config.Config.Listen)
	} else {
		listener, err = net.Listen("tcp", config.Config.Listen)
	}
	if err != nil {
		logger.Fatal("failed to start listener",
			zap.String("listen", config.Config.Listen),
			zap.Error(err),
		)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()

	scatterapiHttp.Ready.Set()
	logger.Info("scatterapi started",
		zap.String("listen", config.Config.Listen),
		zap.String("build_version", BuildVersion),
	)

	select {
	case err := <-serveErr:
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed",
				zap.Error(err),
			)
		}
	case sig := <-stop:
		// flip lb_check first so the balancer stops routing to us
		scatterapiHttp.Ready.UnSet()
		logger.Info("shutting down",
			zap.String("signal", sig.String()),
			zap.Duration("timeout", config.Config.Graceful.ShutdownTimeout),
		)

		ctx, cancel := context.WithTimeout(context.Background(), config.Config.Graceful.ShutdownTimeout)
		err := server.Shutdown(ctx)
		cancel()
		if err != nil {
			logger.Error("graceful shutdown failed",
				zap.Error(err),
			)
		}
	}

	if graphiteExporter != nil {
		graphiteExporter.Stop()
	}
}
