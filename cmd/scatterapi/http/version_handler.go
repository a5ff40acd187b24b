package http

import (
	"net/http"
	"time"

	"github.com/lomik/zapwriter"
	"go.uber.org/zap"

	"github.com/go-graphite/scatterapi/scatterapipb"
)

func versionHandler(w http.ResponseWriter, r *http.Request) {
	t0 := time.Now()
	accessLogger := zapwriter.Logger("access")

	_, _ = w.Write([]byte("1.0.0\n"))

	srcIP, srcPort := splitRemoteAddr(r.RemoteAddr)
	var accessLogDetails = scatterapipb.AccessLogDetails{
		Handler:  "version",
		URL:      r.URL.RequestURI(),
		PeerIP:   srcIP,
		PeerPort: srcPort,
		Host:     r.Host,
		Referer:  r.Referer(),
		Runtime:  time.Since(t0).Seconds(),
		HTTPCode: http.StatusOK,
		URI:      r.RequestURI,
	}
	accessLogger.Info("request served", zap.Any("data", accessLogDetails))
}
