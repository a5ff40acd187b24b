package http

import (
	"net/http"
	"time"

	"github.com/lomik/zapwriter"
	"github.com/tevino/abool"
	"go.uber.org/zap"

	"github.com/go-graphite/scatterapi/scatterapipb"
)

// Ready gates /lb_check. main sets it once the listeners are up and
// clears it when shutdown starts so the balancer drains us first.
var Ready = abool.New()

func lbcheckHandler(w http.ResponseWriter, r *http.Request) {
	t0 := time.Now()
	accessLogger := zapwriter.Logger("access")

	code := http.StatusOK
	if Ready.IsNotSet() {
		code = http.StatusServiceUnavailable
		http.Error(w, "not ready", code)
	} else {
		_, _ = w.Write([]byte("Ok\n"))
	}

	srcIP, srcPort := splitRemoteAddr(r.RemoteAddr)

	var accessLogDetails = scatterapipb.AccessLogDetails{
		Handler:  "lbcheck",
		URL:      r.URL.RequestURI(),
		PeerIP:   srcIP,
		PeerPort: srcPort,
		Host:     r.Host,
		Referer:  r.Referer(),
		Runtime:  time.Since(t0).Seconds(),
		HTTPCode: int32(code),
		URI:      r.RequestURI,
	}
	accessLogger.Info("request served", zap.Any("data", accessLogDetails))
}
