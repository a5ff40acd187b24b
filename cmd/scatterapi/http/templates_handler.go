package http

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/lomik/zapwriter"
	"github.com/maruel/natural"
	"go.uber.org/zap"

	"github.com/go-graphite/scatterapi/plot"
	"github.com/go-graphite/scatterapi/scatterapipb"
	utilctx "github.com/go-graphite/scatterapi/util/ctx"
)

// templatesHandler lists the registered graph template names so clients
// can discover what the template render parameter accepts.
func templatesHandler(w http.ResponseWriter, r *http.Request) {
	t0 := time.Now()
	accessLogger := zapwriter.Logger("access")

	names := plot.TemplateNames()
	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })

	b, err := json.Marshal(struct {
		Templates []string `json:"templates"`
	}{
		Templates: names,
	})

	code := http.StatusOK
	if err != nil {
		code = http.StatusInternalServerError
		http.Error(w, http.StatusText(code), code)
	} else {
		w.Header().Set(utilctx.HeaderUUIDAPI, utilctx.GetUUID(r.Context()))
		w.Header().Set("Content-Type", contentTypeJSON)
		_, _ = w.Write(b)
	}

	srcIP, srcPort := splitRemoteAddr(r.RemoteAddr)
	var accessLogDetails = scatterapipb.AccessLogDetails{
		Handler:  "templates",
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
