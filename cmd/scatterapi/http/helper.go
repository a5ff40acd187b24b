package http

import (
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lomik/zapwriter"
	"go.uber.org/zap"

	"github.com/go-graphite/scatterapi/cmd/scatterapi/config"
	"github.com/go-graphite/scatterapi/scatterapipb"
	utilctx "github.com/go-graphite/scatterapi/util/ctx"
)

type responseFormat int

// for testing
var timeNow = time.Now

const (
	svgFormat responseFormat = iota
	jsonFormat
	pickleFormat
)

func (r responseFormat) String() string {
	switch r {
	case svgFormat:
		return "svg"
	case jsonFormat:
		return "json"
	case pickleFormat:
		return "pickle"
	default:
		return "unknown"
	}
}

var knownFormats = map[string]responseFormat{
	"svg":    svgFormat,
	"json":   jsonFormat,
	"pickle": pickleFormat,
}

const (
	contentTypeJSON       = "application/json"
	contentTypeJavaScript = "text/javascript"
	contentTypePickle     = "application/pickle"
	contentTypeSVG        = "image/svg+xml"
)

func getFormat(r *http.Request, defaultFormat responseFormat) (responseFormat, bool, string) {
	format := r.FormValue("format")

	if format == "" {
		return defaultFormat, true, format
	}

	f, ok := knownFormats[format]
	return f, ok, format
}

func writeErrorResponse(w http.ResponseWriter, returnCode int, err, scatterapiUUID string) {
	w.Header().Set(utilctx.HeaderUUIDAPI, scatterapiUUID)
	http.Error(w, err, returnCode)
}

func writeResponse(w http.ResponseWriter, returnCode int, b []byte, format responseFormat, jsonp, scatterapiUUID string) {
	w.Header().Set(utilctx.HeaderUUIDAPI, scatterapiUUID)
	switch format {
	case jsonFormat:
		if jsonp != "" {
			w.Header().Set("Content-Type", contentTypeJavaScript)
			w.WriteHeader(returnCode)
			_, _ = w.Write([]byte(jsonp))
			_, _ = w.Write([]byte{'('})
			_, _ = w.Write(b)
			_, _ = w.Write([]byte{')'})
		} else {
			w.Header().Set("Content-Type", contentTypeJSON)
			w.WriteHeader(returnCode)
			_, _ = w.Write(b)
		}
	case pickleFormat:
		w.Header().Set("Content-Type", contentTypePickle)
		w.WriteHeader(returnCode)
		_, _ = w.Write(b)
	case svgFormat:
		w.Header().Set("Content-Type", contentTypeSVG)
		w.WriteHeader(returnCode)
		_, _ = w.Write(b)
	}
}

func bucketRequestTimes(req *http.Request, t time.Duration) {
	ms := t.Nanoseconds() / int64(time.Millisecond)

	bucket := int(ms / 100)

	if bucket < config.Config.Buckets {
		atomic.AddInt64(&TimeBuckets[bucket], 1)
	} else {
		// Too slow, track in the overflow bucket and log
		atomic.AddInt64(&TimeBuckets[config.Config.Buckets], 1)
		logger := zapwriter.Logger("slow")
		logger.Warn("slow request",
			zap.Duration("time", t),
			zap.String("url", req.URL.String()),
			zap.String("referer", req.Referer()),
		)
	}
}

func splitRemoteAddr(addr string) (string, string) {
	tmp := strings.Split(addr, ":")
	if len(tmp) < 1 {
		return "unknown", "unknown"
	}
	if len(tmp) == 1 {
		return tmp[0], ""
	}

	return tmp[0], tmp[1]
}

func deferredAccessLogging(accessLogger *zap.Logger, accessLogDetails *scatterapipb.AccessLogDetails, t time.Time, logAsError bool) {
	accessLogDetails.Runtime = time.Since(t).Seconds()
	if logAsError {
		accessLogger.Error("request failed", zap.Any("data", *accessLogDetails))
	} else {
		accessLogDetails.HTTPCode = http.StatusOK
		accessLogger.Info("request served", zap.Any("data", *accessLogDetails))
		Gstatsd.Timing("stat.all.response_size", accessLogDetails.ScatterapiResponseSizeBytes, 1.0)
	}
}
