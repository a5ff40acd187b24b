package http

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/lomik/zapwriter"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"

	"github.com/go-graphite/scatterapi/cmd/scatterapi/config"
	"github.com/go-graphite/scatterapi/pkg/parser"
	"github.com/go-graphite/scatterapi/plot"
	"github.com/go-graphite/scatterapi/plot/types"
	"github.com/go-graphite/scatterapi/scatterapipb"
	utilctx "github.com/go-graphite/scatterapi/util/ctx"
)

// responseCacheComputeKey ties a cached response to everything that shapes
// it: the output format, the template and the raw request body.
func responseCacheComputeKey(format responseFormat, template string, body []byte) string {
	payload := sha256.Sum256(body)
	return format.String() + ":" + template + ":" + hex.EncodeToString(payload[:])
}

func renderHandler(w http.ResponseWriter, r *http.Request) {
	t0 := timeNow()
	uid := uuid.NewV4()
	ctx := utilctx.SetUUID(r.Context(), uid.String())
	username, _, _ := r.BasicAuth()

	logger := zapwriter.Logger("render").With(zap.String("scatterapi_uuid", uid.String()))

	srcIP, srcPort := splitRemoteAddr(r.RemoteAddr)
	accessLogger := zapwriter.Logger("access")
	accessLogDetails := scatterapipb.AccessLogDetails{
		Handler:        "render",
		Username:       username,
		ScatterapiUUID: uid.String(),
		URL:            r.URL.RequestURI(),
		PeerIP:         srcIP,
		PeerPort:       srcPort,
		Host:           r.Host,
		Referer:        r.Referer(),
		URI:            r.RequestURI,
		RequestHeaders: utilctx.GetLogHeaders(ctx),
	}

	logAsError := false
	defer func() {
		deferredAccessLogging(accessLogger, &accessLogDetails, t0, logAsError)
	}()

	ApiMetrics.Requests.Add(1)
	ApiMetrics.RenderRequests.Add(1)
	Gstatsd.Inc("render.requests", 1, 1.0)

	if r.Method != http.MethodPost {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "render requests must use POST", uid.String())
		accessLogDetails.HTTPCode = http.StatusMethodNotAllowed
		accessLogDetails.Reason = "method not allowed"
		logAsError = true
		return
	}

	format, ok, formatRaw := getFormat(r, svgFormat)
	if !ok {
		writeErrorResponse(w, http.StatusBadRequest, "unsupported format: "+formatRaw, uid.String())
		accessLogDetails.HTTPCode = http.StatusBadRequest
		accessLogDetails.Reason = "unsupported format: " + formatRaw
		logAsError = true
		return
	}
	accessLogDetails.Format = format.String()

	var jsonp string
	if format == jsonFormat {
		// jsonp only makes sense for json
		jsonp = r.FormValue("jsonp")
	}

	template := r.FormValue("template")
	accessLogDetails.Template = template

	useCache := !parser.TruthyBool(r.FormValue("noCache"))

	cacheTimeout := config.Config.Cache.DefaultTimeoutSec
	if tstr := r.FormValue("cacheTimeout"); tstr != "" {
		t, err := strconv.Atoi(tstr)
		if err != nil {
			logger.Error("failed to parse cacheTimeout",
				zap.String("value", tstr),
				zap.Error(err),
			)
		} else {
			cacheTimeout = int32(t)
		}
	}

	accessLogDetails.UseCache = useCache
	accessLogDetails.CacheTimeout = cacheTimeout

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "failed to read request body", uid.String())
		accessLogDetails.HTTPCode = http.StatusBadRequest
		accessLogDetails.Reason = err.Error()
		logAsError = true
		return
	}

	cacheKey := responseCacheComputeKey(format, template, body)

	if useCache {
		tc := time.Now()
		response, err := config.Config.ResponseCache.Get(cacheKey)
		td := time.Since(tc).Nanoseconds()
		ApiMetrics.RenderCacheOverheadNS.Add(uint64(td))

		if err == nil {
			ApiMetrics.RequestCacheHits.Add(1)
			writeResponse(w, http.StatusOK, response, format, jsonp, uid.String())
			accessLogDetails.FromCache = true
			accessLogDetails.ScatterapiResponseSizeBytes = int64(len(response))
			return
		}
		ApiMetrics.RequestCacheMisses.Add(1)
	}

	if err := config.Config.Limiter.Enter(ctx); err != nil {
		writeErrorResponse(w, http.StatusServiceUnavailable, err.Error(), uid.String())
		accessLogDetails.HTTPCode = http.StatusServiceUnavailable
		accessLogDetails.Reason = err.Error()
		logAsError = true
		return
	}
	defer config.Config.Limiter.Leave()

	req, err := parser.ParseRequest(body)
	if err != nil {
		code := httpCode(err)
		writeErrorResponse(w, code, err.Error(), uid.String())
		accessLogDetails.HTTPCode = int32(code)
		accessLogDetails.Reason = err.Error()
		logAsError = true
		return
	}

	accessLogDetails.SeriesCount = len(req.Series)
	points := 0
	for i := range req.Series {
		points += req.Series[i].Len()
	}
	accessLogDetails.PointsCount = points

	defaults := plot.DefaultParams
	if template != "" {
		defaults, err = plot.GetTemplate(template)
		if err != nil {
			code := httpCode(err)
			writeErrorResponse(w, code, err.Error(), uid.String())
			accessLogDetails.HTTPCode = int32(code)
			accessLogDetails.Reason = err.Error()
			logAsError = true
			return
		}
	}

	params, err := plot.ResolveParams(req.Settings, defaults)
	if err != nil {
		code := httpCode(err)
		writeErrorResponse(w, code, err.Error(), uid.String())
		accessLogDetails.HTTPCode = int32(code)
		accessLogDetails.Reason = err.Error()
		logAsError = true
		return
	}

	doc, err := plot.RenderWithParams(params, req.Series)
	if err != nil {
		ApiMetrics.RenderErrors.Add(1)
		Gstatsd.Inc("render.errors", 1, 1.0)
		code := httpCode(err)
		writeErrorResponse(w, code, err.Error(), uid.String())
		accessLogDetails.HTTPCode = int32(code)
		accessLogDetails.Reason = err.Error()
		logAsError = true
		return
	}

	var b []byte
	switch format {
	case jsonFormat:
		b = types.MarshalJSON(doc)
	case pickleFormat:
		b = types.MarshalPickle(doc)
	case svgFormat:
		b = types.MarshalSVG(doc)
	}

	writeResponse(w, http.StatusOK, b, format, jsonp, uid.String())

	if useCache && len(b) != 0 {
		config.Config.ResponseCache.Set(cacheKey, b, cacheTimeout)
	}

	accessLogDetails.ScatterapiResponseSizeBytes = int64(len(b))
}
