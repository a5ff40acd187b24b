package http

import (
	"net/http"

	"github.com/dgryski/httputil"

	"github.com/go-graphite/scatterapi/util/ctx"
)

func InitHandlers(headersToLog []string) *http.ServeMux {
	r := http.DefaultServeMux
	r.HandleFunc("/render/", httputil.TrackConnections(httputil.TimeHandler(enrichContextWithHeaders(headersToLog, ctx.ParseCtx(renderHandler, ctx.HeaderUUIDAPI)), bucketRequestTimes)))
	r.HandleFunc("/render", httputil.TrackConnections(httputil.TimeHandler(enrichContextWithHeaders(headersToLog, ctx.ParseCtx(renderHandler, ctx.HeaderUUIDAPI)), bucketRequestTimes)))

	r.HandleFunc("/templates/", httputil.TrackConnections(httputil.TimeHandler(enrichContextWithHeaders(headersToLog, ctx.ParseCtx(templatesHandler, ctx.HeaderUUIDAPI)), bucketRequestTimes)))
	r.HandleFunc("/templates", httputil.TrackConnections(httputil.TimeHandler(enrichContextWithHeaders(headersToLog, ctx.ParseCtx(templatesHandler, ctx.HeaderUUIDAPI)), bucketRequestTimes)))

	r.HandleFunc("/lb_check", lbcheckHandler)

	r.HandleFunc("/version", versionHandler)
	r.HandleFunc("/version/", versionHandler)

	r.HandleFunc("/", enrichContextWithHeaders(headersToLog, usageHandler))
	return r
}
