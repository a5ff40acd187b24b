package http

import (
	"net/http"

	utilctx "github.com/go-graphite/scatterapi/util/ctx"
)

// enrichContextWithHeaders saves the configured request headers in the
// context so the access log can report them later
func enrichContextWithHeaders(headersToLog []string, fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		headersToLogMap := make(map[string]string)
		for _, name := range headersToLog {
			h := req.Header.Get(name)
			if h != "" {
				headersToLogMap[name] = h
			}
		}

		ctx := utilctx.SetLogHeaders(req.Context(), headersToLogMap)
		req = req.WithContext(ctx)

		fn(w, req)
	}
}
