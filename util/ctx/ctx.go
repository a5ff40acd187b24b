package ctx

import (
	"context"
	"net/http"
)

type key int

const HeaderUUIDAPI = "X-CTX-ScatterAPI-UUID"

const (
	uuidKey key = iota
	logHeadersKey
)

func ifaceToString(v interface{}) string {
	if v != nil {
		return v.(string)
	}
	return ""
}

func getCtxString(ctx context.Context, k key) string {
	return ifaceToString(ctx.Value(k))
}

func GetUUID(ctx context.Context) string {
	return getCtxString(ctx, uuidKey)
}

func SetUUID(ctx context.Context, v string) context.Context {
	return context.WithValue(ctx, uuidKey, v)
}

func GetLogHeaders(ctx context.Context) map[string]string {
	if headers, ok := ctx.Value(logHeadersKey).(map[string]string); ok {
		return headers
	}
	return nil
}

func SetLogHeaders(ctx context.Context, headers map[string]string) context.Context {
	return context.WithValue(ctx, logHeadersKey, headers)
}

// ParseCtx lifts the request id header into the request context so
// handlers and access logs share one id per request.
func ParseCtx(h http.HandlerFunc, uuidHeaderName string) http.HandlerFunc {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		uuid := req.Header.Get(uuidHeaderName)

		ctx := req.Context()
		ctx = SetUUID(ctx, uuid)

		h.ServeHTTP(rw, req.WithContext(ctx))
	})
}
