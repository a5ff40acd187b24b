package http

import (
	"net/http"

	"github.com/ansel1/merry"

	"github.com/go-graphite/scatterapi/limiter"
)

// httpCode maps a render pipeline error to the status code the client
// gets. Errors that carry no code of their own come back as 500.
func httpCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if merry.Is(err, limiter.ErrTimeout) {
		return http.StatusServiceUnavailable
	}
	return merry.HTTPCode(err)
}
