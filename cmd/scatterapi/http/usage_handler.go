package http

import (
	"net/http"
)

var usageMsg = []byte(`
supported requests:
    /lb_check
    /render/?format=
    /templates/
    /version/
`)

func usageHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write(usageMsg)
}
