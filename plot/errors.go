package plot

import (
	"net/http"

	"github.com/ansel1/merry"
)

var ErrInvalidSettings = merry.New("invalid settings").WithHTTPCode(http.StatusBadRequest)
var ErrInvalidSeries = merry.New("invalid series").WithHTTPCode(http.StatusBadRequest)
var ErrDegenerateExtent = merry.New("degenerate axis extent").WithHTTPCode(http.StatusBadRequest)
var ErrUnknownTemplate = merry.New("unknown graph template").WithHTTPCode(http.StatusBadRequest)
