package plot

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/ansel1/merry"
)

// ColorSource yields fallback colors for series that did not set one. The
// production source is random, tests and color-list templates substitute a
// deterministic one.
type ColorSource interface {
	Color() string
}

type randomColors struct{}

func (randomColors) Color() string {
	return fmt.Sprintf("#%06x", rand.Intn(1<<24))
}

// RandomColors draws uniformly over the 24-bit color space. It uses the
// process-wide random source, colors are not reproducible across runs.
func RandomColors() ColorSource {
	return randomColors{}
}

type cycleColors struct {
	list []string
	next int
}

func (c *cycleColors) Color() string {
	clr := c.list[c.next]
	c.next++
	if c.next >= len(c.list) {
		c.next = 0
	}
	return clr
}

// CycleColors yields colors from list in order, wrapping around.
func CycleColors(list []string) ColorSource {
	return &cycleColors{list: list}
}

var colors = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"red":       "#ff0000",
	"green":     "#00ff00",
	"blue":      "#0000ff",
	"yellow":    "#ffff00",
	"orange":    "#ffa500",
	"purple":    "#c864ff",
	"brown":     "#aa6432",
	"cyan":      "#00ffff",
	"magenta":   "#ff00ff",
	"pink":      "#ff64ff",
	"gold":      "#c8a032",
	"rose":      "#c86464",
	"darkblue":  "#0000ff",
	"darkgreen": "#00c800",
	"darkred":   "#c80032",
	"darkgray":  "#6f6f6f",
	"darkgrey":  "#6f6f6f",
	"gray":      "#afafaf",
	"grey":      "#afafaf",
}

var errBadColor = merry.New("color must be a hex rgb or rgba value")

// SetColor adds or replaces a named palette entry. The value must be a
// 3, 6 or 8 digit hex color, with or without the leading '#'.
func SetColor(name, value string) error {
	h := value
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}
	if len(h) != 3 && len(h) != 6 && len(h) != 8 {
		return errBadColor.WithValue("color", value)
	}
	if _, err := strconv.ParseUint(h, 16, 64); err != nil {
		return errBadColor.WithValue("color", value).WithCause(err)
	}
	colors[name] = "#" + h
	return nil
}

// resolveColor maps a palette name to its hex value. Anything not in the
// palette passes through verbatim.
func resolveColor(clr string) string {
	if c, ok := colors[clr]; ok {
		return c
	}
	return clr
}
