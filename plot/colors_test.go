package plot

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomColors(t *testing.T) {
	cs := RandomColors()
	pat := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pat, cs.Color(), "random colors must be 6 lower hex digits")
	}
}

func TestCycleColors(t *testing.T) {
	cs := CycleColors([]string{"red", "green", "blue"})
	got := []string{cs.Color(), cs.Color(), cs.Color(), cs.Color(), cs.Color()}
	assert.Equal(t, []string{"red", "green", "blue", "red", "green"}, got, "cycle must wrap around")
}

func TestSetColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		value   string
		wantErr bool
		want    string
	}{
		{name: "six digits", color: "steel", value: "4682b4", want: "#4682b4"},
		{name: "with hash", color: "coal", value: "#333333", want: "#333333"},
		{name: "three digits", color: "shorthand", value: "#abc", want: "#abc"},
		{name: "eight digits", color: "glass", value: "ffffff80", want: "#ffffff80"},
		{name: "junk", color: "bad", value: "chartreuse", wantErr: true},
		{name: "wrong length", color: "bad2", value: "#ffff", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetColor(tt.color, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, resolveColor(tt.color), "palette entry not applied")
		})
	}
}

func TestResolveColor(t *testing.T) {
	assert.Equal(t, "#ff0000", resolveColor("red"), "palette name must resolve")
	assert.Equal(t, "#bada55", resolveColor("#bada55"), "hex must pass through")
	assert.Equal(t, "rgb(1,2,3)", resolveColor("rgb(1,2,3)"), "unknown strings pass through verbatim")
}
