package http

import (
	"testing"
)

func BenchmarkResponseCacheComputeKey(b *testing.B) {
	template := "dark"
	body := []byte(`{"settings":{"width":800,"height":600,"bgcolor":"black"},` +
		`"series":[{"label":"cpu","color":"red","x":[1,2,3,4],"y":[0.5,0.7,0.6,0.9]},` +
		`{"label":"mem","color":"blue","x":[1,2,3,4],"y":[12,14,13,17]}]}`)

	for i := 0; i < b.N; i++ {
		_ = responseCacheComputeKey(jsonFormat, template, body)
	}
}
