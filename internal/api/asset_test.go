package api

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAssetURL(t *testing.T) {
	c := New("http://localhost:8080")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty means nothing to display", "", ""},
		{"relative path unchanged", "/files/chair.glb", "/files/chair.glb"},
		{"bare path unchanged", "files/chair.glb", "files/chair.glb"},
		{
			"remote url proxied",
			"https://cdn.example.com/chair.glb",
			"http://localhost:8080/api/proxy-glb?url=" + url.QueryEscape("https://cdn.example.com/chair.glb"),
		},
		{
			"own origin untouched",
			"http://localhost:8080/files/chair.glb",
			"http://localhost:8080/files/chair.glb",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ResolveAssetURL(tt.in))
		})
	}
}

func TestResolveAssetURL_Idempotent(t *testing.T) {
	c := New("http://localhost:8080")

	for _, in := range []string{
		"",
		"/files/chair.glb",
		"https://cdn.example.com/chair.glb",
	} {
		once := c.ResolveAssetURL(in)
		assert.Equal(t, once, c.ResolveAssetURL(once), "input %q", in)
	}
}

func TestResolveAssetURL_RemoteAlwaysSameOrigin(t *testing.T) {
	c := New("http://localhost:8080")

	for _, in := range []string{
		"https://cdn.example.com/a.glb",
		"http://other.host:9999/b.glb?v=2",
	} {
		out := c.ResolveAssetURL(in)
		assert.True(t, strings.HasPrefix(out, "http://localhost:8080/"), "got %q", out)
	}
}
