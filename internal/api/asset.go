package api

import (
	"net/url"
	"strings"
)

// ResolveAssetURL maps a stored asset address to something the viewer can
// load. Fully-qualified URLs on other hosts are rewritten through the
// service's proxy endpoint so the binary arrives from our own origin;
// addresses already on our origin and relative paths pass through unchanged.
// Empty input means there is nothing to display.
func (c *Client) ResolveAssetURL(raw string) string {
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return raw
	}
	if c.baseURL != "" && strings.HasPrefix(raw, c.baseURL+"/") {
		return raw
	}
	return c.baseURL + "/api/proxy-glb?url=" + url.QueryEscape(raw)
}

// absoluteAssetURL turns a resolved address into something dialable from the
// client: relative paths are joined onto the service base URL.
func (c *Client) absoluteAssetURL(resolved string) string {
	if resolved == "" {
		return ""
	}
	if strings.HasPrefix(resolved, "http://") || strings.HasPrefix(resolved, "https://") {
		return resolved
	}
	if strings.HasPrefix(resolved, "/") {
		return c.baseURL + resolved
	}
	return c.baseURL + "/" + resolved
}
