// Package routepath stores canonical HTTP paths for the web service.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root       = "/"
	RootExact  = "/{$}"
	Auth       = "/auth"
	Dashboard  = "/dashboard"
	Health     = "/up"
	Metrics    = "/metrics"
	Static     = "/static/"

	// ModeSignup selects the sign-up form on the auth route.
	ModeSignup = "signup"
	// ModeQueryKey is the query parameter read by the auth route.
	ModeQueryKey = "mode"
	// LangQueryKey is the query parameter used to switch page language.
	LangQueryKey = "lang"
)

// AuthWithMode returns the auth route with the mode query parameter set.
func AuthWithMode(mode string) string {
	mode = strings.TrimSpace(mode)
	if mode == "" {
		return Auth
	}
	return Auth + "?" + url.Values{ModeQueryKey: {mode}}.Encode()
}

// Label returns a bounded metrics label for a request path.
func Label(path string) string {
	switch {
	case path == Root:
		return "root"
	case path == Health:
		return "health"
	case path == Metrics:
		return "metrics"
	case strings.HasPrefix(path, Static):
		return "static"
	default:
		return "other"
	}
}
