package middleware

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
)

// allMethods is every method the CORS policy grants; go-chi/cors has no
// method wildcard.
var allMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodConnect,
	http.MethodTrace,
}

// CORSOptions configures the cross-origin policy.
type CORSOptions struct {
	// AllowedOrigins lists permitted origins. "*" admits every origin and
	// patterns such as "https://*.example.com" are supported.
	AllowedOrigins []string
	// MaxAge is how long, in seconds, browsers may cache a preflight result.
	MaxAge int
}

// CORS returns middleware that permits credentials, all methods and all
// headers from the configured origins.
//
// A literal "*" in Access-Control-Allow-Origin is rejected by browsers on
// credentialed requests, so an allow-all policy echoes the caller's origin.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	o := cors.Options{
		AllowedMethods:   allMethods,
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link", "Location", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           opts.MaxAge,
	}
	if len(opts.AllowedOrigins) == 0 || slices.Contains(opts.AllowedOrigins, "*") {
		o.AllowOriginFunc = func(_ *http.Request, _ string) bool { return true }
	} else {
		o.AllowedOrigins = opts.AllowedOrigins
	}
	return cors.Handler(o)
}
