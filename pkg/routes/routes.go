// Package routes defines declarative route groups registered onto a ServeMux.
package routes

import "net/http"

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group organizes routes under a common path prefix.
type Group struct {
	Prefix string
	Routes []Route
}

// Register adds all routes from the given groups to the mux using
// method-qualified patterns.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		for _, route := range group.Routes {
			pattern := route.Method + " " + group.Prefix + route.Pattern
			mux.HandleFunc(pattern, route.Handler)
		}
	}
}
