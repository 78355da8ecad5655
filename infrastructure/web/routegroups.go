package web

import (
	"slices"
	"strings"
)

// RouteGroup registers routes under a shared prefix and middleware.
type RouteGroup struct {
	webHandler *WebHandler
	prefix     string
	middleware []Middleware
}

// Group starts a route group at prefix. A trailing slash is dropped.
func (wh *WebHandler) Group(prefix string, middleware ...Middleware) *RouteGroup {
	return &RouteGroup{
		webHandler: wh,
		prefix:     strings.TrimSuffix(prefix, "/"),
		middleware: middleware,
	}
}

// Handle registers handler at the group prefix plus path.
func (g *RouteGroup) Handle(method, path string, handler HandlerFunc, middleware ...Middleware) {
	g.webHandler.Handle(method, g.prefix+path, handler, slices.Concat(g.middleware, middleware)...)
}

// Group nests a group under g.
func (g *RouteGroup) Group(prefix string, middleware ...Middleware) *RouteGroup {
	return &RouteGroup{
		webHandler: g.webHandler,
		prefix:     g.prefix + strings.TrimSuffix(prefix, "/"),
		middleware: slices.Concat(g.middleware, middleware),
	}
}

// Prefix returns the path prefix of the group.
func (g *RouteGroup) Prefix() string {
	return g.prefix
}
