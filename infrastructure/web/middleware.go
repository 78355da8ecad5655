package web

import "slices"

// buildHandlerChain wraps handler so the global middleware runs first, then
// the route middleware in the order given.
func (wh *WebHandler) buildHandlerChain(handler HandlerFunc, middleware ...Middleware) HandlerFunc {
	return wrapMiddleware(slices.Concat(wh.globalMiddleware, middleware), handler)
}

func wrapMiddleware(mw []Middleware, handler HandlerFunc) HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		if mw[i] != nil {
			handler = mw[i](handler)
		}
	}
	return handler
}
