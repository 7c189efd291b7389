package http

import (
	"fmt"
	"sync/atomic"
)

// Handler responds to a request by populating the Response it is given.
type Handler interface {
	Handle(r *Response)
}

// HandlerFunc lets an ordinary function act as a Handler.
type HandlerFunc func(r *Response)

func (f HandlerFunc) Handle(r *Response) { f(r) }

type routeKey struct {
	method Method
	path   string
}

// Router maps an exact (method, path) pair to a Handler. It is filled before
// the server starts and only read afterwards.
type Router struct {
	routes map[routeKey]Handler
	frozen atomic.Bool
}

func NewRouter() *Router {
	return &Router{
		routes: make(map[routeKey]Handler),
	}
}

// Register stores handler for the exact method and path. A later registration
// for the same pair replaces the earlier one.
func (rt *Router) Register(method Method, path string, handler Handler) *Router {
	if method == MethodUnknown {
		panic(fmt.Sprintf("http: cannot register %q for an unknown method", path))
	}
	if handler == nil {
		panic(fmt.Sprintf("http: nil handler for %s %s", method, path))
	}
	if rt.frozen.Load() {
		panic(fmt.Sprintf("http: route %s %s registered after the server started", method, path))
	}
	if rt.routes == nil {
		rt.routes = make(map[routeKey]Handler)
	}
	rt.routes[routeKey{method, path}] = handler
	return rt
}

func (rt *Router) HandleGet(path string, handler HandlerFunc) *Router {
	return rt.Register(MethodGet, path, handler)
}

func (rt *Router) HandlePost(path string, handler HandlerFunc) *Router {
	return rt.Register(MethodPost, path, handler)
}

// Resolve returns the handler registered for method and path. No prefix,
// case or trailing-slash matching is done.
func (rt *Router) Resolve(method Method, path string) (Handler, bool) {
	if method == MethodUnknown {
		return nil, false
	}
	h, ok := rt.routes[routeKey{method, path}]
	return h, ok
}

// Len reports the number of registered routes.
func (rt *Router) Len() int { return len(rt.routes) }

func (rt *Router) freeze() { rt.frozen.Store(true) }
