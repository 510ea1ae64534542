package router

import (
	"net/http"
	"strings"

	"github.com/ferdiebergado/goexpress"
)

type goexpressRouter struct {
	handler *goexpress.Router
}

var _ Router = (*goexpressRouter)(nil)

//nolint:ireturn //Callers depend on the Router abstraction only.
func NewGoexpressRouter() Router {
	return &goexpressRouter{
		handler: goexpress.New(),
	}
}

func (r *goexpressRouter) Get(pattern string, handlerFunc http.HandlerFunc,
	middlewares ...func(next http.Handler) http.Handler) {
	r.handler.Get(pattern, handlerFunc, middlewares...)
}

func (r *goexpressRouter) Post(pattern string, handlerFunc http.HandlerFunc,
	middlewares ...func(next http.Handler) http.Handler) {
	r.handler.Post(pattern, handlerFunc, middlewares...)
}

func (r *goexpressRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func (r *goexpressRouter) Use(middleware func(next http.Handler) http.Handler) {
	r.handler.Use(middleware)
}

// Group mounts a sub-router under prefix. Routes registered inside fn are
// relative to the prefix.
func (r *goexpressRouter) Group(prefix string, fn func(r Router),
	middlewares ...func(next http.Handler) http.Handler) {
	gr := &goexpressRouter{handler: goexpress.New()}
	fn(gr)

	const sep = "/"
	path := prefix
	if !strings.HasSuffix(path, sep) {
		path += sep
	}
	prefix = strings.TrimSuffix(prefix, sep)

	r.handler.Handle(path, http.StripPrefix(prefix, gr), middlewares...)
}
