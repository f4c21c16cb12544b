package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
)

type Middleware = func(http.Handler) http.Handler

// Route liga método e caminho a um handler. Middlewares rodam na ordem declarada.
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []Middleware
}

type ConfigRouter func(router *Router)

func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

// Guarded coloca mw antes dos middlewares próprios de cada rota
func Guarded(mw Middleware, routes ...Route) []Route {
	return lo.Map(routes, func(route Route, _ int) Route {
		route.Middlewares = append([]Middleware{mw}, route.Middlewares...)
		return route
	})
}

type Router struct {
	mux *httprouter.Router
}

func New(configs ...ConfigRouter) Router {
	mux := httprouter.New()
	mux.NotFound = http.HandlerFunc(notFound)
	mux.MethodNotAllowed = http.HandlerFunc(methodNotAllowed)

	router := Router{mux: mux}
	for _, config := range configs {
		config(&router)
	}

	return router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		chain := alice.New(lo.Map(route.Middlewares, func(mw Middleware, _ int) alice.Constructor {
			return mw
		})...)

		r.mux.Handler(route.Method, route.Path, chain.Then(route.Handler))
		logrus.Debugf("Rota registrada: %s %s (%d middlewares)", route.Method, route.Path, len(route.Middlewares))
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", map[string]string{"method": r.Method})
}
