// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] intended to be registered as
// the router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 whenever a request
// path matches a registered route but the method does not. The operation
// table of this protocol recognises no verb other than POST, so an
// unsupported method falls through to the transport's not-found behaviour
// instead: the route's existence is not leaked to callers probing with other
// verbs.
//
// The lookup iterates over all routes registered on router and compares each
// route's pattern against the raw request path. Only exact pattern matches
// are considered; the operation table contains no parameterised segments.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		allRoutes := router.Routes()
		var foundRoute chi.Route
		for _, route := range allRoutes {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		// An unregistered method gets 404 rather than the default 405.
		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
