// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi responds with 405 whenever a path matches but the method is not
// handled. This handler answers such requests with 404 and the usual error
// envelope instead, so an unsupported method looks like an unknown route.
//
// The matched route is found with [chi.Mux.Match], which expands
// parameterised segments such as /scenarios/{id}. If the method turns out
// to be routable the request is forwarded to the router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		writeErrorMessage(w, http.StatusNotFound, "Resource not found")
	}
}
