// Package api implements the popthings REST API using chi.
package api

import (
	"net/http"
	"strings"
)

// AuthMiddleware guards the conversion and history routes with a static
// Bearer token. With enabled false (the local, single-user setup) every
// request passes through; with enabled true a request must carry
// "Authorization: Bearer <token>" or it is rejected before reaching a
// handler.
func AuthMiddleware(enabled bool, token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled {
				next.ServeHTTP(w, r)
				return
			}
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != token {
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
