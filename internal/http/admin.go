package httpx

import "net/http"

// RequireAdmin rejects the request before any handler logic runs unless the
// presented token exactly matches the expected one. The token is read from
// the x-admin-token header, the admin-token header, then the adminToken query
// parameter, in that precedence order. An empty token never authorizes.
func RequireAdmin(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if t := adminToken(r); t != "" && t == expected {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"message":"Unauthorized - admin token required"}`))
		})
	}
}

func adminToken(r *http.Request) string {
	if t := r.Header.Get("x-admin-token"); t != "" {
		return t
	}
	if t := r.Header.Get("admin-token"); t != "" {
		return t
	}
	return r.URL.Query().Get("adminToken")
}
