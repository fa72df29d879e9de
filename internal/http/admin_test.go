package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func adminProbe(t *testing.T, configure func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	configure(req)
	rec := httptest.NewRecorder()
	RequireAdmin("secret")(next).ServeHTTP(rec, req)
	return rec
}

func TestRequireAdminExactMatch(t *testing.T) {
	rec := adminProbe(t, func(r *http.Request) { r.Header.Set("x-admin-token", "secret") })
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminRejects(t *testing.T) {
	cases := map[string]func(*http.Request){
		"missing":        func(r *http.Request) {},
		"wrong":          func(r *http.Request) { r.Header.Set("x-admin-token", "nope") },
		"case sensitive": func(r *http.Request) { r.Header.Set("x-admin-token", "Secret") },
		"no trimming":    func(r *http.Request) { r.Header.Set("x-admin-token", " secret ") },
		"wrong query":    func(r *http.Request) { r.URL.RawQuery = "adminToken=nope" },
	}
	for name, configure := range cases {
		rec := adminProbe(t, configure)
		require.Equal(t, http.StatusUnauthorized, rec.Code, name)
		require.JSONEq(t, `{"success":false,"message":"Unauthorized - admin token required"}`, rec.Body.String(), name)
	}
}

func TestRequireAdminAlternateSources(t *testing.T) {
	rec := adminProbe(t, func(r *http.Request) { r.Header.Set("admin-token", "secret") })
	require.Equal(t, http.StatusOK, rec.Code)

	rec = adminProbe(t, func(r *http.Request) { r.URL.RawQuery = "adminToken=secret" })
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminPrecedence(t *testing.T) {
	// A wrong primary header must not be rescued by a valid fallback source.
	rec := adminProbe(t, func(r *http.Request) {
		r.Header.Set("x-admin-token", "nope")
		r.Header.Set("admin-token", "secret")
		r.URL.RawQuery = "adminToken=secret"
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = adminProbe(t, func(r *http.Request) {
		r.Header.Set("admin-token", "nope")
		r.URL.RawQuery = "adminToken=secret"
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminEmptyExpectedStillRejectsEmptyToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	rec := httptest.NewRecorder()
	RequireAdmin("")(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
