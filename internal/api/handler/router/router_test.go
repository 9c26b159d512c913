package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:        "/v1/reports/payroll",
		Method:      http.MethodGet,
		Handler:     http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { order = append(order, "handler") }),
		Middlewares: []func(http.Handler) http.Handler{tag("outer"), tag("inner")},
	}))

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{name: "registered route", method: http.MethodGet, path: "/v1/reports/payroll", wantCode: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/v1/reports/unknown", wantCode: http.StatusNotFound, wantBody: "RES_001"},
		{name: "wrong method", method: http.MethodDelete, path: "/v1/reports/payroll", wantCode: http.StatusMethodNotAllowed, wantBody: "VAL_005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.True(t, strings.Contains(rec.Body.String(), tt.wantBody))
			}
		})
	}

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
