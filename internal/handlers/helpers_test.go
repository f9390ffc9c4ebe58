package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"

	"lecturemind/internal/contextutil"
)

const testUserID = int64(1)

// newRequest builds a request carrying an authenticated user and a chi
// route parameter for the lecture id.
func newRequest(method, target, lectureID, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	ctx := contextutil.WithUserID(req.Context(), testUserID)
	if lectureID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("lectureID", lectureID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

// chiRouteContext returns the route context attached by newRequest so tests
// can add extra URL parameters.
func chiRouteContext(r *http.Request) *chi.Context {
	return r.Context().Value(chi.RouteCtxKey).(*chi.Context)
}
