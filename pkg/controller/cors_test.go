package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"utilbox/pkg/controller"

	"github.com/stretchr/testify/require"
)

func requireCORSHeaders(t *testing.T, res *http.Response) {
	t.Helper()

	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "Authorization")
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), "POST")
	require.Equal(t, controller.RequestIDHeader, res.Header.Get("Access-Control-Expose-Headers"))
}

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	controller.WithCORS(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/v1/tip", nil))

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	requireCORSHeaders(t, res)
}

func TestWithCORS_NormalRequest(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	controller.WithCORS(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/tip", nil))

	require.True(t, called, "next handler should be called for non-OPTIONS request")
	res := rec.Result()
	require.Equal(t, http.StatusTeapot, res.StatusCode)
	requireCORSHeaders(t, res)
}
