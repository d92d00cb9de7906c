package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"utilbox/internal/api"
	"utilbox/internal/api/handler/v1handler"
	"utilbox/internal/toolkit"
	mocktoolkit "utilbox/internal/toolkit/mock"
	"utilbox/pkg/domain"
	"utilbox/pkg/logger"
	"utilbox/pkg/metrics"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	return newTestServerWith(t, nil, api.Options{
		MetricsPath:    "/metrics",
		RequestTimeout: 5 * time.Second,
		MaxBodyBytes:   1 << 16,
	})
}

// newTestServerWith serves tk, or the real toolkit when tk is nil.
func newTestServerWith(t *testing.T, tk toolkit.Toolkit, opts api.Options) *httptest.Server {
	t.Helper()

	reg := metrics.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Shutdown(context.Background()) })

	if tk == nil {
		tk = toolkit.New(m, toolkit.Options{})
	}

	srv, err := api.NewServer(api.Deps{
		Deps:          v1handler.Deps{Toolkit: tk},
		Gatherer:      reg,
		MeterProvider: m.Provider,
	}, opts)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func do(t *testing.T, method, url, body string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(data)
}

func TestServer_Operations(t *testing.T) {
	ts := newTestServer(t)

	res, body := do(t, http.MethodPost, ts.URL+"/v1/palindrome", `{"text":"nurses run"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"text":"nurses run","normalized":"nursesrun","palindrome":true,
		"message":"The entered string is a palindrome."}`, body)
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))

	res, body = do(t, http.MethodPost, ts.URL+"/v1/palindrome", `{"text":"hello"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, `"palindrome":false`)

	res, body = do(t, http.MethodPost, ts.URL+"/v1/characters", `{"text":"Hello World"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, `"vowels":3`)
	require.Contains(t, body, `"consonants":7`)

	res, body = do(t, http.MethodPost, ts.URL+"/v1/tip", `{"subtotal":"100","tipPercentage":"20"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, `"total":"120.00"`)
	require.Contains(t, body, `"message":"Total amount to be paid (including tip): $120.00"`)

	res, body = do(t, http.MethodPost, ts.URL+"/v1/tip", `{"subtotal":"0","tipPercentage":"0"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, `"display":"$0.00"`)

	res, body = do(t, http.MethodPost, ts.URL+"/v1/tip", `{"subtotal":"50 dollars","tipPercentage":"15%"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, `"total":"57.50"`)

	res, body = do(t, http.MethodPost, ts.URL+"/v1/tip", `{"subtotal":0,"tipPercentage":0}`)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Contains(t, body, `"code":"BAD_REQUEST"`)

	res, body = do(t, http.MethodPost, ts.URL+"/v1/tip", `{"subtotal":"abc","tipPercentage":"10"}`)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.JSONEq(t, `{"code":"INVALID_INPUT",
		"message":"Please enter valid numbers for Subtotal and Tip Percentage."}`, body)
}

func TestServer_PageDocsAndHealth(t *testing.T) {
	ts := newTestServer(t)

	res, body := do(t, http.MethodGet, ts.URL+"/", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, res.Header.Get("Content-Type"), "text/html")
	require.Contains(t, body, `id="inputPalindrome"`)

	res, _ = do(t, http.MethodGet, ts.URL+"/nope", "")
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body = do(t, http.MethodGet, ts.URL+"/specs/v1.yaml", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	require.Contains(t, body, "operationId: calculateTip")

	res, _ = do(t, http.MethodGet, ts.URL+"/v1/docs/", "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = do(t, http.MethodGet, ts.URL+"/healthz", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"status":"ok"}`, body)

	res, _ = do(t, http.MethodOptions, ts.URL+"/v1/tip", "")
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_MetricsAfterOperations(t *testing.T) {
	ts := newTestServer(t)

	do(t, http.MethodPost, ts.URL+"/v1/characters", `{"text":"abc"}`)
	do(t, http.MethodPost, ts.URL+"/v1/tip", `{"subtotal":"x"}`)

	res, body := do(t, http.MethodGet, ts.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "utilbox_operations")
	require.Contains(t, body, `outcome="invalid"`)
	require.Contains(t, body, "utilbox_operation_duration")
	require.Contains(t, body, "ogen_server_request_count")
}

func TestServer_InvalidPublicKey(t *testing.T) {
	_, err := api.NewServer(api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "garbage"},
	})
	require.Error(t, err)
}

func TestServer_BodyTooLarge(t *testing.T) {
	ts := newTestServerWith(t, nil, api.Options{MaxBodyBytes: 16})

	res, body := do(t, http.MethodPost, ts.URL+"/v1/palindrome", `{"text":"`+strings.Repeat("a", 64)+`"}`)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"request body too large"}`, body)
}

func TestServer_RequestTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	tk := mocktoolkit.NewMockToolkit(ctrl)
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	tk.EXPECT().CheckPalindrome(gomock.Any(), "slow").DoAndReturn(
		func(ctx context.Context, raw string) domain.PalindromeResult {
			<-release

			return domain.PalindromeResult{Input: raw}
		})

	ts := newTestServerWith(t, tk, api.Options{RequestTimeout: 50 * time.Millisecond})

	res, body := do(t, http.MethodPost, ts.URL+"/v1/palindrome", `{"text":"slow"}`)
	require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	require.Equal(t, "application/json; charset=utf-8", res.Header.Get("Content-Type"))
	require.JSONEq(t, `{"code":"TIMEOUT","message":"request timed out"}`, body)
}

func TestServer_PprofOutlivesRequestTimeout(t *testing.T) {
	ts := newTestServerWith(t, nil, api.Options{RequestTimeout: 50 * time.Millisecond})

	res, body := do(t, http.MethodGet, ts.URL+"/debug/pprof/profile?seconds=1", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, body)
}

func TestServer_AuthEnabled(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	ts := newTestServerWith(t, nil, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{
			PublicKey: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})),
		},
	})

	res, _ := do(t, http.MethodGet, ts.URL+"/", "")
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body := do(t, http.MethodPost, ts.URL+"/v1/palindrome", `{"text":"aba"}`)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"missing bearer token"}`, body)

	res, _ = do(t, http.MethodGet, ts.URL+"/v1/docs/", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
}
