// Package api configures and exposes the HTTP server: the browser page, the
// v1 JSON API, its OpenAPI document and Swagger UI, metrics, profiling and
// the middleware chain around them.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"
	"utilbox/internal/api/handler/v1handler"
	"utilbox/internal/api/specs/v1specs"
	"utilbox/internal/config"
	"utilbox/pkg/controller"
	"utilbox/pkg/serrors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// indexPage is the browser page driving the three utilities through the API.
//
//go:embed web/index.html
var indexPage []byte

// Options holds configuration for the HTTP server and its handlers.
type Options struct {
	// SecHandlerOptions configures bearer authentication of v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions
	// MaxBodyBytes limits the size of v1 request bodies. Zero means no limit.
	MaxBodyBytes int64

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds the handling of a single v1 request via http.TimeoutHandler.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Deps are the services the server is built on.
type Deps struct {
	v1handler.Deps

	// Gatherer is served on MetricsPath. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
	// MeterProvider receives the v1 server request metrics. Defaults to the
	// global provider.
	MeterProvider metric.MeterProvider
}

// NewHandler builds the full handler chain:
// - the browser page on "/", unless bearer authentication is enabled
// - the v1 API under "/v1/", bounded by RequestTimeout and MaxBodyBytes
// - the embedded OpenAPI document and Swagger UI
// - Prometheus metrics on MetricsPath
// - pprof endpoints and a health check
// wrapped with recovery, CORS and access logging.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	mux := http.NewServeMux()

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	mux.Handle(metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}

	// browser page, it has no way to obtain a token
	if !secHandler.Enabled() {
		mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(indexPage)
		})
	}

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"utilbox",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	var srvOpts []v1specs.ServerOption
	if deps.MeterProvider != nil {
		srvOpts = append(srvOpts, v1specs.WithMeterProvider(deps.MeterProvider))
	}
	v1Srv, err := v1handler.NewServer(v1handler.New(deps.Deps), secHandler, srvOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not create v1 api server: %w", err)
	}
	var v1 http.Handler = v1Srv
	if opts.MaxBodyBytes > 0 {
		v1 = http.MaxBytesHandler(v1, opts.MaxBodyBytes)
	}
	mux.Handle("/v1/", withTimeout(v1, opts.RequestTimeout))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// pprof, outside RequestTimeout
	mux.Handle(controller.PprofPrefix, controller.PprofMux())

	handler := controller.WithRecovery(mux)
	handler = controller.WithCORS(handler)
	handler = controller.WithLogger(handler)

	return handler, nil
}

// withTimeout bounds h by d. Timed out requests get a 503 with a TIMEOUT
// error body.
func withTimeout(h http.Handler, d time.Duration) http.Handler {
	if d <= 0 {
		return h
	}

	body, _ := (&v1specs.Error{
		Code:    serrors.ErrTimeout.Error(),
		Message: "request timed out",
	}).MarshalJSON()
	th := http.TimeoutHandler(h, d, string(body))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// replaced by the handler's own header when it completes in time
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		th.ServeHTTP(w, r)
	})
}

// NewServer wires up and returns a configured *http.Server using the provided
// deps and options.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
