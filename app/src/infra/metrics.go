package infra

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// HTTP metrics
	HttpRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	})
	HttpRequestErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "http_request_errors_total",
		Help: "Total number of HTTP request errors",
	})
	ProcessingDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "wip_processing_duration_seconds",
		Help:    "Duration of request processing in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// Timestamp metrics
	TimestampParsesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wip_timestamp_parses_total",
		Help: "Total number of timestamp parse attempts",
	})
	TimestampParseErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wip_timestamp_parse_errors_total",
		Help: "Total number of timestamp parse attempts that produced an error",
	})

	// Filter chain metrics
	FilteredRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wip_filtered_requests_total",
		Help: "Total number of HTTP requests answered by the filter chain",
	})

	// Version metrics
	VersionRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wip_version_requests_total",
		Help: "Total number of requests for the application version",
	})

	registerOnce      sync.Once
	metricsServerOnce sync.Once
)

func init() {
	InitMetrics()
}

// InitMetrics registers all Prometheus collectors used by the application.
func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HttpRequestsTotal,
			HttpRequestErrorsTotal,
			ProcessingDurationSeconds,
			TimestampParsesTotal,
			TimestampParseErrorsTotal,
			FilteredRequestsTotal,
			VersionRequestsTotal,
		)
	})
}

// Handler returns an HTTP handler that exposes the registered Prometheus metrics.
func Handler() http.Handler {
	InitMetrics()
	return promhttp.Handler()
}

// StartMetricsServer exposes Prometheus metrics on the given port under /metrics.
func StartMetricsServer(logger *Logger, port string) {
	InitMetrics()
	metricsServerOnce.Do(func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())

		go func() {
			if err := http.ListenAndServe(":"+port, mux); err != nil {
				logger.Printf(context.Background(), "metrics server error: %v", err)
			}
		}()
	})
}

// RecordTimestampParse tracks a timestamp parse attempt and its outcome.
func RecordTimestampParse(failed bool) {
	InitMetrics()
	TimestampParsesTotal.Inc()
	if failed {
		TimestampParseErrorsTotal.Inc()
	}
}

// HTTPMiddleware instruments HTTP handlers with request/latency metrics.
func HTTPMiddleware(pathResolver func(*http.Request) string) func(http.Handler) http.Handler {
	InitMetrics()
	if pathResolver == nil {
		pathResolver = func(r *http.Request) string {
			if r == nil {
				return "unknown"
			}
			return r.URL.Path
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				HttpRequestErrorsTotal.Inc()
				http.Error(w, "invalid request", http.StatusBadRequest)
				return
			}

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			defer func() {
				duration := time.Since(start)
				ProcessingDurationSeconds.Observe(duration.Seconds())
				HttpRequestsTotal.Inc()

				if recorder.Status() >= http.StatusBadRequest {
					HttpRequestErrorsTotal.Inc()
				}
			}()

			next.ServeHTTP(recorder, r)
		})
	}
}

// GRPCUnaryInterceptor instruments gRPC unary handlers with request/latency metrics.
func GRPCUnaryInterceptor() grpc.UnaryServerInterceptor {
	InitMetrics()
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		start := time.Now()

		defer func() {
			duration := time.Since(start)
			ProcessingDurationSeconds.Observe(duration.Seconds())
			HttpRequestsTotal.Inc()

			if status.Code(err) != codes.OK {
				HttpRequestErrorsTotal.Inc()
			}
		}()

		return handler(ctx, req)
	}
}

// statusRecorder captures the response status code for instrumentation.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Status() int {
	return r.status
}
