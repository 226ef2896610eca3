package infra

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
)

func TestInitMetricsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() { InitMetrics() })
	assert.NotPanics(t, func() { InitMetrics() })
}

func TestMetricsHandlerServesContent(t *testing.T) {
	InitMetrics()
	handler := Handler()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	assert.Contains(t, rr.Body.String(), "# HELP")
}

func TestStartMetricsServerIsIdempotent(t *testing.T) {
	logger := NewLogger(io.Discard, "metrics")
	StartMetricsServer(logger, "0")
	StartMetricsServer(logger, "0")
}

func TestHTTPMiddlewareRecordsMetrics(t *testing.T) {
	InitMetrics()
	beforeRequests := testutil.ToFloat64(HttpRequestsTotal)

	middleware := HTTPMiddleware(nil)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodGet, "/timestamp/now", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	afterRequests := testutil.ToFloat64(HttpRequestsTotal)
	assert.Equal(t, beforeRequests+1, afterRequests)
}

func TestHTTPMiddlewareRecordsErrors(t *testing.T) {
	InitMetrics()
	beforeErrors := testutil.ToFloat64(HttpRequestErrorsTotal)

	middleware := HTTPMiddleware(nil)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	req := httptest.NewRequest(http.MethodGet, "/timestamp/parse", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	afterErrors := testutil.ToFloat64(HttpRequestErrorsTotal)
	assert.Equal(t, beforeErrors+1, afterErrors)
}

func TestGRPCUnaryInterceptorRecordsMetrics(t *testing.T) {
	InitMetrics()
	interceptor := GRPCUnaryInterceptor()

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		time.Sleep(10 * time.Millisecond)
		return "ok", nil
	}

	before := testutil.ToFloat64(HttpRequestsTotal)
	resp, err := interceptor(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: "/service/Method"}, handler)

	assert.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, before+1, testutil.ToFloat64(HttpRequestsTotal))
}

func TestRecordTimestampParse(t *testing.T) {
	InitMetrics()
	beforeParses := testutil.ToFloat64(TimestampParsesTotal)
	beforeErrors := testutil.ToFloat64(TimestampParseErrorsTotal)

	RecordTimestampParse(false)
	RecordTimestampParse(true)

	assert.Equal(t, beforeParses+2, testutil.ToFloat64(TimestampParsesTotal))
	assert.Equal(t, beforeErrors+1, testutil.ToFloat64(TimestampParseErrorsTotal))
}

func TestStatusRecorder(t *testing.T) {
	recorder := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	recorder.WriteHeader(http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, recorder.Status())
}
