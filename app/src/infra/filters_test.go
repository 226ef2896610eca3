package infra

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func passThrough(*http.Request) *FilteredResponse { return nil }

func TestFilterChainPassesWhenNoFiltererAnswers(t *testing.T) {
	chain := FilterChain(passThrough, nil, passThrough)
	handler := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("routed"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/a", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "routed", rr.Body.String())
}

func TestFilterChainShortCircuits(t *testing.T) {
	answer := func(*http.Request) *FilteredResponse {
		return OKResponse("answered early")
	}
	chain := FilterChain(passThrough, answer)
	handler := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("routed handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/AppVersion", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "answered early", rr.Body.String())
}

func TestFilterChainFirstAnswerWins(t *testing.T) {
	first := func(*http.Request) *FilteredResponse {
		return ErrorResponse(http.StatusForbidden, "denied")
	}
	second := func(*http.Request) *FilteredResponse {
		return OKResponse("never reached")
	}
	chain := FilterChain(first, second)
	handler := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/a", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "denied", rr.Body.String())
}

func TestErrorResponseRejectsNonErrorStatus(t *testing.T) {
	resp := ErrorResponse(http.StatusOK, "oops")

	assert.True(t, resp.HasError())
	assert.Equal(t, http.StatusInternalServerError, resp.Status())
}

func TestOKResponseHasNoError(t *testing.T) {
	resp := OKResponse("fine")

	assert.False(t, resp.HasError())
	assert.Equal(t, http.StatusOK, resp.Status())
	assert.Equal(t, "fine", resp.Body())
}

func TestNamedFilterLogsAndPasses(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")
	filterer := NamedFilter("Filter1", logger)

	req := httptest.NewRequest(http.MethodGet, "/a?x=1", nil)
	resp := filterer(req)

	assert.Nil(t, resp)
	assert.True(t, strings.Contains(buf.String(), "**** Filter1 - /a?x=1"))
}
