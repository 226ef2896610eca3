package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wip-service/app/src/domain"
	"wip-service/app/src/infra"
	"wip-service/app/src/shared/iso8601"
)

const (
	queryValue     = "value"
	queryPrecision = "precision"
)

// handler contains the HTTP handlers and shared dependencies for the REST API.
type handler struct {
	provider domain.VersionProvider
	clock    domain.Clock
	logger   *infra.Logger
}

func registerRoutes(router *chi.Mux, h *handler) {
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		h.logger.Println(r.Context(), "health check OK")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	router.Get("/a", h.handleA)
	router.Get("/b", h.handleB)
	router.Get("/timestamp/parse", h.handleTimestampParse)
	router.Get("/timestamp/now", h.handleTimestampNow)
}

type timestampResponse struct {
	Value string `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func (h *handler) handleA(w http.ResponseWriter, r *http.Request) {
	h.writeText(w, r, "a Called")
}

func (h *handler) handleB(w http.ResponseWriter, r *http.Request) {
	h.writeText(w, r, "b Called")
}

func (h *handler) handleTimestampParse(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get(queryValue)
	if value == "" {
		h.writeError(w, http.StatusBadRequest, "missing required query parameter 'value'")
		return
	}

	ts := iso8601.Parse(value)
	infra.RecordTimestampParse(ts.HasError())
	if ts.HasError() {
		h.writeError(w, http.StatusBadRequest, ts.Err())
		return
	}

	ts, ok := h.applyPrecision(w, r, ts)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, timestampResponse{Value: ts.Value()})
}

func (h *handler) handleTimestampNow(w http.ResponseWriter, r *http.Request) {
	ts := iso8601.FromEpochMillis(h.clock.NowMillis())

	ts, ok := h.applyPrecision(w, r, ts)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, timestampResponse{Value: ts.Value()})
}

// applyPrecision adjusts the timestamp when the precision parameter is
// present. It reports false after writing the error response itself.
func (h *handler) applyPrecision(w http.ResponseWriter, r *http.Request, ts iso8601.Timestamp) (iso8601.Timestamp, bool) {
	precision := r.URL.Query().Get(queryPrecision)
	if precision == "" {
		return ts, true
	}

	length, err := iso8601.ParseTimeLength(precision)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return ts, false
	}

	adjusted := ts.AdjustTo(length)
	if adjusted.HasError() {
		h.writeError(w, http.StatusBadRequest, adjusted.Err())
		return ts, false
	}
	return adjusted, true
}

func (h *handler) writeText(w http.ResponseWriter, r *http.Request, message string) {
	h.logger.Printf(r.Context(), "---- %s", message)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(message))
}

func (h *handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message, Code: status})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
