package infra

import "net/http"

// FilteredResponse is produced by a Filterer that decides to answer the
// request itself instead of letting it reach the routed handler.
type FilteredResponse struct {
	status int
	body   string
}

func OKResponse(body string) *FilteredResponse {
	return &FilteredResponse{status: http.StatusOK, body: body}
}

func ErrorResponse(status int, body string) *FilteredResponse {
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	return &FilteredResponse{status: status, body: body}
}

func (r *FilteredResponse) HasError() bool {
	return r.status >= http.StatusBadRequest
}

func (r *FilteredResponse) Status() int {
	return r.status
}

func (r *FilteredResponse) Body() string {
	return r.body
}

// Filterer inspects a request before routing. A nil result lets the request
// pass; a non-nil result answers it and stops the chain.
type Filterer func(*http.Request) *FilteredResponse

// FilterChain runs the filterers in order ahead of the wrapped handler. The
// first filterer returning a response short-circuits the request.
func FilterChain(filterers ...Filterer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, filterer := range filterers {
				if filterer == nil {
					continue
				}
				if resp := filterer(r); resp != nil {
					FilteredRequestsTotal.Inc()
					w.Header().Set("Content-Type", "text/plain; charset=utf-8")
					w.WriteHeader(resp.Status())
					_, _ = w.Write([]byte(resp.Body()))
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// NamedFilter observes every request passing through the chain and logs it.
func NamedFilter(name string, logger *Logger) Filterer {
	return func(r *http.Request) *FilteredResponse {
		logger.Printf(r.Context(), "**** %s - %s", name, r.RequestURI)
		return nil
	}
}
