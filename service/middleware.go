package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/negroni"

	"github.com/place-labs/place-proxy-service/config"
	"github.com/place-labs/place-proxy-service/logging"
)

const (
	RequestIDHeaderKey = "X-Request-Id"

	accessControlAllowOriginHeaderKey  = "Access-Control-Allow-Origin"
	accessControlAllowMethodsHeaderKey = "Access-Control-Allow-Methods"
	accessControlAllowHeadersHeaderKey = "Access-Control-Allow-Headers"
)

// createRequestLoggingMiddleware returns a handler that tags every request
// with a unique id, returned to the caller via the X-Request-Id header,
// and logs the request method, path, response status and latency
func createRequestLoggingMiddleware(next http.Handler, serviceLogger *logging.ServiceLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestStartedAt := time.Now()

		requestID := uuid.New().String()

		w.Header().Set(RequestIDHeaderKey, requestID)

		// set up response writer for capturing the response status and size
		// out of band of the request-response cycle
		lrw := negroni.NewResponseWriter(w)

		next.ServeHTTP(lrw, r)

		serviceLogger.Debug().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", lrw.Status()).
			Int("size", lrw.Size()).
			Dur("latency", time.Since(requestStartedAt)).
			Msg(fmt.Sprintf("handled %s %s", r.Method, r.URL.Path))
	}
}

// createCORSMiddleware returns a handler that injects CORS headers into
// every response and answers preflight requests directly
func createCORSMiddleware(next http.Handler, config config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(accessControlAllowOriginHeaderKey, config.CORSAllowedOrigin)
		w.Header().Set(accessControlAllowMethodsHeaderKey, "GET, OPTIONS")
		w.Header().Set(accessControlAllowHeadersHeaderKey, "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	}
}
