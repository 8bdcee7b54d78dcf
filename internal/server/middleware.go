package server

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const unmatchedRoute = "unmatched"

// exposeRequestID echoes the request id assigned by middleware.RequestID.
func exposeRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			w.Header().Set(middleware.RequestIDHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}

// instrument logs every request and records it under its route pattern.
func (a *API) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		duration := time.Since(startTime)

		a.metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		a.metrics.HTTPDuration.WithLabelValues(r.Method, route).Observe(duration.Seconds())

		a.log.InfoContext(r.Context(), "Request handled",
			slog.String("method", r.Method),
			slog.String("route", route),
			slog.Int("status", status),
			slog.String("duration", duration.String()),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// recoverer turns a handler panic into a 500 with the generic error body. A response that
// was already started is left as it is.
func (a *API) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler { //nolint:errorlint // sentinel is compared by identity
				panic(rvr)
			}

			a.log.ErrorContext(r.Context(), "Handler panicked",
				slog.Any("panic", rvr),
				slog.String("stack", string(debug.Stack())),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.Bool("response_started", ww.Status() != 0),
			)
			if ww.Status() != 0 {
				return
			}
			a.writeJSON(ww, r, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
		}()

		next.ServeHTTP(ww, r)
	})
}
