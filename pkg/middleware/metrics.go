package middleware

import (
	"net/http"
	"time"
)

// RequestObserver recebe a duração e o status de cada requisição
type RequestObserver interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// Metrics instrumenta uma rota; route é o padrão registrado, não o caminho da URL
func Metrics(observer RequestObserver, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			observer.ObserveRequest(r.Method, route, lrw.statusCode, time.Since(startTime))
		})
	}
}
