package middleware

import (
    "log"
    "net/http"
    "time"
)

// LoggingMiddleware logs one line per request with status, size and
// latency.
func LoggingMiddleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        start := time.Now()

        wrw := &responseWriter{
            ResponseWriter: w,
            status:         http.StatusOK,
        }

        next.ServeHTTP(wrw, r)

        log.Printf("%s %s %s -> %d (%dB) in %v",
            r.RemoteAddr,
            r.Method,
            r.URL.Path,
            wrw.status,
            wrw.written,
            time.Since(start),
        )
    })
}

type responseWriter struct {
    http.ResponseWriter
    status  int
    written int
}

func (rw *responseWriter) WriteHeader(code int) {
    rw.status = code
    rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
    n, err := rw.ResponseWriter.Write(b)
    rw.written += n
    return n, err
}
