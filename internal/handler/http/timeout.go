package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Timeout answers 504 when a handler runs past d. The handler keeps
// running in its goroutine with a canceled context; the guarded writer
// makes sure it cannot touch the response after the 504 went out.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			gw := &guardedWriter{ResponseWriter: w}
			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(gw, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				gw.expire()
			}
		})
	}
}

// guardedWriter serializes the race between the handler finishing and the
// timeout firing: whichever writes first owns the response.
type guardedWriter struct {
	http.ResponseWriter
	mu      sync.Mutex
	started bool
	expired bool
}

func (w *guardedWriter) WriteHeader(status int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.expired || w.started {
		return
	}
	w.started = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *guardedWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.expired {
		return 0, http.ErrHandlerTimeout
	}
	if !w.started {
		w.started = true
		w.ResponseWriter.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// expire emits the 504 unless the handler already responded.
func (w *guardedWriter) expire() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.expired = true
	if w.started {
		return
	}
	w.ResponseWriter.Header().Set("Content-Type", "application/json")
	w.ResponseWriter.WriteHeader(http.StatusGatewayTimeout)
	_, _ = w.ResponseWriter.Write([]byte(`{"error":"request timeout"}`))
}
