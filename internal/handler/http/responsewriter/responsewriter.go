// Package responsewriter observes what a handler wrote so the access log
// and request metrics can report status and payload size.
package responsewriter

import "net/http"

// ResponseWriter records the first status code and the byte count written
// through it. Later WriteHeader calls are dropped, matching net/http's
// superfluous-call behavior without the log noise.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	written int
	sent    bool
}

// Wrap instruments w. The status defaults to 200 for handlers that only
// call Write.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *ResponseWriter) WriteHeader(status int) {
	if w.sent {
		return
	}
	w.status = status
	w.sent = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.sent {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

// StatusCode is the status sent to the client.
func (w *ResponseWriter) StatusCode() int { return w.status }

// BytesWritten is the response body size in bytes.
func (w *ResponseWriter) BytesWritten() int { return w.written }

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
