package tripapi

import (
	"log/slog"
	"net/http"
	"time"
)

// loggingTransport wraps an http.RoundTripper and writes one structured log
// line per outbound request: method, path, status, duration, and the request
// id set by Client.do.
type loggingTransport struct {
	base http.RoundTripper
	log  *slog.Logger
}

func newLoggingTransport(base http.RoundTripper, log *slog.Logger) *loggingTransport {
	return &loggingTransport{base: base, log: log}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.base.RoundTrip(req)

	attrs := []any{
		"method", req.Method,
		"path", req.URL.Path,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", req.Header.Get("X-Request-Id"),
	}
	if err != nil {
		t.log.WarnContext(req.Context(), "request failed", append(attrs, "error", err)...)
		return resp, err
	}

	t.log.InfoContext(req.Context(), "request", append(attrs, "status", resp.StatusCode)...)
	return resp, nil
}
