package pkgrouter

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/julienschmidt/httprouter"
)

const maxLoggedBodyBytes = 64 * 1024

//nolint:gochecknoglobals // global for fast reuse
var sensitiveKeys = map[string]struct{}{
	"customeremail": {},
	"customer":      {},
	"card_number":   {},
	"cvv":           {},
	"api_key":       {},
	"api_secret":    {},
	"authorization": {},
	"cookie":        {},
}

func isSensitive(key string) bool {
	_, found := sensitiveKeys[strings.ToLower(key)]
	return found
}

func maskHeaders(headers http.Header) http.Header {
	result := headers.Clone()
	for key := range result {
		if isSensitive(key) {
			result.Set(key, "***")
		}
	}
	return result
}

func maskValues(values url.Values) map[string]any {
	if len(values) == 0 {
		return nil
	}

	masked := make(map[string]any, len(values))
	for k, v := range values {
		switch {
		case isSensitive(k):
			masked[k] = "***"
		case len(v) == 1:
			masked[k] = v[0]
		default:
			masked[k] = v
		}
	}
	return masked
}

func maskData(v any) any {
	switch val := v.(type) {
	case map[string]any:
		masked := make(map[string]any, len(val))
		for k, v2 := range val {
			if isSensitive(k) {
				masked[k] = "***"
			} else {
				masked[k] = maskData(v2)
			}
		}
		return masked
	case []any:
		res := make([]any, len(val))
		for i, v2 := range val {
			res[i] = maskData(v2)
		}
		return res
	default:
		return v
	}
}

// statusRecorder captures the status and a bounded copy of JSON bodies.
// Other content types (HTML fragments, downloads) are counted, not copied.
type statusRecorder struct {
	http.ResponseWriter
	status   int
	bytes    int
	body     bytes.Buffer
	capped   bool
	hijacked bool
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	if w.capturing() && !w.capped {
		remaining := maxLoggedBodyBytes - w.body.Len()
		if len(p) > remaining {
			w.body.Write(p[:remaining])
			w.capped = true
		} else {
			w.body.Write(p)
		}
	}

	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func (w *statusRecorder) capturing() bool {
	return strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") &&
		w.Header().Get("Content-Disposition") == ""
}

func (w *statusRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack hands the connection over, as needed by the WebSocket upgrade.
//
//nolint:err113 // it use dynamic error
func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijack not supported")
	}

	conn, rw, err := h.Hijack()
	if err == nil {
		w.hijacked = true
		w.status = http.StatusSwitchingProtocols
	}
	return conn, rw, err
}

func (w *statusRecorder) loggedBody() any {
	if w.body.Len() == 0 {
		if w.bytes > 0 {
			return "<" + w.Header().Get("Content-Type") + " body omitted>"
		}
		return nil
	}

	var body any
	if err := json.Unmarshal(w.body.Bytes(), &body); err == nil {
		body = maskData(body)
	} else {
		body = w.body.String()
	}

	if w.capped {
		return map[string]any{"body": body, "truncated": true}
	}
	return body
}

func matchedRoutePath(r *http.Request) string {
	pattern := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath()
	if pattern != "" {
		return pattern
	}
	return r.URL.Path
}

func parseAndMaskBody(contentType string, body []byte) any {
	if len(body) == 0 {
		return nil
	}

	var jsonBody any
	if err := json.Unmarshal(body, &jsonBody); err == nil {
		return maskData(jsonBody)
	}

	if strings.HasPrefix(strings.ToLower(contentType), "application/x-www-form-urlencoded") {
		if values, err := url.ParseQuery(string(body)); err == nil {
			return maskValues(values)
		}
	}

	if !utf8.Valid(body) {
		return "<binary body omitted>"
	}
	if len(body) > maxLoggedBodyBytes {
		return string(body[:maxLoggedBodyBytes]) + "...(truncated)"
	}
	return string(body)
}

func middlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := matchedRoutePath(r)
		start := time.Now()

		var reqBody []byte
		if r.Body != nil {
			//nolint:errcheck // best effort for logging only
			reqBody, _ = io.ReadAll(r.Body)
		}
		r.Body = io.NopCloser(bytes.NewReader(reqBody))

		slog.InfoContext(
			r.Context(),
			"request received",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"query", maskValues(r.URL.Query()),
			"headers", maskHeaders(r.Header),
			"body", parseAndMaskBody(r.Header.Get("Content-Type"), reqBody),
		)

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		if rec.hijacked {
			slog.InfoContext(r.Context(), "connection closed",
				"method", r.Method,
				"route", route,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return
		}

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}

		slog.InfoContext(
			r.Context(),
			"response sent",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"status", status,
			"bytes", rec.bytes,
			"latency_ms", time.Since(start).Milliseconds(),
			"body", rec.loggedBody(),
		)
	})
}
