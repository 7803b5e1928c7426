package pkgrouter

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/shandysiswandi/paywatch/internal/pkg/pkglog"
)

// Generator generates a unique string (used for correlation/request IDs).
type Generator interface {
	Generate() string
}

const (
	// HeaderCorrelationID is the canonical header used to track requests end-to-end.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is an accepted alternative header name used by some proxies.
	HeaderRequestID = "X-Request-ID"
	// QueryCorrelationID carries the ID for browser WebSocket handshakes,
	// which cannot set custom headers.
	QueryCorrelationID = "cid"

	maxCIDLength = 128
)

func normalizeCID(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.IndexFunc(v, func(r rune) bool { return !unicode.IsPrint(r) }) != -1 {
		return ""
	}
	if len(v) > maxCIDLength {
		v = v[:maxCIDLength]
	}
	return v
}

func requestCID(r *http.Request) string {
	for _, candidate := range []string{
		r.Header.Get(HeaderCorrelationID),
		r.Header.Get(HeaderRequestID),
		r.URL.Query().Get(QueryCorrelationID),
	} {
		if cid := normalizeCID(candidate); cid != "" {
			return cid
		}
	}
	return ""
}

func middlewareCorrelationID(uid Generator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := requestCID(r)
			if cid == "" && uid != nil {
				cid = uid.Generate()
			}

			if cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				r = r.WithContext(pkglog.SetCorrelationID(r.Context(), cid))
			}

			next.ServeHTTP(w, r)
		})
	}
}
