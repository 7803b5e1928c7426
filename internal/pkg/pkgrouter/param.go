package pkgrouter

import (
	"context"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// GetParam reads a path parameter from the request context (as stored by httprouter).
func GetParam(ctx context.Context, key string) string {
	return httprouter.ParamsFromContext(ctx).ByName(key)
}

// GetQuery returns the trimmed query value for key and whether the key was
// present at all, so "?status=" can be told apart from no status.
func GetQuery(r *http.Request, key string) (string, bool) {
	q := r.URL.Query()
	if !q.Has(key) {
		return "", false
	}
	return strings.TrimSpace(q.Get(key)), true
}
