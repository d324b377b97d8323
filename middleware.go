package lingo

import (
	"context"
	"net/http"
)

type translatorKey struct{}

// Middleware resolves the locale once per request and stores the
// request-scoped Translator in the request context. Adapter options apply
// to every request, e.g. a WithSessionLookup bridging the host's session
// store.
func Middleware(e *Engine, opts ...HTTPOption) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t := e.Resolve(NewHTTPRequest(r, opts...))
			ctx := context.WithValue(r.Context(), translatorKey{}, t)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext extracts the request's Translator. Returns nil if the
// middleware did not run.
func FromContext(ctx context.Context) *Translator {
	t, _ := ctx.Value(translatorKey{}).(*Translator)
	return t
}

// T translates a key using the context's Translator. Without the
// middleware it degrades to returning the key, keeping templates safe to
// render in tests and tools that skip the HTTP stack.
func T(ctx context.Context, key string, args ...any) string {
	if t := FromContext(ctx); t != nil {
		return t.T(key, args...)
	}
	return substitute(key, args)
}
