package lingo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo"
)

// fakeRequest is a canned Request for resolver tests.
type fakeRequest struct {
	query      map[string]string
	cookies    map[string]string
	session    map[string]any
	headers    map[string]string
	subdomains []string
}

func (f *fakeRequest) Query(name string) string  { return f.query[name] }
func (f *fakeRequest) Cookie(name string) string { return f.cookies[name] }
func (f *fakeRequest) SessionValue(key string) any {
	if f.session == nil {
		return nil
	}
	return f.session[key]
}
func (f *fakeRequest) Header(name string) string { return f.headers[name] }
func (f *fakeRequest) Subdomains() []string      { return f.subdomains }

func newResolveEngine(t *testing.T, opts ...lingo.Option) *lingo.Engine {
	t.Helper()
	eng, err := lingo.New(append([]lingo.Option{
		lingo.WithLocales("en", "ru"),
		lingo.WithDefaultLocale("en"),
		lingo.WithBaseDir(t.TempDir()),
		// Keep resolver tests independent from the host's LANG.
		lingo.WithEnvVar("LINGO_RESOLVE_TEST_UNSET"),
	}, opts...)...)
	require.NoError(t, err)
	return eng
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("query parameter wins with the default order", func(t *testing.T) {
		t.Parallel()
		eng := newResolveEngine(t)
		tr := eng.Resolve(&fakeRequest{
			query:   map[string]string{"lang": "ru"},
			cookies: map[string]string{"lang": "en"},
		})
		assert.Equal(t, "ru", tr.Locale())
	})

	t.Run("invalid candidate falls through to the next strategy", func(t *testing.T) {
		t.Parallel()
		eng := newResolveEngine(t)
		tr := eng.Resolve(&fakeRequest{
			query:   map[string]string{"lang": "fr"},
			cookies: map[string]string{"lang": "ru"},
		})
		assert.Equal(t, "ru", tr.Locale())
	})

	t.Run("session value is consulted after query", func(t *testing.T) {
		t.Parallel()
		eng := newResolveEngine(t)
		tr := eng.Resolve(&fakeRequest{
			session: map[string]any{"lang": "ru"},
		})
		assert.Equal(t, "ru", tr.Locale())
	})

	t.Run("non-string session value is stringified", func(t *testing.T) {
		t.Parallel()
		type locale string
		eng := newResolveEngine(t)
		tr := eng.Resolve(&fakeRequest{
			session: map[string]any{"lang": locale("ru")},
		})
		assert.Equal(t, "ru", tr.Locale())
	})

	t.Run("subdomain uses the highest-level segment", func(t *testing.T) {
		t.Parallel()
		eng := newResolveEngine(t)
		tr := eng.Resolve(&fakeRequest{
			subdomains: []string{"static", "ru"},
		})
		assert.Equal(t, "ru", tr.Locale())
	})

	t.Run("accept-language uses the highest-priority tag only", func(t *testing.T) {
		t.Parallel()
		eng := newResolveEngine(t)
		tr := eng.Resolve(&fakeRequest{
			headers: map[string]string{"Accept-Language": "ru-RU,ru;q=0.9,en;q=0.8"},
		})
		assert.Equal(t, "ru", tr.Locale())

		// "fr" outranks "ru", fails validation, and the strategy as a
		// whole yields nothing.
		tr = eng.Resolve(&fakeRequest{
			headers: map[string]string{"Accept-Language": "fr,ru;q=0.9"},
		})
		assert.Equal(t, "en", tr.Locale())
	})

	t.Run("default locale when every strategy misses", func(t *testing.T) {
		t.Parallel()
		eng := newResolveEngine(t, lingo.WithDefaultLocale("ru"))
		tr := eng.Resolve(&fakeRequest{})
		assert.Equal(t, "ru", tr.Locale())
	})

	t.Run("custom order skips earlier sources", func(t *testing.T) {
		t.Parallel()
		eng := newResolveEngine(t, lingo.WithDetectionOrder(
			lingo.StrategyCookie,
			lingo.StrategyQuery,
		))
		tr := eng.Resolve(&fakeRequest{
			query:   map[string]string{"lang": "en"},
			cookies: map[string]string{"lang": "ru"},
		})
		assert.Equal(t, "ru", tr.Locale())
	})

	t.Run("custom parameter names", func(t *testing.T) {
		t.Parallel()
		eng := newResolveEngine(t,
			lingo.WithQueryParam("locale"),
			lingo.WithCookieName("site_lang"),
		)
		tr := eng.Resolve(&fakeRequest{
			query: map[string]string{"lang": "ru"}, // ignored, wrong name
		})
		assert.Equal(t, "en", tr.Locale())

		tr = eng.Resolve(&fakeRequest{
			cookies: map[string]string{"site_lang": "ru"},
		})
		assert.Equal(t, "ru", tr.Locale())
	})

	t.Run("custom detector chain replaces the built-in one", func(t *testing.T) {
		t.Parallel()
		eng := newResolveEngine(t, lingo.WithDetectFuncs(
			func(lingo.Request) (string, bool) { return "fr", true }, // invalid, skipped
			func(lingo.Request) (string, bool) { return "ru", true },
		))
		tr := eng.Resolve(&fakeRequest{})
		assert.Equal(t, "ru", tr.Locale())
	})
}

// Uses t.Setenv, so it cannot live under the parallel TestResolve.
func TestResolveEnvironment(t *testing.T) {
	t.Run("takes the segment before the underscore", func(t *testing.T) {
		t.Setenv("LINGO_RESOLVE_TEST_LANG", "ru_RU.UTF-8")
		eng := newResolveEngine(t, lingo.WithEnvVar("LINGO_RESOLVE_TEST_LANG"))
		tr := eng.Resolve(&fakeRequest{})
		assert.Equal(t, "ru", tr.Locale())
	})

	t.Run("unset variable yields nothing", func(t *testing.T) {
		eng := newResolveEngine(t, lingo.WithEnvVar("LINGO_RESOLVE_TEST_LANG_UNSET"))
		tr := eng.Resolve(&fakeRequest{})
		assert.Equal(t, "en", tr.Locale())
	})
}
