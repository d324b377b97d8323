package lingo

// Translator answers translation calls for a single request. It carries
// the request's active locale and catalog directories and must not be
// shared across requests; the caches behind it are shared process-wide.
type Translator struct {
	eng       *Engine
	locale    string
	baseDir   string
	directory string
}

// Locale returns the active locale.
func (t *Translator) Locale() string {
	return t.locale
}

// Locales returns the configured supported locales.
func (t *Translator) Locales() []string {
	return t.eng.Locales()
}

// DefaultLocale returns the configured default locale.
func (t *Translator) DefaultLocale() string {
	return t.eng.DefaultLocale()
}

// SetLocale activates the given locale if it validates against the
// supported set. On failure the previously active locale is retained and
// false is returned. Every detection strategy passes through this gate.
func (t *Translator) SetLocale(locale string) bool {
	canonical, ok := t.eng.set.canonical(locale)
	if !ok {
		return false
	}
	t.locale = canonical
	return true
}

// SetBaseDir re-points subsequent unit-catalog lookups at another base
// directory for the rest of the request.
func (t *Translator) SetBaseDir(dir string) {
	if dir != "" {
		t.baseDir = dir
	}
}

// SetDirectory re-points subsequent unit-catalog lookups at another
// sub-directory for the rest of the request.
func (t *Translator) SetDirectory(dir string) {
	if dir != "" {
		t.directory = dir
	}
}

// T translates a key for the active locale and applies argument
// substitution when args are given: a single M argument replaces {{name}}
// placeholders, anything else is positional printf substitution.
//
// Lookup order: unit catalog, then shared catalog. A key unknown to both
// is registered across every configured locale's catalog file as a side
// effect and the key text itself is returned, so an untranslated string
// can never break a page.
func (t *Translator) T(key string, args ...any) string {
	return substitute(t.translate(key), args)
}

func (t *Translator) translate(key string) string {
	path := t.eng.store.resolvePath(t.baseDir, t.directory, t.locale)

	// An empty value in the unit catalog is a known-but-untranslated key
	// and is returned as-is.
	if value, ok := t.eng.store.get(path)[key]; ok {
		return value
	}

	if value, ok := t.eng.joint.get(t.locale)[key]; ok {
		return value
	}

	t.eng.writer.register(key, t.baseDir, t.directory, t.locale)
	return key
}

// DumpAll returns a copy of the shared catalog for the given locale, or
// for the active locale when none is given. Intended for bulk export,
// e.g. client-side localization bundles.
func (t *Translator) DumpAll(locale ...string) Catalog {
	target := t.locale
	if len(locale) > 0 {
		if canonical, ok := t.eng.set.canonical(locale[0]); ok {
			target = canonical
		}
	}
	return t.eng.joint.dump(target)
}
