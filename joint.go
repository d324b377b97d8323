package lingo

import (
	"maps"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// jointStore holds the shared catalogs common to the whole application,
// keyed by locale. It is populated exactly once at engine construction and
// read-only afterwards: shared strings are curated by hand, never
// auto-registered.
type jointStore struct {
	catalogs map[string]Catalog
}

// preloadJoint loads the shared catalog for every configured locale.
// Loads are independent and never fail (missing files become empty
// catalogs), so they run concurrently.
func preloadJoint(dir string, locales []string, s *store) *jointStore {
	cats := make([]Catalog, len(locales))

	var g errgroup.Group
	for i, locale := range locales {
		g.Go(func() error {
			cats[i] = s.loadFile(filepath.Join(dir, locale+s.codec.ext))
			return nil
		})
	}
	_ = g.Wait() // loaders degrade to empty catalogs instead of erroring

	j := &jointStore{catalogs: make(map[string]Catalog, len(locales))}
	for i, locale := range locales {
		j.catalogs[locale] = cats[i]
	}
	return j
}

// get returns the preloaded shared catalog for locale, or nil for locales
// outside the configured set. Never touches disk.
func (j *jointStore) get(locale string) Catalog {
	return j.catalogs[locale]
}

// dump returns a copy of the shared catalog for locale, safe for the
// caller to modify.
func (j *jointStore) dump(locale string) Catalog {
	cat := j.catalogs[locale]
	out := make(Catalog, len(cat))
	maps.Copy(out, cat)
	return out
}
