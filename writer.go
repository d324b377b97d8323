package lingo

import "log/slog"

// writer registers keys that were requested but missing from every
// catalog, keeping key sets consistent across all configured locale files.
type writer struct {
	set     *localeSet
	store   *store
	log     *slog.Logger
	enabled bool
}

// register adds key with an empty placeholder value to every configured
// locale's unit catalog file, and records the key text as a provisional
// in-memory value for the active locale so the current process serves a
// readable fallback without re-reading the file.
//
// The cache patch is scoped to the active locale only; other locales pick
// up the empty placeholder from disk on their first load. The whole path
// is best-effort: a failed directory creation or write is logged and the
// request proceeds on the in-memory fallback.
func (w *writer) register(key, baseDir, directory, active string) {
	if !w.enabled {
		return
	}

	for _, locale := range w.set.locales {
		path := w.store.resolvePath(baseDir, directory, locale)

		// Fresh disk read so concurrent registrations converge on the
		// same file content instead of clobbering each other's keys.
		cat := w.store.loadFile(path)
		if _, ok := cat[key]; !ok {
			cat[key] = ""
			if err := w.store.persist(path, cat); err != nil {
				w.log.Warn("failed to persist placeholder", "key", key, "path", path, "error", err)
			}
		}

		if locale == active {
			w.store.patch(path, key, key)
		}
	}
}
