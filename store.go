package lingo

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sync"
)

// store is the process-wide unit-catalog cache, keyed by resolved file
// path. Catalogs are loaded at most once per path and served from memory
// for the rest of the process lifetime; files are assumed not to change
// underneath a running process.
type store struct {
	log    *slog.Logger
	cache  map[string]Catalog
	codec  codec
	indent int
	mu     sync.Mutex
}

func newStore(c codec, indent int, log *slog.Logger) *store {
	return &store{
		cache:  make(map[string]Catalog),
		codec:  c,
		indent: indent,
		log:    log,
	}
}

// resolvePath joins base directory, sub-directory, and locale filename.
func (s *store) resolvePath(baseDir, directory, locale string) string {
	return filepath.Join(baseDir, directory, locale+s.codec.ext)
}

// get returns the cached catalog for path, loading it on first access.
// The returned catalog is a shared snapshot and must not be mutated;
// patch replaces snapshots instead of mutating them.
func (s *store) get(path string) Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cat, ok := s.cache[path]; ok {
		return cat
	}
	cat := s.loadFile(path)
	s.cache[path] = cat
	return cat
}

// patch records a provisional value for key in the cached catalog at path
// without touching disk. Copy-on-write so snapshots handed out by get stay
// immutable.
func (s *store) patch(path, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.cache[path]
	next := make(Catalog, len(prev)+1)
	maps.Copy(next, prev)
	next[key] = value
	s.cache[path] = next
}

// loadFile reads and parses a catalog file. Missing or malformed files
// degrade to an empty catalog: the translator treats "no catalog" as
// "catalog with zero entries" and repopulates it on demand.
func (s *store) loadFile(path string) Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("failed to read catalog", "path", path, "error", err)
		}
		return Catalog{}
	}

	cat, err := s.codec.decode(data)
	if err != nil {
		s.log.Warn("failed to parse catalog", "path", path, "error", err)
		return Catalog{}
	}
	return cat
}

// persist writes the catalog back as a whole-file overwrite, creating
// missing directories first.
func (s *store) persist(path string, cat Catalog) error {
	data, err := s.codec.encode(cat, s.indent)
	if err != nil {
		return fmt.Errorf("encode catalog %q: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create catalog directory for %q: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog %q: %w", path, err)
	}
	return nil
}
