package lingo

import (
	"fmt"
	"slices"
	"strings"
)

// localeSet is the fixed, ordered set of supported locales. It validates
// candidate locale strings and maps them back to their canonical (as
// configured) spelling.
type localeSet struct {
	index   map[string]string
	def     string
	locales []string
	fold    bool
}

func newLocaleSet(locales []string, def string, fold bool) (*localeSet, error) {
	if len(locales) == 0 {
		return nil, ErrNoLocales
	}
	if def == "" {
		return nil, fmt.Errorf("%w: default locale", ErrEmptyLocale)
	}

	s := &localeSet{
		locales: make([]string, 0, len(locales)),
		index:   make(map[string]string, len(locales)),
		fold:    fold,
	}

	for _, locale := range locales {
		locale = strings.TrimSpace(locale)
		if locale == "" {
			return nil, ErrEmptyLocale
		}
		if _, ok := s.index[s.normalize(locale)]; ok {
			continue
		}
		s.index[s.normalize(locale)] = locale
		s.locales = append(s.locales, locale)
	}

	// The default is always a member of the set, prepended if absent.
	canonical, ok := s.index[s.normalize(def)]
	if !ok {
		canonical = strings.TrimSpace(def)
		s.index[s.normalize(def)] = canonical
		s.locales = slices.Insert(s.locales, 0, canonical)
	}
	s.def = canonical

	return s, nil
}

// normalize applies the configured case folding.
func (s *localeSet) normalize(locale string) string {
	locale = strings.TrimSpace(locale)
	if s.fold {
		return strings.ToLower(locale)
	}
	return locale
}

// canonical validates a candidate and returns the configured spelling of
// the matching member.
func (s *localeSet) canonical(locale string) (string, bool) {
	c, ok := s.index[s.normalize(locale)]
	return c, ok
}
