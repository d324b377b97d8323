package lingo

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
)

// Default configuration values.
const (
	DefaultLocale    = "en"
	DefaultBaseDir   = "locales"
	DefaultDirectory = "app"
	DefaultJointDir  = "common"
	DefaultParamName = "lang"
	DefaultEnvVar    = "LANG"
	DefaultIndent    = 4
)

// defaultOrder is the full strategy chain in precedence order.
var defaultOrder = []Strategy{
	StrategyQuery,
	StrategySession,
	StrategyCookie,
	StrategySubdomain,
	StrategyHeaders,
	StrategyEnvironment,
}

// Engine is the process-wide localization service: the supported locale
// set, the detection chain, and the catalog caches. It is immutable after
// construction and safe for concurrent use; per-request state lives on the
// Translator it hands out.
type Engine struct {
	set    *localeSet
	store  *store
	joint  *jointStore
	writer *writer
	log    *slog.Logger

	baseDir    string
	directory  string
	jointDir   string
	queryParam string
	sessionKey string
	cookieName string
	envVar     string
	format     string

	order     []Strategy
	detectors []DetectFunc

	// Construction-time inputs, consumed by New.
	locales       []string
	defaultLocale string

	indent       int
	fold         bool
	autoRegister bool
}

// New creates an Engine with the given options and preloads the shared
// catalogs for every configured locale.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		baseDir:       DefaultBaseDir,
		directory:     DefaultDirectory,
		queryParam:    DefaultParamName,
		sessionKey:    DefaultParamName,
		cookieName:    DefaultParamName,
		envVar:        DefaultEnvVar,
		format:        FormatJSON,
		order:         defaultOrder,
		defaultLocale: DefaultLocale,
		indent:        DefaultIndent,
		fold:          true,
		autoRegister:  true,
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if len(e.locales) == 0 {
		e.locales = []string{e.defaultLocale}
	}
	set, err := newLocaleSet(e.locales, e.defaultLocale, e.fold)
	if err != nil {
		return nil, err
	}
	e.set = set

	if e.jointDir == "" {
		e.jointDir = filepath.Join(e.baseDir, DefaultJointDir)
	}

	c, err := codecFor(e.format)
	if err != nil {
		return nil, err
	}
	e.store = newStore(c, e.indent, e.log)
	e.joint = preloadJoint(e.jointDir, e.set.locales, e.store)
	e.writer = &writer{set: e.set, store: e.store, log: e.log, enabled: e.autoRegister}

	if e.detectors == nil {
		e.detectors = make([]DetectFunc, 0, len(e.order))
		for _, s := range e.order {
			fn, err := e.detectFunc(s)
			if err != nil {
				return nil, err
			}
			e.detectors = append(e.detectors, fn)
		}
	}

	return e, nil
}

// Locales returns the supported locales in configured order.
func (e *Engine) Locales() []string {
	out := make([]string, len(e.set.locales))
	copy(out, e.set.locales)
	return out
}

// DefaultLocale returns the configured default locale.
func (e *Engine) DefaultLocale() string {
	return e.set.def
}

// Resolve runs the detection chain over the request and returns a
// request-scoped Translator. The translator starts at the default locale;
// the first strategy whose candidate is present and validates overwrites
// it through the SetLocale gate, so an exhausted chain and an explicit
// default are the same state.
func (e *Engine) Resolve(r Request) *Translator {
	t := e.ForLocale(e.set.def)
	for _, detect := range e.detectors {
		if candidate, ok := detect(r); ok && t.SetLocale(candidate) {
			break
		}
	}
	return t
}

// ForLocale returns a Translator pinned to the given locale without
// running detection. Invalid locales fall back to the default.
func (e *Engine) ForLocale(locale string) *Translator {
	canonical, ok := e.set.canonical(locale)
	if !ok {
		canonical = e.set.def
	}
	return &Translator{
		eng:       e,
		locale:    canonical,
		baseDir:   e.baseDir,
		directory: e.directory,
	}
}
