package lingo

import "log/slog"

// Option configures the Engine during construction.
type Option func(*Engine) error

// WithLocales sets the supported locales. Order is preserved; the default
// locale is always a member and is prepended if absent.
func WithLocales(locales ...string) Option {
	return func(e *Engine) error {
		for _, l := range locales {
			if l == "" {
				return ErrEmptyLocale
			}
		}
		e.locales = locales
		return nil
	}
}

// WithDefaultLocale sets the locale used when no detection strategy
// yields a valid candidate. Defaults to "en".
func WithDefaultLocale(locale string) Option {
	return func(e *Engine) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		e.defaultLocale = locale
		return nil
	}
}

// WithCaseFolding controls whether locale comparison lowercases its input
// first. Enabled by default.
func WithCaseFolding(enabled bool) Option {
	return func(e *Engine) error {
		e.fold = enabled
		return nil
	}
}

// WithBaseDir sets the base directory for unit catalogs.
// Defaults to "locales".
func WithBaseDir(dir string) Option {
	return func(e *Engine) error {
		if dir != "" {
			e.baseDir = dir
		}
		return nil
	}
}

// WithDirectory sets the default sub-directory for unit catalogs.
// Defaults to "app"; overridable per request via Translator.SetDirectory.
func WithDirectory(dir string) Option {
	return func(e *Engine) error {
		if dir != "" {
			e.directory = dir
		}
		return nil
	}
}

// WithJointDir sets the directory holding the shared catalogs.
// Defaults to "<baseDir>/common".
func WithJointDir(dir string) Option {
	return func(e *Engine) error {
		if dir != "" {
			e.jointDir = dir
		}
		return nil
	}
}

// WithQueryParam sets the query parameter name for the query strategy.
// Defaults to "lang".
func WithQueryParam(name string) Option {
	return func(e *Engine) error {
		if name != "" {
			e.queryParam = name
		}
		return nil
	}
}

// WithSessionKey sets the session variable name for the session strategy.
// Defaults to "lang".
func WithSessionKey(name string) Option {
	return func(e *Engine) error {
		if name != "" {
			e.sessionKey = name
		}
		return nil
	}
}

// WithCookieName sets the cookie name for the cookie strategy.
// Defaults to "lang".
func WithCookieName(name string) Option {
	return func(e *Engine) error {
		if name != "" {
			e.cookieName = name
		}
		return nil
	}
}

// WithEnvVar sets the environment variable for the environment strategy.
// Defaults to "LANG".
func WithEnvVar(name string) Option {
	return func(e *Engine) error {
		if name != "" {
			e.envVar = name
		}
		return nil
	}
}

// WithDetectionOrder sets which strategies run and in what order.
// Defaults to query, session, cookie, subdomain, headers, environment.
func WithDetectionOrder(order ...Strategy) Option {
	return func(e *Engine) error {
		if len(order) > 0 {
			e.order = order
		}
		return nil
	}
}

// WithDetectFuncs replaces the strategy chain with custom detectors,
// bypassing WithDetectionOrder entirely. Candidates still pass through
// locale validation.
func WithDetectFuncs(fns ...DetectFunc) Option {
	return func(e *Engine) error {
		e.detectors = fns
		return nil
	}
}

// WithFormat sets the catalog file format, FormatJSON or FormatYAML.
// Defaults to FormatJSON.
func WithFormat(format string) Option {
	return func(e *Engine) error {
		if format != "" {
			e.format = format
		}
		return nil
	}
}

// WithIndent sets the indentation width for persisted catalog files.
// Defaults to 4.
func WithIndent(n int) Option {
	return func(e *Engine) error {
		if n > 0 {
			e.indent = n
		}
		return nil
	}
}

// WithLogger sets the logger for non-fatal conditions (unreadable catalog
// files, failed placeholder writes). Logging is disabled by default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) error {
		if l != nil {
			e.log = l
		}
		return nil
	}
}

// WithoutAutoRegister disables placeholder persistence for unknown keys.
// Translation misses still fall back to the key text; catalog files are
// left untouched.
func WithoutAutoRegister() Option {
	return func(e *Engine) error {
		e.autoRegister = false
		return nil
	}
}
