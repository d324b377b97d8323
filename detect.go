package lingo

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Strategy identifies a locale detection source.
type Strategy string

const (
	StrategyQuery       Strategy = "query"
	StrategySession     Strategy = "session"
	StrategyCookie      Strategy = "cookie"
	StrategySubdomain   Strategy = "subdomain"
	StrategyHeaders     Strategy = "headers"
	StrategyEnvironment Strategy = "environment"
)

// DetectFunc extracts a locale candidate from the request context.
// Returns ("", false) when the source is absent or empty; validation of
// the candidate is the resolver's job, not the detector's.
type DetectFunc func(r Request) (string, bool)

// fromQuery reads the configured query parameter.
func fromQuery(name string) DetectFunc {
	return func(r Request) (string, bool) {
		v := r.Query(name)
		return v, v != ""
	}
}

// fromSession reads the configured session variable. Non-string values
// are stringified so a session storing typed values still yields a
// candidate.
func fromSession(key string) DetectFunc {
	return func(r Request) (string, bool) {
		val := r.SessionValue(key)
		if val == nil {
			return "", false
		}
		s, ok := val.(string)
		if !ok {
			s = fmt.Sprint(val)
		}
		return s, s != ""
	}
}

// fromCookie reads the configured cookie.
func fromCookie(name string) DetectFunc {
	return func(r Request) (string, bool) {
		v := r.Cookie(name)
		return v, v != ""
	}
}

// fromSubdomain takes the last (highest-level) segment of the ordered
// subdomain list, e.g. "ru" for ru.example.com.
func fromSubdomain() DetectFunc {
	return func(r Request) (string, bool) {
		subs := r.Subdomains()
		if len(subs) == 0 {
			return "", false
		}
		v := subs[len(subs)-1]
		return v, v != ""
	}
}

// fromAcceptLanguage parses the Accept-Language header and yields the base
// language of the highest-priority tag. Lower-priority tags are not
// consulted: the candidate either validates or the strategy fails.
func fromAcceptLanguage() DetectFunc {
	return func(r Request) (string, bool) {
		header := r.Header("Accept-Language")
		if header == "" {
			return "", false
		}
		tags, _, err := language.ParseAcceptLanguage(header)
		if err != nil || len(tags) == 0 {
			return "", false
		}
		base, _ := tags[0].Base()
		return base.String(), true
	}
}

// fromEnvironment reads the configured process environment variable,
// taking only the segment before "_" (en_US.UTF-8 yields "en").
func fromEnvironment(name string) DetectFunc {
	return func(Request) (string, bool) {
		v := os.Getenv(name)
		if v == "" {
			return "", false
		}
		v, _, _ = strings.Cut(v, "_")
		v, _, _ = strings.Cut(v, ".")
		return v, v != ""
	}
}

// detectFunc maps a strategy name to its extraction step over the
// engine's configured parameter names.
func (e *Engine) detectFunc(s Strategy) (DetectFunc, error) {
	switch s {
	case StrategyQuery:
		return fromQuery(e.queryParam), nil
	case StrategySession:
		return fromSession(e.sessionKey), nil
	case StrategyCookie:
		return fromCookie(e.cookieName), nil
	case StrategySubdomain:
		return fromSubdomain(), nil
	case StrategyHeaders:
		return fromAcceptLanguage(), nil
	case StrategyEnvironment:
		return fromEnvironment(e.envVar), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}
