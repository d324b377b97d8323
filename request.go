package lingo

import (
	"net"
	"net/http"
	"strings"
)

// Request is the read-only slice of an inbound request the engine
// consumes. Implementations return zero values for absent entries.
type Request interface {
	// Query returns the value of a query parameter, or "".
	Query(name string) string
	// Cookie returns the value of a cookie, or "".
	Cookie(name string) string
	// SessionValue returns a session variable, or nil.
	SessionValue(key string) any
	// Header returns the value of a request header, or "".
	Header(name string) string
	// Subdomains returns the subdomain segments in host order, the
	// highest-level segment last ("a.b.example.com" -> ["a", "b"]).
	Subdomains() []string
}

// HTTPOption configures the net/http request adapter.
type HTTPOption func(*httpRequest)

// WithSessionLookup attaches a session accessor to the adapter. net/http
// has no session notion of its own, so the host supplies one.
func WithSessionLookup(fn func(r *http.Request, key string) any) HTTPOption {
	return func(h *httpRequest) {
		h.session = fn
	}
}

// WithSubdomains overrides the subdomain list derived from the Host
// header. Useful when the app runs behind a proxy that rewrites hosts.
func WithSubdomains(subs ...string) HTTPOption {
	return func(h *httpRequest) {
		h.subdomains = subs
		h.subdomainsSet = true
	}
}

// NewHTTPRequest adapts a *http.Request to the Request interface.
func NewHTTPRequest(r *http.Request, opts ...HTTPOption) Request {
	h := &httpRequest{r: r}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type httpRequest struct {
	r             *http.Request
	session       func(r *http.Request, key string) any
	subdomains    []string
	subdomainsSet bool
}

func (h *httpRequest) Query(name string) string {
	return h.r.URL.Query().Get(name)
}

func (h *httpRequest) Cookie(name string) string {
	c, err := h.r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

func (h *httpRequest) SessionValue(key string) any {
	if h.session == nil {
		return nil
	}
	return h.session(h.r, key)
}

func (h *httpRequest) Header(name string) string {
	return h.r.Header.Get(name)
}

func (h *httpRequest) Subdomains() []string {
	if h.subdomainsSet {
		return h.subdomains
	}
	return hostSubdomains(h.r.Host)
}

// hostSubdomains derives the subdomain list from a host: the port is
// stripped and the registered domain (last two labels) is dropped.
// IP addresses have no subdomains.
func hostSubdomains(host string) []string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if host == "" || net.ParseIP(host) != nil {
		return nil
	}

	labels := strings.Split(host, ".")
	if len(labels) <= 2 {
		return nil
	}
	return labels[:len(labels)-2]
}
