// Package tenant resolves which restaurant (subdomain slug) and display
// locale an incoming request targets, purely from host and path.
package tenant

import "strings"

// Supported display locales; the first path segment may name one.
var Locales = []string{"uz", "ru", "en"}

const DefaultLocale = "uz"

// Marker is the internal path prefix tenant requests are rewritten under.
const Marker = "r"

// Subdomain labels that never resolve to a tenant.
var reservedSubdomains = map[string]bool{
	"www": true, "api": true, "admin": true, "app": true,
	"superadmin": true, "next": true, "static": true, Marker: true,
}

func IsValidLocale(l string) bool {
	for _, v := range Locales {
		if v == l {
			return true
		}
	}
	return false
}

func IsReserved(slug string) bool { return reservedSubdomains[slug] }

type Action int

const (
	// ActionPass leaves the request untouched.
	ActionPass Action = iota
	// ActionRedirect sends the client to Resolution.Path (locale prefixing).
	ActionRedirect
	// ActionRewrite re-routes the request internally to Resolution.Path.
	ActionRewrite
)

// Resolution is the routing decision for one request. Identical
// (host, path) inputs always yield identical Resolutions.
type Resolution struct {
	Action Action
	Slug   string // tenant slug, empty when no tenant applies
	Locale string
	Path   string // rewrite target or redirect location
}

type Resolver struct {
	RootDomain string // e.g. "qrplatform.uz"; empty means localhost-only
}

func NewResolver(rootDomain string) *Resolver {
	return &Resolver{RootDomain: strings.ToLower(strings.TrimSpace(rootDomain))}
}

// Subdomain extracts the tenant slug from a host header, or "" when the
// host is the root domain, localhost, a reserved label, or unrelated.
func (r *Resolver) Subdomain(host string) string {
	hostname := strings.ToLower(host)
	if i := strings.IndexByte(hostname, ':'); i >= 0 {
		hostname = hostname[:i]
	}

	if hostname == "localhost" {
		return ""
	}
	if strings.HasSuffix(hostname, ".localhost") {
		return acceptSlug(strings.SplitN(hostname, ".", 2)[0])
	}
	if r.RootDomain != "" && hostname == r.RootDomain {
		return ""
	}
	if r.RootDomain != "" && strings.HasSuffix(hostname, "."+r.RootDomain) {
		prefix := hostname[:len(hostname)-len(r.RootDomain)-1]
		return acceptSlug(strings.SplitN(prefix, ".", 2)[0])
	}
	return ""
}

func acceptSlug(s string) string {
	if s == "" || reservedSubdomains[s] {
		return ""
	}
	return s
}

// Resolve maps (host, path) to a routing decision. Asset and API paths
// bypass resolution, as do paths already rewritten under the marker.
func (r *Resolver) Resolve(host, path string) Resolution {
	if path == "" {
		path = "/"
	}

	if strings.HasPrefix(path, "/api") ||
		strings.HasPrefix(path, "/static") ||
		strings.HasPrefix(path, "/uploads") ||
		strings.Contains(path, ".") {
		return Resolution{Action: ActionPass, Locale: DefaultLocale, Path: path}
	}
	if strings.HasPrefix(path, "/"+Marker+"/") {
		return Resolution{Action: ActionPass, Locale: DefaultLocale, Path: path}
	}

	segments := splitPath(path)
	locale := DefaultLocale
	rest := segments
	hasLocalePrefix := len(segments) > 0 && IsValidLocale(segments[0])
	if hasLocalePrefix {
		locale = segments[0]
		rest = segments[1:]
	}

	if slug := r.Subdomain(host); slug != "" {
		target := "/" + Marker + "/" + slug + "/" + locale
		if len(rest) > 0 {
			target += "/" + strings.Join(rest, "/")
		}
		return Resolution{Action: ActionRewrite, Slug: slug, Locale: locale, Path: target}
	}

	if hasLocalePrefix {
		return Resolution{Action: ActionPass, Locale: locale, Path: path}
	}

	target := "/" + DefaultLocale
	if path != "/" {
		target += path
	}
	return Resolution{Action: ActionRedirect, Locale: DefaultLocale, Path: target}
}

func splitPath(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
