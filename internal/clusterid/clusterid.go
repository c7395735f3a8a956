// Package clusterid recovers the dashboard's cluster identifier from the
// places the renderer exposes it. In lookup order:
//
//   - the per-cluster renderer hostname (<id>.renderer.freelens.app)
//   - a /cluster/<id> path segment
//   - a #/cluster/<id> hash route
//   - a cluster=<id> query parameter
//   - an element id of the form cluster-<id>
//   - a data-cluster-id attribute value
//
// Hostname and element ids are 32 hexadecimal characters and are returned
// lower-cased. The route, query and attribute forms carry whatever name the
// dashboard used and are returned as found.
package clusterid

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	hostPattern    = regexp.MustCompile(`(?i)^([a-f0-9]{32})\.renderer\.freelens\.app$`)
	pathPattern    = regexp.MustCompile(`/cluster/([^/]+)`)
	hashPattern    = regexp.MustCompile(`^/?cluster/([^/?&]+)`)
	elementPattern = regexp.MustCompile(`(?i)^cluster-([a-f0-9]{32})$`)
	idPattern      = regexp.MustCompile(`(?i)^[a-f0-9]{32}$`)
)

// FromHostname extracts the id from a renderer hostname.
func FromHostname(host string) (string, bool) {
	host = strings.TrimSuffix(strings.TrimSpace(host), ".")
	if h, _, ok := strings.Cut(host, ":"); ok {
		host = h
	}
	m := hostPattern.FindStringSubmatch(host)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

// FromURL extracts the id from a renderer URL: the hostname first, then the
// path, the hash route and the cluster query parameter.
func FromURL(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	if id, ok := FromHostname(u.Hostname()); ok {
		return id, true
	}
	if m := pathPattern.FindStringSubmatch(u.Path); m != nil {
		return m[1], true
	}
	if m := hashPattern.FindStringSubmatch(u.Fragment); m != nil {
		return m[1], true
	}
	if id := strings.TrimSpace(u.Query().Get("cluster")); id != "" {
		return id, true
	}
	return "", false
}

// FromElementID extracts the id from a cluster-<id> element id.
func FromElementID(id string) (string, bool) {
	m := elementPattern.FindStringSubmatch(strings.TrimSpace(id))
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

// Sources holds everything a renderer page exposes about its cluster.
type Sources struct {
	URL            string
	ElementIDs     []string
	DataClusterIDs []string
}

// Detect returns the first id found in src: the URL, then element ids, then
// data-cluster-id values.
func Detect(src Sources) (string, bool) {
	if id, ok := FromURL(src.URL); ok {
		return id, true
	}
	for _, el := range src.ElementIDs {
		if id, ok := FromElementID(el); ok {
			return id, true
		}
	}
	for _, v := range src.DataClusterIDs {
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	return "", false
}

// Normalize accepts a bare id, a renderer hostname, a renderer URL or an
// element id and returns the id. Any other non-empty string is returned
// trimmed and unchanged so callers can use arbitrary cluster names.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if idPattern.MatchString(s) {
		return strings.ToLower(s)
	}
	if id, ok := FromElementID(s); ok {
		return id
	}
	if id, ok := FromHostname(s); ok {
		return id
	}
	if id, ok := FromURL(s); ok {
		return id
	}
	return s
}
