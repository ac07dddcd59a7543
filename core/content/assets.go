package content

import "strings"

// NormalizeBasePath returns base with exactly one leading and one trailing slash.
// An empty base is the site root "/". Absolute URL bases (scheme://...) only gain
// the trailing slash.
func NormalizeBasePath(base string) string {
	base = strings.TrimSpace(base)
	if base == "" || base == "/" {
		return "/"
	}
	if !strings.Contains(base, "://") {
		base = "/" + strings.TrimLeft(base, "/")
	}
	return strings.TrimRight(base, "/") + "/"
}

// WithBase prefixes a root-relative path with the deployment base path.
// Relative paths, scheme-qualified URLs and data URIs are returned unchanged.
//
// Protocol-relative "//host/x" URLs are returned unchanged too. This differs
// from a bare "starts with /" rule, which would rewrite them to
// "/base//host/x" and break links to other hosts.
func WithBase(p, base string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return p
	}
	return NormalizeBasePath(base) + p[1:]
}

// NormalizeAssets returns a copy of a decoded JSON tree in which every string
// value is passed through WithBase. Records and lists are walked at any depth;
// other values are returned as they are. The input is not modified.
func NormalizeAssets(v any, base string) any {
	switch node := v.(type) {
	case string:
		return WithBase(node, base)
	case []any:
		out := make([]any, len(node))
		for i, item := range node {
			out[i] = NormalizeAssets(item, base)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(node))
		for key, item := range node {
			out[key] = NormalizeAssets(item, base)
		}
		return out
	default:
		return v
	}
}
