package pathutil

import (
	"regexp"
	"strings"
)

// pathPatterns lists the dynamic routes and their normalized templates,
// pre-compiled at init. Evaluated in order, most specific first.
var pathPatterns = []struct {
	pattern  *regexp.Regexp
	template string
}{
	// Admin article routes (UUID ids)
	{regexp.MustCompile(`^/admin/articles/[^/]+/enhance$`), "/admin/articles/:id/enhance"},
	{regexp.MustCompile(`^/admin/articles/[^/]+$`), "/admin/articles/:id"},

	// Public article routes (slugs)
	{regexp.MustCompile(`^/articles/[^/]+$`), "/articles/:slug"},
	{regexp.MustCompile(`^/categories/[^/]+/articles$`), "/categories/:category/articles"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths carrying an article id or slug are
// converted to template form (e.g. /articles/my-post -> /articles/:slug).
// Static paths like /health, /metrics, /auth/token and collection
// endpoints pass through unchanged.
//
// Query parameters and trailing slashes are stripped before matching:
//
//	NormalizePath("/articles/my-post?ref=x")  // "/articles/:slug"
//	NormalizePath("/admin/articles/4f7c/")    // "/admin/articles/:id"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
