package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/[^/]+$`), Template: "/articles/:slug"},
	{Pattern: regexp.MustCompile(`^/swagger/.*$`), Template: "/swagger/*"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// Article slugs collapse to /articles/:slug; static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/articles/hello-world")  // "/articles/:slug"
//	NormalizePath("/articles")              // "/articles" (unchanged)
//	NormalizePath("/swagger/index.html")    // "/swagger/*"
//	NormalizePath("/health")                // "/health" (unchanged)
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/articles/hello?x=1")    // "/articles/:slug"
//	NormalizePath("/articles/hello/")       // "/articles/:slug"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}
