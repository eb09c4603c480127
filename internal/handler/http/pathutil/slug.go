// Package pathutil provides helpers for reading and normalizing URL paths.
package pathutil

import (
	"net/url"
	"strings"
)

// ExtractSlug returns the path segment(s) after prefix, unescaped.
// It returns "" when path does not start with prefix or nothing follows it.
//
// Example:
//
//	slug := ExtractSlug("/articles/hello%20world", "/articles/")
//	// Returns: "hello world"
func ExtractSlug(path, prefix string) string {
	rest, ok := strings.CutPrefix(path, prefix)
	if !ok {
		return ""
	}
	slug, err := url.PathUnescape(rest)
	if err != nil {
		return rest
	}
	return slug
}
