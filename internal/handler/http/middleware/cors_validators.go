package middleware

import (
	"slices"
	"strings"
)

// OriginValidator decides whether a cross-origin request is permitted.
type OriginValidator interface {
	// IsAllowed reports whether origin (the Origin request header) is permitted.
	IsAllowed(origin string) bool
	// AllowsAny reports whether every origin is permitted, in which case the
	// response carries the "*" wildcard instead of echoing the origin.
	AllowsAny() bool
}

// AnyOriginValidator permits every origin.
type AnyOriginValidator struct{}

func (AnyOriginValidator) IsAllowed(string) bool { return true }
func (AnyOriginValidator) AllowsAny() bool       { return true }

// WhitelistValidator permits a fixed set of origins, compared
// case-insensitively and without trailing slashes.
type WhitelistValidator struct {
	allowedOrigins []string
}

// NewWhitelistValidator creates a validator for origins.
func NewWhitelistValidator(origins []string) *WhitelistValidator {
	normalized := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin = normalizeOrigin(origin); origin != "" {
			normalized = append(normalized, origin)
		}
	}
	return &WhitelistValidator{allowedOrigins: normalized}
}

func (v *WhitelistValidator) IsAllowed(origin string) bool {
	origin = normalizeOrigin(origin)
	return origin != "" && slices.Contains(v.allowedOrigins, origin)
}

func (v *WhitelistValidator) AllowsAny() bool { return false }

// AllowedOrigins returns a copy of the normalized whitelist.
func (v *WhitelistValidator) AllowedOrigins() []string {
	return slices.Clone(v.allowedOrigins)
}

// NewOriginValidator returns an AnyOriginValidator when origins contains "*",
// and a WhitelistValidator otherwise.
func NewOriginValidator(origins []string) OriginValidator {
	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			return AnyOriginValidator{}
		}
	}
	return NewWhitelistValidator(origins)
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
}
