// Package pagination provides page/limit handling for list endpoints:
// parsing from query strings, clamping to configured bounds, and offset
// calculation.
package pagination

// Config holds pagination settings.
type Config struct {
	DefaultPage  int // Page used when none (or an invalid one) is requested
	DefaultLimit int // Items per page when none (or a non-positive one) is requested
	MaxLimit     int // Upper bound applied to requested limits
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, limit=10, max=50
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 10,
		MaxLimit:     50,
	}
}

// NewConfig returns a Config with the given limit bounds and page 1 as default.
func NewConfig(defaultLimit, maxLimit int) Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: defaultLimit,
		MaxLimit:     maxLimit,
	}
}
