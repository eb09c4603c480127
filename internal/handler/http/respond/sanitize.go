package respond

import (
	"regexp"
)

// dsnPasswordPattern matches the user:password part of a connection string.
var dsnPasswordPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)

// SanitizeError returns the error message with connection string passwords masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return sanitize(err.Error())
}

func sanitize(msg string) string {
	return dsnPasswordPattern.ReplaceAllString(msg, "://$1:****@")
}
