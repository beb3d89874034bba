package utils

import "github.com/microcosm-cc/bluemonday"

// Posts are plain text, so strip markup entirely rather than allowing a UGC subset.
var sanitizer = bluemonday.StrictPolicy()

// Sanitize removes HTML from user supplied content to prevent XSS.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
