package ingestor

import (
	"regexp"
	"strings"
)

// pathSegment is the RFC-1123-style grammar every object key must satisfy:
// a single alphanumeric, or an alphanumeric run that may contain internal
// hyphens. Compiled once per process, per the design notes.
var pathSegment = regexp.MustCompile(`(?i)^[a-z0-9]$|^[a-z0-9][a-z0-9-]*[a-z0-9]$`)

// IsValidSegment reports whether s is a legal path segment (object key).
func IsValidSegment(s string) bool {
	return pathSegment.MatchString(s)
}

// joinPath renders a Tracking chain as a POSIX-like absolute path.
func joinPath(fields []string) string {
	if len(fields) == 0 {
		return "/"
	}
	return "/" + strings.Join(fields, "/")
}
