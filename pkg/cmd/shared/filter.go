package shared

import (
	"strings"

	"github.com/go-kure/kure/pkg/ingestor"
)

// BuildFilter converts comma-separated dotted paths from --only/--except
// into an ingestor.Filter, each path becoming "/a/b/c".
func BuildFilter(only, except []string) ingestor.Filter {
	return ingestor.Filter{
		Only:   dottedToSlash(only),
		Except: dottedToSlash(except),
	}
}

func dottedToSlash(csv []string) []string {
	var paths []string
	for _, entry := range csv {
		for _, dotted := range strings.Split(entry, ",") {
			dotted = strings.TrimSpace(dotted)
			if dotted == "" {
				continue
			}
			paths = append(paths, "/"+strings.ReplaceAll(dotted, ".", "/"))
		}
	}
	return paths
}
