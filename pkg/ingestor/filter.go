package ingestor

import "strings"

// Filter is a blocklist/allowlist over manifest paths, allowing everything
// by default. Except dominates Only on conflict.
type Filter struct {
	Only   []string
	Except []string
}

// Pass reports whether path is kept: (only is empty or some entry is a
// prefix of path) and no except entry is a prefix of path.
func (f Filter) Pass(path string) bool {
	allow := len(f.Only) == 0
	for _, o := range f.Only {
		if hasPrefix(path, o) {
			allow = true
			break
		}
	}
	for _, e := range f.Except {
		if hasPrefix(path, e) {
			return false
		}
	}
	return allow
}

// hasPrefix reports whether prefix is a "/"-segment prefix of path.
func hasPrefix(path, prefix string) bool {
	if prefix == "/" {
		return true
	}
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}
