package export

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter selects mount points by glob pattern. An empty filter selects
// everything.
type Filter struct {
	Only []string
}

// Match reports whether mount is selected. Patterns use doublestar syntax
// and are matched against the bare mount id, e.g. "feat*" or "ko-*".
func (f Filter) Match(mount string) bool {
	if len(f.Only) == 0 {
		return true
	}
	return matchesAny(mount, f.Only)
}

// Validate reports the first malformed pattern.
func (f Filter) Validate() error {
	for _, p := range f.Only {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return &PatternError{Pattern: p}
		}
	}
	return nil
}

// PatternError is returned for a glob that doublestar cannot parse.
type PatternError struct {
	Pattern string
}

func (e *PatternError) Error() string { return "invalid pattern: " + e.Pattern }

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(filepath.ToSlash(pattern), name); err == nil && matched {
			return true
		}
	}
	return false
}
