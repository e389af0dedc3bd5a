// Package ignore decides whether a path is excluded from output.
package ignore

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"hashuniq/pkg/fnmatch"
)

// Matcher holds the exclusion patterns for one run. Globs use shell
// wildcard semantics where * crosses path separators; PathGlobs use
// path-aware semantics where * stops at separators and ** crosses them.
type Matcher struct {
	Globs     []string
	PathGlobs []string
}

// Excluded reports whether path matches any pattern. Each glob is tried
// against three forms of the path: the cleaned path, the path exactly as
// listed, and the basename alone. Any hit excludes. Path globs are tried
// against the cleaned path only. An empty matcher never excludes.
func (m *Matcher) Excluded(path string) (bool, error) {
	if len(m.Globs) == 0 && len(m.PathGlobs) == 0 {
		return false, nil
	}

	cleaned := filepath.Clean(path)
	// filepath.Base("") is "."; an empty path has no basename.
	base := ""
	if path != "" {
		base = filepath.Base(path)
	}

	for _, pattern := range m.Globs {
		for _, candidate := range []string{cleaned, path, base} {
			matched, err := fnmatch.Match(pattern, candidate)
			if err != nil {
				return false, err
			}
			if matched {
				return true, nil
			}
		}
	}

	for _, pattern := range m.PathGlobs {
		matched, err := doublestar.Match(pattern, filepath.ToSlash(cleaned))
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}

	return false, nil
}
