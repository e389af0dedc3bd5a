// Package filter streams the primary hash listing and emits the paths
// whose hash has no counterpart in the comparison set.
package filter

import (
	"bufio"
	"fmt"
	"io"

	"hashuniq/internal/hashfile"
	"hashuniq/internal/ignore"
)

// Stats counts what happened to each record of the primary listing.
type Stats struct {
	Records   int // non-blank lines parsed
	Duplicate int // hash present in the comparison set
	Ignored   int // unique hash, but path matched an ignore pattern
	Emitted   int // paths written to output
}

// Run streams the listing at primaryPath one line at a time. Records
// whose hash appears in others are dropped; surviving paths are checked
// against the matcher and, if not excluded, written to out one per line
// in listing order. Lines are not deduplicated against each other: a
// repeated record is emitted as often as it appears.
func Run(primaryPath string, others hashfile.Set, matcher *ignore.Matcher, out io.Writer) (Stats, error) {
	var stats Stats

	w := bufio.NewWriter(out)

	err := hashfile.Scan(primaryPath, func(_ int, sum, path string) error {
		stats.Records++

		if others.Contains(sum) {
			stats.Duplicate++
			return nil
		}

		excluded, err := matcher.Excluded(path)
		if err != nil {
			return err
		}
		if excluded {
			stats.Ignored++
			return nil
		}

		if _, err := fmt.Fprintln(w, path); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		stats.Emitted++
		return nil
	})
	if err != nil {
		return stats, err
	}

	if err := w.Flush(); err != nil {
		return stats, fmt.Errorf("write output: %w", err)
	}
	return stats, nil
}
