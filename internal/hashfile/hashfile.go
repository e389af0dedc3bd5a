// Package hashfile reads sha256sum-style hash listings: one record per
// line in the form <hash><whitespace><path>.
package hashfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lines in generated listings are usually short, but paths can get long;
// allow up to 1MB per line before giving up.
const (
	initialBufSize = 64 * 1024
	maxLineSize    = 1024 * 1024
)

// Set is a collection of hash values with no path information.
type Set map[string]struct{}

// Contains reports whether sum is in the set.
func (s Set) Contains(sum string) bool {
	_, ok := s[sum]
	return ok
}

// Add inserts sum into the set.
func (s Set) Add(sum string) {
	s[sum] = struct{}{}
}

// Index maps a hash value to every path recorded under it, in listing
// order.
type Index map[string][]string

// Paths returns the paths recorded for sum, or nil if the hash is
// unknown.
func (ix Index) Paths(sum string) []string {
	return ix[sum]
}

// SplitRecord splits a trimmed listing line into its hash and path
// fields. The hash is everything before the first whitespace run; the
// path is the remainder with leading whitespace removed. A line with no
// whitespace is a bare hash with an empty path.
func SplitRecord(line string) (sum, path string) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeftFunc(line[i:], unicode.IsSpace)
}

// Scan streams the listing at path, calling fn once per record with the
// 1-based line number, the hash and the path field. Blank lines are
// skipped. Scanning stops at the first error, including any error
// returned by fn.
func Scan(path string, fn func(line int, sum, filePath string) error) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat listing: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("read listing %s: is a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open listing: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, initialBufSize), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return fmt.Errorf("read listing %s: line %d is not valid UTF-8", path, lineNo)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sum, filePath := SplitRecord(line)
		if err := fn(lineNo, sum, filePath); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read listing %s: %w", path, err)
	}
	return nil
}

// LoadSet reads one listing and returns the set of hash values it
// contains, discarding paths.
func LoadSet(path string) (Set, error) {
	set := make(Set)
	err := Scan(path, func(_ int, sum, _ string) error {
		set.Add(sum)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// LoadSets reads every listing and returns the union of their hash
// values. Duplicate hashes across listings collapse to one entry.
func LoadSets(paths []string) (Set, error) {
	union := make(Set)
	for _, p := range paths {
		err := Scan(p, func(_ int, sum, _ string) error {
			union.Add(sum)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return union, nil
}

// LoadIndex reads one listing and returns a hash-to-paths index. Unlike
// LoadSet it keeps every path, so a hash recorded under several paths
// maps to all of them.
func LoadIndex(path string) (Index, error) {
	ix := make(Index)
	err := Scan(path, func(_ int, sum, filePath string) error {
		ix[sum] = append(ix[sum], filePath)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ix, nil
}
