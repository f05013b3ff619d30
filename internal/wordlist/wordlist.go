// Package wordlist reads newline-separated word files and normalizes entries for the dictionary.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// MinLength is the shortest entry kept; shorter words can never be reported.
const MinLength = 3

// latinWordRegex matches entries made only of the 26 Latin letters, either case.
// It runs before uppercasing: strings.ToUpper maps some non-ASCII letters ('ſ', 'ı')
// onto A-Z.
var latinWordRegex = regexp.MustCompile(`^[A-Za-z]+$`)

// Stats counts what happened to the input lines.
type Stats struct {
	Lines      int `json:"lines"`
	Accepted   int `json:"accepted"`
	Duplicates int `json:"duplicates"`
	TooShort   int `json:"too_short"`
	Invalid    int `json:"invalid"`
}

// Normalize trims and uppercases a raw entry. It reports false for blank entries,
// entries shorter than MinLength, and entries with characters outside A-Z.
func Normalize(raw string) (string, bool) {
	word := strings.TrimSpace(raw)
	if len(word) < MinLength {
		return "", false
	}
	if !latinWordRegex.MatchString(word) {
		return "", false
	}
	return strings.ToUpper(word), true
}

// Normalized normalizes a slice of entries, dropping rejects and duplicates while
// keeping the first-seen order.
func Normalized(raw []string) ([]string, Stats) {
	stats := Stats{}
	words := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, entry := range raw {
		stats.Lines++
		stats.add(entry, &words, seen)
	}
	return words, stats
}

// Read consumes newline-separated entries from r.
func Read(r io.Reader) ([]string, Stats, error) {
	stats := Stats{}
	words := make([]string, 0, 1024)
	seen := make(map[string]struct{}, 1024)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		stats.add(scanner.Text(), &words, seen)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, stats, nil
}

// ReadFile reads a word list from disk.
func ReadFile(path string) ([]string, Stats, error) {
	file, err := os.Open(path) // #nosec G304 -- path comes from the operator's command line
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", path, closeErr)
		}
	}()

	return Read(file)
}

func (s *Stats) add(entry string, words *[]string, seen map[string]struct{}) {
	trimmed := strings.TrimSpace(entry)
	if len(trimmed) < MinLength {
		s.TooShort++
		return
	}
	word, ok := Normalize(trimmed)
	if !ok {
		s.Invalid++
		return
	}
	if _, dup := seen[word]; dup {
		s.Duplicates++
		return
	}
	seen[word] = struct{}{}
	*words = append(*words, word)
	s.Accepted++
}
