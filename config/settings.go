// Package config provides configuration structures for the word-grid engine.
// It defines per-dictionary solver settings and their defaults.
package config

import (
	"fmt"
	"strings"
)

const (
	// DefaultMaxResults is the size of the returned word list when none is configured.
	DefaultMaxResults = 20
	// DefaultMinWordLength is the shortest word the solver ever reports.
	DefaultMinWordLength = 3

	// A solve never returns more than 20 words.
	maxResultsLimit = DefaultMaxResults
	// A 4x4 board has 16 cells; a Q tile adds one letter per cell it occupies.
	maxWordLength = 32
)

// SolverSettings contains all configuration options for a named dictionary.
//
// Compressed selects the radix (path-compressed) dictionary representation instead of
// the plain 26-way trie. Both produce identical results; the radix form uses fewer nodes.
//
// ParallelStarts runs the 16 start-cell traversals concurrently. Candidates are replayed
// into the result collector in start-cell order, so the output is identical to a
// sequential solve.
type SolverSettings struct {
	Name           string `json:"name"`            // Unique name for the dictionary
	MaxResults     int    `json:"max_results"`     // Maximum number of words returned per solve (e.g., 20)
	MinWordLength  int    `json:"min_word_length"` // Shortest word length reported, never below 3
	Compressed     bool   `json:"compressed"`      // Use the radix representation
	ParallelStarts bool   `json:"parallel_starts"` // Run start cells concurrently
}

// ApplyDefaults applies default values to the solver settings
func (settings *SolverSettings) ApplyDefaults() {
	if settings.MaxResults == 0 {
		settings.MaxResults = DefaultMaxResults
	}
	if settings.MinWordLength == 0 {
		settings.MinWordLength = DefaultMinWordLength
	}
}

// Validate checks the settings and returns a list of problems, empty when valid.
// Call ApplyDefaults first; zero values are reported as out of range.
func (settings *SolverSettings) Validate() []string {
	var problems []string

	if settings.Name == "" {
		problems = append(problems, "Dictionary name is required")
	} else if strings.TrimSpace(settings.Name) != settings.Name {
		problems = append(problems, "Dictionary name cannot have leading or trailing whitespace")
	} else if strings.ContainsAny(settings.Name, "/\\") {
		problems = append(problems, "Dictionary name cannot contain path separators")
	}

	if settings.MaxResults < 1 || settings.MaxResults > maxResultsLimit {
		problems = append(problems, fmt.Sprintf("max_results must be between 1 and %d, got %d", maxResultsLimit, settings.MaxResults))
	}

	if settings.MinWordLength < DefaultMinWordLength || settings.MinWordLength > maxWordLength {
		problems = append(problems, fmt.Sprintf("min_word_length must be between %d and %d, got %d", DefaultMinWordLength, maxWordLength, settings.MinWordLength))
	}

	return problems
}

// RequiresRebuild reports whether switching from old to the receiver changes the
// dictionary representation, which means the structure has to be rebuilt from its words.
func (settings *SolverSettings) RequiresRebuild(old SolverSettings) bool {
	return settings.Compressed != old.Compressed
}
