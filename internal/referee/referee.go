// Package referee independently checks a submitted word list against a board and a
// dictionary, and awards points the way a game judge would.
package referee

import (
	"strings"

	"github.com/gcbaptista/go-boggle-engine/index"
	"github.com/gcbaptista/go-boggle-engine/internal/board"
	"github.com/gcbaptista/go-boggle-engine/internal/collector"
	"github.com/gcbaptista/go-boggle-engine/model"
)

// DefaultLimit is how many submitted entries are counted.
const DefaultLimit = collector.DefaultLimit

// Reason explains a verdict.
type Reason string

const (
	ReasonOK              Reason = "ok"
	ReasonDuplicate       Reason = "duplicate"
	ReasonTooShort        Reason = "too_short"
	ReasonOutOfBounds     Reason = "out_of_bounds"
	ReasonNotAdjacent     Reason = "not_adjacent"
	ReasonCellReused      Reason = "cell_reused"
	ReasonPathMismatch    Reason = "path_mismatch"
	ReasonNotInDictionary Reason = "not_in_dictionary"
	ReasonOverLimit       Reason = "over_limit"
)

// Verdict is the judgement on one submitted entry.
type Verdict struct {
	Word   string `json:"word"`
	Valid  bool   `json:"valid"`
	Reason Reason `json:"reason"`
	Points int    `json:"points"`
}

// Report is the judgement on a whole submission.
type Report struct {
	Verdicts   []Verdict `json:"verdicts"`
	ValidWords int       `json:"valid_words"`
	Penalty    int       `json:"penalty"` // points lost, as a positive number
	Points     int       `json:"points"`  // never negative
}

// Score judges words in submission order. Only the first limit entries are counted and
// each entry beyond costs one point. Valid words earn (len-2)^2 and invalid words lose
// the same amount; a duplicate loses (pathLen-2)^2. A limit <= 0 means DefaultLimit.
func Score(grid *board.Grid, dict index.Dictionary, words []model.Word, limit int) Report {
	if limit <= 0 {
		limit = DefaultLimit
	}

	report := Report{Verdicts: make([]Verdict, 0, len(words))}
	seen := make(map[string]struct{}, len(words))
	total := 0

	for i, w := range words {
		text := strings.ToUpper(strings.TrimSpace(w.Text))
		v := Verdict{Word: text}

		switch {
		case i >= limit:
			v.Reason = ReasonOverLimit
			v.Points = -1
		default:
			if _, dup := seen[text]; dup {
				// Duplicates are charged by path length, so a repeated Q word costs
				// one cell less per Q than its text suggests.
				v.Reason = ReasonDuplicate
				p := len(w.Path) - 2
				v.Points = -(p * p)
				break
			}
			seen[text] = struct{}{}
			v.Reason = check(grid, dict, text, w.Path)
			v.Valid = v.Reason == ReasonOK
			v.Points = points(len(text))
			if !v.Valid {
				v.Points = -v.Points
			}
		}

		if v.Valid {
			report.ValidWords++
		} else {
			report.Penalty -= v.Points
		}
		total += v.Points
		report.Verdicts = append(report.Verdicts, v)
	}

	report.Points = max(total, 0)
	return report
}

func points(length int) int {
	if length < collector.MinScoredLength {
		return 1
	}
	return collector.QuadraticScore(length)
}

func check(grid *board.Grid, dict index.Dictionary, text string, path []model.Cell) Reason {
	if len(text) < collector.MinScoredLength {
		return ReasonTooShort
	}

	var used [board.Cells]bool
	for i, cell := range path {
		if !board.InBounds(cell) {
			return ReasonOutOfBounds
		}
		if i > 0 && !board.Adjacent(path[i-1], cell) {
			return ReasonNotAdjacent
		}
		if used[board.Index(cell)] {
			return ReasonCellReused
		}
		used[board.Index(cell)] = true
	}
	if grid.Spell(path) != text {
		return ReasonPathMismatch
	}

	if !index.Contains(dict, text) {
		return ReasonNotInDictionary
	}
	return ReasonOK
}
