package model

import "fmt"

// Cell is a (row, column) position on the board, 0-indexed.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Word is a dictionary word traced on the board together with the cells that spell it.
// A 'Q' tile contributes "QU" to Text while occupying a single cell in Path.
type Word struct {
	Text  string `json:"word"`
	Path  []Cell `json:"path"`
	Score int    `json:"score"`
}

// SolveResult is the ranked word list returned for one board.
type SolveResult struct {
	Words      []Word   `json:"words"`
	Total      int      `json:"total"`       // Number of returned words
	TotalScore int      `json:"total_score"` // Sum of the returned words' scores
	Candidates int      `json:"candidates"`  // Candidates streamed by the search before dedup/ranking
	Board      []string `json:"board"`
	Dictionary string   `json:"dictionary"`
	Took       int64    `json:"took"`     // milliseconds
	QueryID    string   `json:"query_id"` // unique UUID for this solve
}
