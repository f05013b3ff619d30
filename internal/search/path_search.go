// Package search walks the letter grid and the dictionary together, streaming every
// dictionary word that can be traced as a path of adjacent, unrepeated cells.
package search

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/gcbaptista/go-boggle-engine/index"
	"github.com/gcbaptista/go-boggle-engine/internal/board"
	"github.com/gcbaptista/go-boggle-engine/internal/telemetry"
	"github.com/gcbaptista/go-boggle-engine/model"
)

// MinWordLength is the shortest candidate ever emitted.
const MinWordLength = 3

// Sink receives candidates as they are recognized. The candidate's Path is a fresh copy
// owned by the sink.
type Sink interface {
	Offer(w model.Word) bool
}

// Options tune a search.
type Options struct {
	// MinWordLength raises the emit threshold; values below 3 are treated as 3.
	MinWordLength int
	// Parallel runs the 16 start cells concurrently. Output order is unchanged.
	Parallel bool
}

// Stats summarizes one search.
type Stats struct {
	Candidates   int `json:"candidates"`    // words emitted, duplicates included
	CellsEntered int `json:"cells_entered"` // successful descents
	Pruned       int `json:"pruned"`        // failed descents
}

func (s *Stats) add(o Stats) {
	s.Candidates += o.Candidates
	s.CellsEntered += o.CellsEntered
	s.Pruned += o.Pruned
}

// directions is the fixed compass order N, NE, E, SE, S, SW, W, NW.
var directions = [8]struct{ dr, dc int }{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// Search runs a depth-first traversal from every cell in row-major order and offers each
// recognized word to sink. The grid and dictionary are only read.
func Search(ctx context.Context, grid *board.Grid, root index.Node, opts Options, sink Sink) Stats {
	_, span := telemetry.Tracer().Start(ctx, "search.Search",
		trace.WithAttributes(attribute.Bool("parallel", opts.Parallel)))
	defer span.End()

	var stats Stats
	if opts.Parallel {
		stats = searchParallel(grid, root, opts, sink)
	} else {
		for i := 0; i < board.Cells; i++ {
			stats.add(SearchFrom(grid, root, model.Cell{Row: i / board.Size, Col: i % board.Size}, opts, sink))
		}
	}

	span.SetAttributes(
		attribute.Int("candidates", stats.Candidates),
		attribute.Int("cells_entered", stats.CellsEntered),
		attribute.Int("pruned", stats.Pruned),
	)
	return stats
}

// SearchFrom runs the traversal rooted at a single start cell.
func SearchFrom(grid *board.Grid, root index.Node, start model.Cell, opts Options, sink Sink) Stats {
	if root == nil {
		return Stats{}
	}
	w := newWalker(grid, opts, sink)
	w.visit(start.Row, start.Col, root)
	return w.stats
}

// walker carries the per-traversal state. path and text are reused buffers;
// visited is a bitmask with bit row*4+col set for cells on the current path.
type walker struct {
	grid    *board.Grid
	sink    Sink
	minLen  int
	visited uint16
	path    [board.Cells]model.Cell
	depth   int
	text    [2 * board.Cells]byte
	textLen int
	stats   Stats
}

func newWalker(grid *board.Grid, opts Options, sink Sink) *walker {
	minLen := opts.MinWordLength
	if minLen < MinWordLength {
		minLen = MinWordLength
	}
	return &walker{grid: grid, sink: sink, minLen: minLen}
}

func (w *walker) visit(row, col int, node index.Node) {
	if row < 0 || row >= board.Size || col < 0 || col >= board.Size {
		return
	}
	bit := uint16(1) << (row*board.Size + col)
	if w.visited&bit != 0 {
		return
	}

	letter := w.grid[row][col]
	next := index.Descend(node, letter)
	if next == nil {
		w.stats.Pruned++
		return
	}
	w.stats.CellsEntered++

	textBefore := w.textLen
	w.visited |= bit
	w.path[w.depth] = model.Cell{Row: row, Col: col}
	w.depth++
	w.text[w.textLen] = letter
	w.textLen++
	if letter == 'Q' {
		w.text[w.textLen] = 'U'
		w.textLen++
	}

	if next.IsWordEnd() && w.textLen >= w.minLen {
		w.emit()
	}

	for _, d := range directions {
		w.visit(row+d.dr, col+d.dc, next)
	}

	w.textLen = textBefore
	w.depth--
	w.visited &^= bit
}

func (w *walker) emit() {
	w.stats.Candidates++
	path := make([]model.Cell, w.depth)
	copy(path, w.path[:w.depth])
	w.sink.Offer(model.Word{
		Text: string(w.text[:w.textLen]),
		Path: path,
	})
}
