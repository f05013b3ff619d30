// Package collector keeps the best-scoring, duplicate-free words streamed by the search.
package collector

import (
	"container/heap"
	"sort"

	"github.com/gcbaptista/go-boggle-engine/model"
)

// DefaultLimit is the number of words retained when no limit is given.
const DefaultLimit = 20

// Collector owns a set of seen word texts and a bounded min-heap of admitted words.
// The first candidate for a text wins; later candidates with the same text are dropped
// whatever their path. Once the heap is full a candidate is admitted only if its score
// strictly exceeds the current minimum, which is then evicted.
//
// A Collector is not safe for concurrent use.
type Collector struct {
	limit   int
	score   ScoreFunc
	seen    map[string]struct{}
	entries wordHeap
	offered int
}

// New creates a collector retaining at most limit words scored by score.
// A non-positive limit falls back to DefaultLimit; a nil score to QuadraticScore.
func New(limit int, score ScoreFunc) *Collector {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if score == nil {
		score = QuadraticScore
	}
	return &Collector{
		limit:   limit,
		score:   score,
		seen:    make(map[string]struct{}, 64),
		entries: make(wordHeap, 0, limit),
	}
}

// Offer considers a candidate. The candidate's Score is overwritten with the collector's
// score for its text length. It returns true if the candidate is currently retained.
func (c *Collector) Offer(w model.Word) bool {
	c.offered++
	if _, dup := c.seen[w.Text]; dup {
		return false
	}
	c.seen[w.Text] = struct{}{}

	w.Score = c.score(len(w.Text))
	if len(c.entries) < c.limit {
		heap.Push(&c.entries, w)
		return true
	}
	if w.Score <= c.entries[0].Score {
		return false
	}
	c.entries[0] = w
	heap.Fix(&c.entries, 0)
	return true
}

// Offered returns the number of candidates seen, duplicates included.
func (c *Collector) Offered() int {
	return c.offered
}

// Len returns the number of retained words.
func (c *Collector) Len() int {
	return len(c.entries)
}

// Results returns the retained words ordered by descending score, then descending
// text length, then ascending text. The collector is left untouched.
func (c *Collector) Results() []model.Word {
	out := make([]model.Word, len(c.entries))
	copy(out, c.entries)
	sort.Slice(out, func(i, j int) bool {
		return ranksBefore(out[i], out[j])
	})
	return out
}

// ranksBefore is the final result order.
func ranksBefore(a, b model.Word) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if len(a.Text) != len(b.Text) {
		return len(a.Text) > len(b.Text)
	}
	return a.Text < b.Text
}

// wordHeap is a min-heap whose top is the word that ranks last.
type wordHeap []model.Word

func (h wordHeap) Len() int           { return len(h) }
func (h wordHeap) Less(i, j int) bool { return ranksBefore(h[j], h[i]) }
func (h wordHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *wordHeap) Push(x any) {
	*h = append(*h, x.(model.Word))
}

func (h *wordHeap) Pop() any {
	old := *h
	n := len(old)
	w := old[n-1]
	*h = old[:n-1]
	return w
}
