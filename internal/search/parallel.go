package search

import (
	"sync"

	"github.com/gcbaptista/go-boggle-engine/index"
	"github.com/gcbaptista/go-boggle-engine/internal/board"
	"github.com/gcbaptista/go-boggle-engine/model"
)

// bufferSink records the first candidate per text for one start cell.
type bufferSink struct {
	seen  map[string]struct{}
	words []model.Word
}

func (b *bufferSink) Offer(w model.Word) bool {
	if _, dup := b.seen[w.Text]; dup {
		return false
	}
	b.seen[w.Text] = struct{}{}
	b.words = append(b.words, w)
	return true
}

// searchParallel walks each start cell in its own goroutine, then replays the buffered
// candidates into sink in row-major start order. The sink sees the same first occurrence
// of every text as a sequential run, so its result is identical.
func searchParallel(grid *board.Grid, root index.Node, opts Options, sink Sink) Stats {
	var (
		wg      sync.WaitGroup
		buffers [board.Cells]bufferSink
		stats   [board.Cells]Stats
	)

	for i := 0; i < board.Cells; i++ {
		buffers[i].seen = make(map[string]struct{})
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start := model.Cell{Row: i / board.Size, Col: i % board.Size}
			stats[i] = SearchFrom(grid, root, start, opts, &buffers[i])
		}(i)
	}
	wg.Wait()

	var total Stats
	for i := 0; i < board.Cells; i++ {
		for _, w := range buffers[i].words {
			sink.Offer(w)
		}
		total.add(stats[i])
	}
	return total
}
