package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gcbaptista/go-boggle-engine/config"
	"github.com/gcbaptista/go-boggle-engine/index"
	"github.com/gcbaptista/go-boggle-engine/internal/board"
	"github.com/gcbaptista/go-boggle-engine/internal/collector"
	"github.com/gcbaptista/go-boggle-engine/internal/referee"
	"github.com/gcbaptista/go-boggle-engine/internal/search"
	"github.com/gcbaptista/go-boggle-engine/internal/telemetry"
	"github.com/gcbaptista/go-boggle-engine/internal/wordlist"
	"github.com/gcbaptista/go-boggle-engine/model"
	"github.com/gcbaptista/go-boggle-engine/services"
	"github.com/gcbaptista/go-boggle-engine/store"
)

// DictionaryInstance holds one named dictionary: its settings, the prefix structure the
// solver descends and the source words needed to rebuild it.
// It implements services.DictionaryAccessor.
//
// Solves hold the read lock for their whole duration, so a structure is never modified
// while a traversal is inside it.
type DictionaryInstance struct {
	mu        sync.RWMutex
	rebuildMu sync.Mutex // one rebuild at a time
	settings  config.SolverSettings
	dict      index.Dictionary
	words     *store.WordStore

	// targetCompressed is the representation last requested; settings.Compressed is
	// the one dict currently has. Guarded by mu.
	targetCompressed bool
}

// NewDictionaryInstance creates an empty dictionary with the given settings.
func NewDictionaryInstance(settings config.SolverSettings) *DictionaryInstance {
	return &DictionaryInstance{
		settings:         settings,
		dict:             index.New(settings.Compressed),
		words:            store.NewWordStore(),
		targetCompressed: settings.Compressed,
	}
}

// Settings returns a copy of the settings.
func (d *DictionaryInstance) Settings() config.SolverSettings {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.settings
}

// Info describes the dictionary for listings.
func (d *DictionaryInstance) Info() services.DictionaryInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return services.DictionaryInfo{
		Name:           d.settings.Name,
		WordCount:      d.dict.Len(),
		NodeCount:      d.dict.NodeCount(),
		Representation: telemetry.Representation(d.settings.Compressed),
	}
}

// AddWords normalizes the raw words and inserts the new ones.
func (d *DictionaryInstance) AddWords(raw []string) services.AddWordsResult {
	normalized, stats := wordlist.Normalized(raw)

	d.mu.Lock()
	added := d.words.Add(normalized)
	for _, w := range added {
		d.dict.Insert(w)
	}
	total := d.dict.Len()
	d.mu.Unlock()

	d.publishGauges()
	return services.AddWordsResult{
		Received:   stats.Lines,
		Added:      len(added),
		Duplicates: stats.Duplicates + len(normalized) - len(added),
		Rejected:   stats.TooShort + stats.Invalid,
		TotalWords: total,
	}
}

// Solve returns the best words on grid. The grid is copied; the caller's value is never touched.
func (d *DictionaryInstance) Solve(ctx context.Context, grid board.Grid) (model.SolveResult, error) {
	start := time.Now()

	d.mu.RLock()
	defer d.mu.RUnlock()
	name := d.settings.Name

	ctx, span := telemetry.Tracer().Start(ctx, "engine.Solve", trace.WithAttributes(
		attribute.String("dictionary", name),
		attribute.String("board", grid.String()),
	))
	defer span.End()

	if err := grid.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid board")
		telemetry.SolvesTotal.WithLabelValues(name, "invalid_board").Inc()
		return model.SolveResult{}, err
	}

	c := collector.New(d.settings.MaxResults, collector.QuadraticScore)
	stats := search.Search(ctx, &grid, d.dict.Root(), search.Options{
		MinWordLength: d.settings.MinWordLength,
		Parallel:      d.settings.ParallelStarts,
	}, c)

	words := c.Results()
	totalScore := 0
	for _, w := range words {
		totalScore += w.Score
	}

	elapsed := time.Since(start)
	telemetry.SolvesTotal.WithLabelValues(name, "ok").Inc()
	telemetry.SolveDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	telemetry.SolveCandidates.Observe(float64(stats.Candidates))
	span.SetAttributes(
		attribute.Int("words", c.Len()),
		attribute.Int("candidates", stats.Candidates),
		attribute.Int("offered", c.Offered()),
	)

	return model.SolveResult{
		Words:      words,
		Total:      len(words),
		TotalScore: totalScore,
		Candidates: stats.Candidates,
		Board:      grid.Rows(),
		Dictionary: name,
		Took:       elapsed.Milliseconds(),
		QueryID:    uuid.New().String(),
	}, nil
}

// Score judges a submitted word list against grid with this dictionary.
func (d *DictionaryInstance) Score(grid board.Grid, words []model.Word) referee.Report {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return referee.Score(&grid, d.dict, words, referee.DefaultLimit)
}

// rebuild brings the structure to the most recently requested representation. It builds
// a fresh structure from the stored words and swaps it in; solves keep using the old one
// until the swap. If another request changes the target while building, the build is
// discarded and redone. It reports whether a swap happened.
func (d *DictionaryInstance) rebuild(progress func(done, total int)) bool {
	d.rebuildMu.Lock()
	defer d.rebuildMu.Unlock()

	for {
		d.mu.RLock()
		target := d.targetCompressed
		current := d.settings.Compressed
		d.mu.RUnlock()
		if target == current {
			return false
		}

		words := d.words.Snapshot()
		fresh := index.New(target)
		for i, w := range words {
			fresh.Insert(w)
			if progress != nil && (i+1)%rebuildProgressEvery == 0 {
				progress(i+1, len(words))
			}
		}

		d.mu.Lock()
		if d.targetCompressed != target {
			d.mu.Unlock()
			continue
		}
		// Words added while building are replayed before the swap.
		for _, w := range d.words.Snapshot()[len(words):] {
			fresh.Insert(w)
		}
		oldRep := telemetry.Representation(d.settings.Compressed)
		d.dict = fresh
		d.settings.Compressed = target
		name := d.settings.Name
		d.mu.Unlock()

		if progress != nil {
			progress(len(words), len(words))
		}
		telemetry.DictionaryNodes.DeleteLabelValues(name, oldRep)
		d.publishGauges()
		return true
	}
}

const rebuildProgressEvery = 10000

func (d *DictionaryInstance) rename(newName string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.settings.Name = newName
}

// setSettings applies settings at once, except the representation: Compressed becomes
// the rebuild target. It reports whether the target differs from the current structure.
func (d *DictionaryInstance) setSettings(settings config.SolverSettings) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.targetCompressed = settings.Compressed
	needsRebuild := settings.RequiresRebuild(d.settings)
	settings.Compressed = d.settings.Compressed
	d.settings = settings
	return needsRebuild
}

func (d *DictionaryInstance) publishGauges() {
	info := d.Info()
	telemetry.DictionaryWords.WithLabelValues(info.Name).Set(float64(info.WordCount))
	telemetry.DictionaryNodes.WithLabelValues(info.Name, info.Representation).Set(float64(info.NodeCount))
}
