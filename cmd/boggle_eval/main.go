package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/gcbaptista/go-boggle-engine/config"
	"github.com/gcbaptista/go-boggle-engine/internal/board"
	"github.com/gcbaptista/go-boggle-engine/internal/engine"
	"github.com/gcbaptista/go-boggle-engine/internal/wordlist"
)

const (
	evalDictionary = "eval"
	// Loading a word list should never take this long.
	maxPreprocessing = 3 * time.Minute
)

type seedResult struct {
	points  int
	elapsed time.Duration
	memory  uint64
}

func main() {
	var (
		seeds      = flag.Int("seeds", 5, "Number of boards to play")
		startSeed  = flag.Int64("start-seed", 123456789, "Seed of the first board; later boards use consecutive seeds")
		compressed = flag.Bool("compressed", false, "Use the radix dictionary representation")
		parallel   = flag.Bool("parallel", false, "Search the 16 start cells concurrently")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] wordFile\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 || *seeds < 1 {
		flag.Usage()
		os.Exit(2)
	}

	eng := engine.NewEngine()
	defer eng.Stop()

	fmt.Println("Loading dictionary...")
	start := time.Now()
	if err := load(eng, flag.Arg(0), *compressed, *parallel); err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	preprocessing := time.Since(start)
	if preprocessing > maxPreprocessing {
		log.Fatalf("Preprocessing took %s, more than %s", preprocessing, maxPreprocessing)
	}
	dict, err := eng.GetDictionary(evalDictionary)
	if err != nil {
		log.Fatalf("Failed to open dictionary: %v", err)
	}
	info := dict.Info()
	fmt.Printf("Pre-processing (not part of score): %s, %d words, %d %s nodes\n",
		preprocessing.Round(time.Millisecond), info.WordCount, info.NodeCount, info.Representation)
	fmt.Printf("Memory in bytes (not part of score): %d\n", heapInUse())

	fmt.Printf("Playing with %d different seeds...\n", *seeds)
	fmt.Println("------------------------------------------------------")

	results := make([]seedResult, 0, *seeds)
	for i := 0; i < *seeds; i++ {
		seed := *startSeed + int64(i)
		grid := board.Generate(rand.New(rand.NewSource(seed)))

		fmt.Printf("Seed #%d (%d):\n", i+1, seed)
		for _, row := range grid.Rows() {
			fmt.Printf("  %s\n", row)
		}

		began := time.Now()
		solved, err := dict.Solve(context.Background(), grid)
		elapsed := time.Since(began)
		if err != nil {
			log.Fatalf("Solve failed for seed %d: %v", seed, err)
		}

		report := dict.Score(grid, solved.Words)
		for j, w := range solved.Words {
			v := report.Verdicts[j]
			fmt.Printf("  %2d. %-16s %4d  %s\n", j+1, w.Text, v.Points, v.Reason)
		}

		r := seedResult{points: report.Points, elapsed: elapsed, memory: heapInUse()}
		results = append(results, r)
		fmt.Printf("  points: %d  time: %s  memory: %d  score: %.4g\n\n",
			r.points, r.elapsed, r.memory, overall(r))
	}

	var total seedResult
	totalScore := 0.0
	for _, r := range results {
		total.points += r.points
		total.elapsed += r.elapsed
		total.memory += r.memory
		totalScore += overall(r)
	}
	n := float64(len(results))
	fmt.Println("------------------------------------------------------")
	fmt.Printf("Average points: %.2f\n", float64(total.points)/n)
	fmt.Printf("Average time: %s\n", total.elapsed/time.Duration(len(results)))
	fmt.Printf("Average memory: %.0f\n", float64(total.memory)/n)
	fmt.Printf("Average score: %.4g\n", totalScore/n)
}

func load(eng *engine.Engine, path string, compressed, parallel bool) error {
	words, _, err := wordlist.ReadFile(path)
	if err != nil {
		return err
	}
	settings := config.SolverSettings{Name: evalDictionary, Compressed: compressed, ParallelStarts: parallel}
	if err := eng.CreateDictionary(settings); err != nil {
		return err
	}
	_, err = eng.AddWords(evalDictionary, words)
	return err
}

// overall rewards points and penalizes time and memory: points^2 / sqrt(seconds * bytes).
func overall(r seedResult) float64 {
	denom := math.Sqrt(r.elapsed.Seconds() * float64(r.memory))
	if denom == 0 {
		return 0
	}
	return float64(r.points*r.points) / denom
}

func heapInUse() uint64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapInuse
}
