package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-boggle-engine/api"
	"github.com/gcbaptista/go-boggle-engine/config"
	"github.com/gcbaptista/go-boggle-engine/internal/analytics"
	"github.com/gcbaptista/go-boggle-engine/internal/engine"
	"github.com/gcbaptista/go-boggle-engine/internal/wordlist"
)

const (
	appVersion        = "1.0.0"
	maxRequestBody    = 32 << 20 // word uploads can be large
	analyticsInterval = 30 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	// Define command-line flags
	var (
		help           = flag.Bool("help", false, "Show help message")
		version        = flag.Bool("version", false, "Show version information")
		port           = flag.String("port", "8080", "Port to run the server on")
		dataDir        = flag.String("data-dir", "./boggle_data", "Directory to store analytics data")
		dictionaryFile = flag.String("dictionary", "", "Word file to preload, one word per line")
		dictionaryName = flag.String("dictionary-name", "default", "Name of the preloaded dictionary")
		compressed     = flag.Bool("compressed", false, "Use the radix representation for the preloaded dictionary")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Go Boggle Engine - finds the best words on a 4x4 letter grid\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                                  # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                      # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --dictionary words.txt           # Preload a word list as 'default'\n", os.Args[0])
		fmt.Printf("  %s --dictionary words.txt --compressed --dictionary-name en\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Go Boggle Engine v%s\n", appVersion)
		fmt.Printf("Trie and radix dictionaries, async word uploads, and analytics\n")
		return
	}

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory %s: %v", *dataDir, err)
	}
	log.Printf("Using data directory: %s", *dataDir)

	boggleEngine := engine.NewEngine()
	defer boggleEngine.Stop()

	if *dictionaryFile != "" {
		if err := preload(boggleEngine, *dictionaryFile, *dictionaryName, *compressed); err != nil {
			log.Fatalf("Failed to preload dictionary: %v", err)
		}
	}

	analyticsService := analytics.NewService(boggleEngine, filepath.Join(*dataDir, analytics.DataFileName))
	analyticsService.Start(analyticsInterval)
	defer analyticsService.Stop()

	// Initialize Gin router
	router := gin.Default()
	router.Use(api.RequestIDMiddleware())
	router.Use(api.CORSMiddleware())
	router.Use(api.RequestSizeLimitMiddleware(maxRequestBody))

	// Setup API routes
	api.SetupRoutes(router, api.NewAPI(boggleEngine, analyticsService, appVersion))

	srv := &http.Server{
		Addr:              ":" + *port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s...", *port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Warning: server shutdown: %v", err)
	}
}

func preload(eng *engine.Engine, path, name string, compressed bool) error {
	words, stats, err := wordlist.ReadFile(path)
	if err != nil {
		return err
	}
	if err := eng.CreateDictionary(config.SolverSettings{Name: name, Compressed: compressed}); err != nil {
		return err
	}
	result, err := eng.AddWords(name, words)
	if err != nil {
		return err
	}
	log.Printf("Loaded dictionary '%s' from %s: %d words (%d lines, %d duplicates, %d rejected)",
		name, path, result.TotalWords, stats.Lines, stats.Duplicates, stats.TooShort+stats.Invalid)
	return nil
}
