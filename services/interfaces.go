package services

import (
	"context"

	"github.com/gcbaptista/go-boggle-engine/config"
	"github.com/gcbaptista/go-boggle-engine/internal/board"
	"github.com/gcbaptista/go-boggle-engine/internal/jobs"
	"github.com/gcbaptista/go-boggle-engine/internal/referee"
	"github.com/gcbaptista/go-boggle-engine/model"
)

// AddWordsResult summarizes a bulk word upload.
type AddWordsResult struct {
	Received   int `json:"received"`    // entries in the request
	Added      int `json:"added"`       // new words indexed
	Duplicates int `json:"duplicates"`  // already indexed or repeated in the request
	Rejected   int `json:"rejected"`    // too short or outside A-Z
	TotalWords int `json:"total_words"` // dictionary size afterwards
}

// DictionaryInfo is the listing view of a dictionary.
type DictionaryInfo struct {
	Name           string `json:"name"`
	WordCount      int    `json:"word_count"`
	NodeCount      int    `json:"node_count"`
	Representation string `json:"representation"`
}

// Solver finds the best words on a board.
type Solver interface {
	Solve(ctx context.Context, grid board.Grid) (model.SolveResult, error)
}

// Scorer verifies a submitted word list against a board.
type Scorer interface {
	Score(grid board.Grid, words []model.Word) referee.Report
}

// DictionaryAccessor is a read view of one named dictionary.
type DictionaryAccessor interface {
	Solver
	Scorer
	Settings() config.SolverSettings
	Info() DictionaryInfo
}

// DictionaryManager manages the lifecycle of dictionaries
type DictionaryManager interface {
	CreateDictionary(settings config.SolverSettings) error
	GetDictionary(name string) (DictionaryAccessor, error)
	GetSettings(name string) (config.SolverSettings, error)
	UpdateSettings(name string, settings config.SolverSettings) error
	RenameDictionary(oldName, newName string) error
	DeleteDictionary(name string) error
	ListDictionaries() []string
	AddWords(name string, words []string) (AddWordsResult, error)
}

// AsyncDictionaryManager runs the expensive dictionary operations as background jobs.
type AsyncDictionaryManager interface {
	DictionaryManager
	AddWordsAsync(name string, words []string) (string, error)
	// UpdateSettingsAsync returns an empty job ID when no rebuild was needed.
	UpdateSettingsAsync(name string, settings config.SolverSettings) (string, error)
}

// JobManager defines operations for inspecting background jobs
type JobManager interface {
	GetJob(jobID string) (*model.Job, error)
	ListJobs(dictionaryName string, status *model.JobStatus) []*model.Job
	JobMetrics() jobs.Snapshot
}
