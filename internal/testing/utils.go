// Package testing provides helpers shared by the engine and HTTP tests.
package testing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-boggle-engine/config"
	"github.com/gcbaptista/go-boggle-engine/internal/board"
	"github.com/gcbaptista/go-boggle-engine/internal/engine"
	"github.com/gcbaptista/go-boggle-engine/model"
	"github.com/gcbaptista/go-boggle-engine/services"
)

// CommonWords is a small word list that produces results on the sample boards below.
var CommonWords = []string{
	"cat", "cats", "act", "acts", "scat", "tacs",
	"queen", "quest", "quiet", "quit", "suit",
	"rate", "tear", "tare", "eat", "tea", "ate", "seat", "east", "teas",
	"team", "meat", "mate", "steam", "stream", "master",
}

// Sample boards.
const (
	CatsBoard  = "CATS/XXXX/YYYY/ZZZZ"
	QueenBoard = "QEEN/XXXX/XXXX/XXXX"
	MixedBoard = "STRE/AMET/QUIE/TSAC"
)

// CreateTestEngine creates an engine whose job manager is stopped when the test ends.
func CreateTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng := engine.NewEngine()
	t.Cleanup(eng.Stop)
	return eng
}

// CreateTestDictionary creates a dictionary filled with CommonWords.
func CreateTestDictionary(t *testing.T, eng *engine.Engine, name string, compressed bool) config.SolverSettings {
	t.Helper()
	settings := config.SolverSettings{Name: name, Compressed: compressed}
	require.NoError(t, eng.CreateDictionary(settings), "Failed to create test dictionary")

	_, err := eng.AddWords(name, CommonWords)
	require.NoError(t, err, "Failed to add test words")

	settings.ApplyDefaults()
	return settings
}

// MustGrid parses a "ABCD/EFGH/IJKL/MNOP" board or fails the test.
func MustGrid(t *testing.T, s string) board.Grid {
	t.Helper()
	g, err := board.ParseString(s)
	require.NoError(t, err, "invalid test board %q", s)
	return g
}

// JobPollingOptions configures job polling behavior
type JobPollingOptions struct {
	Timeout      time.Duration
	PollInterval time.Duration
	LogProgress  bool
}

// DefaultJobPollingOptions returns sensible defaults for job polling
func DefaultJobPollingOptions() JobPollingOptions {
	return JobPollingOptions{
		Timeout:      5 * time.Second,
		PollInterval: 10 * time.Millisecond,
	}
}

// WaitForJobCompletion polls a job until it completes, fails the test if the job fails
// or the timeout passes.
func WaitForJobCompletion(t *testing.T, jobManager services.JobManager, jobID string, opts JobPollingOptions) *model.Job {
	t.Helper()
	timeout := time.After(opts.Timeout)
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			t.Fatalf("Job %s did not complete within %v timeout", jobID, opts.Timeout)
		case <-ticker.C:
			job, err := jobManager.GetJob(jobID)
			require.NoError(t, err, "Failed to get job status")

			switch job.Status {
			case model.JobStatusCompleted:
				return job
			case model.JobStatusFailed, model.JobStatusCancelled:
				t.Fatalf("Job %s ended as %s: %s", jobID, job.Status, job.Error)
			case model.JobStatusRunning:
				if opts.LogProgress && job.Progress != nil {
					t.Logf("Job %s progress: %d/%d - %s", jobID, job.Progress.Current, job.Progress.Total, job.Progress.Message)
				}
			}
		}
	}
}

// AssertJobCompleted verifies that a job completed successfully
func AssertJobCompleted(t *testing.T, job *model.Job, expectedType model.JobType, expectedDictionary string) {
	t.Helper()
	assert.Equal(t, model.JobStatusCompleted, job.Status, "Job should be completed")
	assert.Equal(t, expectedType, job.Type, "Job type should match")
	assert.Equal(t, expectedDictionary, job.DictionaryName, "Job dictionary name should match")
	assert.NotNil(t, job.CompletedAt, "Job should have completion timestamp")
	assert.Empty(t, job.Error, "Job should not have error")
}

// SolveTestCase describes one board and the words expected at the top of its result.
type SolveTestCase struct {
	Name          string
	Board         string
	ExpectedCount int
	ExpectedFirst string
	ValidateFunc  func(t *testing.T, result *model.SolveResult)
}

// RunSolveTests solves every case against the dictionary.
func RunSolveTests(t *testing.T, dict services.DictionaryAccessor, tests []SolveTestCase) {
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			result, err := dict.Solve(context.Background(), MustGrid(t, tt.Board))
			require.NoError(t, err, "Solve should not fail")

			assert.Equal(t, tt.ExpectedCount, result.Total, "Result count should match")
			if tt.ExpectedFirst != "" && assert.NotEmpty(t, result.Words) {
				assert.Equal(t, tt.ExpectedFirst, result.Words[0].Text, "First result should match expected")
			}
			if tt.ValidateFunc != nil {
				tt.ValidateFunc(t, &result)
			}
		})
	}
}
