package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-boggle-engine/config"
	internalErrors "github.com/gcbaptista/go-boggle-engine/internal/errors"
	"github.com/gcbaptista/go-boggle-engine/model"
)

func TestAddWordsAsync(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english"}))

	words := make([]string, 0, addWordsBatch+10)
	for i := 0; i < addWordsBatch+10; i++ {
		words = append(words, fmt.Sprintf("W%c%c%c", 'A'+i%26, 'A'+(i/26)%26, 'A'+(i/676)%26))
	}
	words = append(words, "cats", "cat")

	jobID, err := e.AddWordsAsync("english", words)
	require.NoError(t, err)

	job := waitForJob(t, e, jobID)
	assert.Equal(t, model.JobStatusCompleted, job.Status)
	assert.Equal(t, model.JobTypeAddWords, job.Type)
	assert.Equal(t, "english", job.DictionaryName)
	require.NotNil(t, job.Progress)
	assert.Equal(t, len(words), job.Progress.Current)
	assert.Equal(t, len(words), job.Progress.Total)

	dict, _ := e.GetDictionary("english")
	result, err := dict.Solve(context.Background(), mustGrid(t, "CATS/XXXX/YYYY/ZZZZ"))
	require.NoError(t, err)
	assert.Equal(t, []string{"CATS", "CAT"}, wordTexts(result.Words))

	jobs := e.ListJobs("english", nil)
	require.Len(t, jobs, 1)
	assert.Equal(t, jobID, jobs[0].ID)
	assert.Equal(t, int64(1), e.JobMetrics().JobsCompleted)
}

func TestAddWordsAsyncUnknownDictionary(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.AddWordsAsync("missing", []string{"cat"})
	assert.ErrorIs(t, err, internalErrors.ErrDictionaryNotFound)
}

func TestAddWordsAsyncDictionaryDeleted(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english"}))

	// Hold the instance write lock so the job cannot finish before the delete.
	instance, err := e.instance("english")
	require.NoError(t, err)
	instance.mu.Lock()

	jobID, err := e.AddWordsAsync("english", []string{"cat"})
	require.NoError(t, err)
	require.NoError(t, e.DeleteDictionary("english"))
	instance.mu.Unlock()

	// The first batch looked the dictionary up before or after the delete; either the
	// job completed on the detached instance or it failed with not found.
	job := waitForJob(t, e, jobID)
	assert.Contains(t, []model.JobStatus{model.JobStatusCompleted, model.JobStatusFailed}, job.Status)
}

func TestUpdateSettingsAsync(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english"}))
	_, err := e.AddWords("english", []string{"cat", "cats"})
	require.NoError(t, err)

	jobID, err := e.UpdateSettingsAsync("english", config.SolverSettings{MaxResults: 5})
	require.NoError(t, err)
	assert.Empty(t, jobID, "no rebuild needed when the representation is unchanged")

	settings, _ := e.GetSettings("english")
	assert.Equal(t, 5, settings.MaxResults)

	jobID, err = e.UpdateSettingsAsync("english", config.SolverSettings{MaxResults: 5, Compressed: true})
	require.NoError(t, err)
	require.NotEmpty(t, jobID)

	job := waitForJob(t, e, jobID)
	assert.Equal(t, model.JobStatusCompleted, job.Status)
	assert.Equal(t, model.JobTypeRebuildDictionary, job.Type)
	assert.Equal(t, "true", job.Metadata["compressed"])

	dict, _ := e.GetDictionary("english")
	assert.Equal(t, "radix", dict.Info().Representation)
	assert.True(t, dict.Settings().Compressed)
	assert.Equal(t, 2, dict.Info().WordCount)
}
