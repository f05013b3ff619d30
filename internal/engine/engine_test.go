package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-boggle-engine/config"
	"github.com/gcbaptista/go-boggle-engine/internal/board"
	internalErrors "github.com/gcbaptista/go-boggle-engine/internal/errors"
	"github.com/gcbaptista/go-boggle-engine/internal/referee"
	"github.com/gcbaptista/go-boggle-engine/model"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine()
	t.Cleanup(e.Stop)
	return e
}

func mustGrid(t *testing.T, s string) board.Grid {
	t.Helper()
	g, err := board.ParseString(s)
	require.NoError(t, err)
	return g
}

func wordTexts(words []model.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}

func TestCreateAndListDictionaries(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english"}))
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "dutch", Compressed: true}))

	err := e.CreateDictionary(config.SolverSettings{Name: "english"})
	assert.ErrorIs(t, err, internalErrors.ErrDictionaryAlreadyExists)

	err = e.CreateDictionary(config.SolverSettings{Name: ""})
	assert.ErrorIs(t, err, internalErrors.ErrInvalidInput)

	assert.Equal(t, []string{"dutch", "english"}, e.ListDictionaries())

	settings, err := e.GetSettings("english")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultMaxResults, settings.MaxResults)
	assert.Equal(t, config.DefaultMinWordLength, settings.MinWordLength)

	dict, err := e.GetDictionary("dutch")
	require.NoError(t, err)
	assert.Equal(t, "radix", dict.Info().Representation)
}

func TestGetUnknownDictionary(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.GetDictionary("missing")
	assert.ErrorIs(t, err, internalErrors.ErrDictionaryNotFound)

	_, err = e.GetSettings("missing")
	assert.ErrorIs(t, err, internalErrors.ErrDictionaryNotFound)

	_, err = e.AddWords("missing", []string{"CAT"})
	assert.ErrorIs(t, err, internalErrors.ErrDictionaryNotFound)

	assert.ErrorIs(t, e.DeleteDictionary("missing"), internalErrors.ErrDictionaryNotFound)
}

func TestRenameDictionary(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english"}))
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "dutch"}))
	_, err := e.AddWords("english", []string{"cat"})
	require.NoError(t, err)

	assert.ErrorIs(t, e.RenameDictionary("english", "english"), internalErrors.ErrSameName)
	assert.ErrorIs(t, e.RenameDictionary("english", "dutch"), internalErrors.ErrDictionaryAlreadyExists)
	assert.ErrorIs(t, e.RenameDictionary("missing", "other"), internalErrors.ErrDictionaryNotFound)
	assert.ErrorIs(t, e.RenameDictionary("english", "en/us"), internalErrors.ErrInvalidInput)

	require.NoError(t, e.RenameDictionary("english", "en"))
	assert.Equal(t, []string{"dutch", "en"}, e.ListDictionaries())

	dict, err := e.GetDictionary("en")
	require.NoError(t, err)
	assert.Equal(t, "en", dict.Settings().Name)
	assert.Equal(t, 1, dict.Info().WordCount)
}

func TestDeleteDictionary(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english"}))

	require.NoError(t, e.DeleteDictionary("english"))
	assert.Empty(t, e.ListDictionaries())
	_, err := e.GetDictionary("english")
	assert.ErrorIs(t, err, internalErrors.ErrDictionaryNotFound)
}

func TestAddWordsNormalizes(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english"}))

	result, err := e.AddWords("english", []string{"cat", " Cats ", "at", "x-ray", "CAT"})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Received)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 1, result.Duplicates)
	assert.Equal(t, 2, result.Rejected)
	assert.Equal(t, 2, result.TotalWords)

	result, err = e.AddWords("english", []string{"cat", "dog"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Duplicates, "already indexed words count as duplicates")
	assert.Equal(t, 3, result.TotalWords)
}

func TestSolveCatsBoard(t *testing.T) {
	for _, compressed := range []bool{false, true} {
		e := newTestEngine(t)
		require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english", Compressed: compressed}))
		_, err := e.AddWords("english", []string{"cat", "cats", "at", "ca"})
		require.NoError(t, err)

		dict, err := e.GetDictionary("english")
		require.NoError(t, err)

		result, err := dict.Solve(context.Background(), mustGrid(t, "CATS/XXXX/YYYY/ZZZZ"))
		require.NoError(t, err)

		require.Equal(t, []string{"CATS", "CAT"}, wordTexts(result.Words))
		assert.Equal(t, 4, result.Words[0].Score)
		assert.Equal(t, 1, result.Words[1].Score)
		assert.Equal(t, []model.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}}, result.Words[0].Path)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, 5, result.TotalScore)
		assert.Equal(t, "english", result.Dictionary)
		assert.Equal(t, []string{"CATS", "XXXX", "YYYY", "ZZZZ"}, result.Board)
		assert.NotEmpty(t, result.QueryID)
	}
}

func TestSolveQueen(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english"}))
	_, err := e.AddWords("english", []string{"queen", "qat"})
	require.NoError(t, err)

	dict, _ := e.GetDictionary("english")
	result, err := dict.Solve(context.Background(), mustGrid(t, "QEEN/XXXX/XXXX/XXXX"))
	require.NoError(t, err)

	require.Len(t, result.Words, 1)
	assert.Equal(t, "QUEEN", result.Words[0].Text)
	assert.Len(t, result.Words[0].Path, 4)
	assert.Equal(t, 9, result.Words[0].Score)
}

func TestSolveInvalidBoard(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english"}))
	dict, _ := e.GetDictionary("english")

	var zero board.Grid
	_, err := dict.Solve(context.Background(), zero)
	assert.ErrorIs(t, err, internalErrors.ErrInvalidInput)
}

func TestSolveEmptyDictionary(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english"}))
	dict, _ := e.GetDictionary("english")

	result, err := dict.Solve(context.Background(), mustGrid(t, "ABCD/EFGH/IJKL/MNOP"))
	require.NoError(t, err)
	assert.Empty(t, result.Words)
	assert.NotNil(t, result.Words)
}

func TestSolveRespectsMaxResults(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english", MaxResults: 1}))
	_, err := e.AddWords("english", []string{"cat", "cats"})
	require.NoError(t, err)

	dict, _ := e.GetDictionary("english")
	result, err := dict.Solve(context.Background(), mustGrid(t, "CATS/XXXX/YYYY/ZZZZ"))
	require.NoError(t, err)
	assert.Equal(t, []string{"CATS"}, wordTexts(result.Words))
}

func TestUpdateSettingsRebuild(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english"}))
	_, err := e.AddWords("english", []string{"cat", "cats", "act", "scat", "tacs"})
	require.NoError(t, err)

	dict, _ := e.GetDictionary("english")
	grid := mustGrid(t, "CATS/XXXX/YYYY/ZZZZ")
	before, err := dict.Solve(context.Background(), grid)
	require.NoError(t, err)
	plainNodes := dict.Info().NodeCount

	require.NoError(t, e.UpdateSettings("english", config.SolverSettings{Compressed: true, ParallelStarts: true}))

	assert.Equal(t, "radix", dict.Info().Representation)
	assert.Less(t, dict.Info().NodeCount, plainNodes)
	assert.Equal(t, 5, dict.Info().WordCount)

	after, err := dict.Solve(context.Background(), grid)
	require.NoError(t, err)
	assert.Equal(t, before.Words, after.Words)

	err = e.UpdateSettings("english", config.SolverSettings{Name: "other"})
	assert.ErrorIs(t, err, internalErrors.ErrInvalidInput)

	err = e.UpdateSettings("english", config.SolverSettings{MaxResults: 1000})
	assert.ErrorIs(t, err, internalErrors.ErrInvalidInput)

	err = e.UpdateSettings("english", config.SolverSettings{MaxResults: 21})
	assert.ErrorIs(t, err, internalErrors.ErrInvalidInput, "no more than 20 results per solve")
}

func TestScoreCountsTwentyRegardlessOfMaxResults(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english", MaxResults: 5}))
	_, err := e.AddWords("english", []string{"cat"})
	require.NoError(t, err)

	dict, _ := e.GetDictionary("english")
	grid := mustGrid(t, "CATS/XXXX/YYYY/ZZZZ")
	path := []model.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}

	submission := []model.Word{{Text: "CAT", Path: path}}
	for i := 0; i < 20; i++ {
		submission = append(submission, model.Word{Text: string([]byte{'X', byte('A' + i)})})
	}

	report := dict.Score(grid, submission)
	require.Len(t, report.Verdicts, 21)
	assert.Equal(t, referee.ReasonTooShort, report.Verdicts[19].Reason, "entry 20 is still counted")
	assert.Equal(t, referee.ReasonOverLimit, report.Verdicts[20].Reason)
	assert.Equal(t, 20, report.Penalty, "19 short words and one extra entry")
}

// threeLetterWords returns the first n words of AAA, AAB, ... in order.
func threeLetterWords(n int) []string {
	words := make([]string, 0, n)
	for i := 0; len(words) < n; i++ {
		words = append(words, string([]byte{byte('A' + i/676%26), byte('A' + i/26%26), byte('A' + i%26)}))
	}
	return words
}

func TestSettingsRevertedBeforeRebuildRuns(t *testing.T) {
	inst := NewDictionaryInstance(config.SolverSettings{Name: "english", MaxResults: 20, MinWordLength: 3})
	inst.AddWords([]string{"cat", "cats"})

	assert.True(t, inst.setSettings(config.SolverSettings{Name: "english", MaxResults: 20, MinWordLength: 3, Compressed: true}))
	assert.False(t, inst.setSettings(config.SolverSettings{Name: "english", MaxResults: 20, MinWordLength: 3, Compressed: false}),
		"switching back matches the current structure")

	assert.False(t, inst.rebuild(nil), "the pending rebuild has nothing left to do")
	assert.Equal(t, "trie", inst.Info().Representation)
}

func TestSettingsChangedDuringRebuild(t *testing.T) {
	inst := NewDictionaryInstance(config.SolverSettings{Name: "english", MaxResults: 20, MinWordLength: 3})
	inst.AddWords(threeLetterWords(rebuildProgressEvery + 1))

	require.True(t, inst.setSettings(config.SolverSettings{Name: "english", MaxResults: 20, MinWordLength: 3, Compressed: true}))

	reverted := false
	swapped := inst.rebuild(func(done, total int) {
		if !reverted {
			reverted = true
			inst.setSettings(config.SolverSettings{Name: "english", MaxResults: 20, MinWordLength: 3, Compressed: false})
		}
	})

	assert.True(t, reverted)
	assert.False(t, swapped, "a build for a stale target is discarded")
	assert.Equal(t, "trie", inst.Info().Representation)
	assert.False(t, inst.Settings().Compressed)
	assert.Equal(t, rebuildProgressEvery+1, inst.Info().WordCount)
}

func TestConcurrentSettingsUpdatesConverge(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english"}))
	_, err := e.AddWords("english", threeLetterWords(2000))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(compressed bool) {
			defer wg.Done()
			assert.NoError(t, e.UpdateSettings("english", config.SolverSettings{Compressed: compressed}))
		}(i%2 == 0)
	}
	wg.Wait()

	require.NoError(t, e.UpdateSettings("english", config.SolverSettings{Compressed: true}))
	dict, _ := e.GetDictionary("english")
	assert.Equal(t, "radix", dict.Info().Representation)
	assert.True(t, dict.Settings().Compressed)

	require.NoError(t, e.UpdateSettings("english", config.SolverSettings{Compressed: false}))
	assert.Equal(t, "trie", dict.Info().Representation)
}

func TestScoreUsesDictionary(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english"}))
	_, err := e.AddWords("english", []string{"cat", "cats"})
	require.NoError(t, err)

	dict, _ := e.GetDictionary("english")
	grid := mustGrid(t, "CATS/XXXX/YYYY/ZZZZ")
	result, err := dict.Solve(context.Background(), grid)
	require.NoError(t, err)

	report := dict.Score(grid, result.Words)
	assert.Equal(t, 2, report.ValidWords)
	assert.Equal(t, result.TotalScore, report.Points)

	report = dict.Score(grid, []model.Word{{Text: "SAT", Path: []model.Cell{{Row: 0, Col: 3}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}}})
	assert.Equal(t, referee.ReasonNotAdjacent, report.Verdicts[0].Reason)
}

func TestConcurrentSolvesDuringAddWords(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.CreateDictionary(config.SolverSettings{Name: "english", ParallelStarts: true}))
	_, err := e.AddWords("english", []string{"cat"})
	require.NoError(t, err)

	dict, _ := e.GetDictionary("english")
	grid := mustGrid(t, "CATS/XXXX/YYYY/ZZZZ")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				result, err := dict.Solve(context.Background(), grid)
				if !assert.NoError(t, err) {
					return
				}
				// Each solve sees either the old or the new dictionary, never a mix.
				texts := wordTexts(result.Words)
				assert.Contains(t, [][]string{{"CAT"}, {"CATS", "CAT"}}, texts)
			}
		}()
	}
	_, err = e.AddWords("english", []string{"cats"})
	require.NoError(t, err)
	wg.Wait()
}

func waitForJob(t *testing.T, e *Engine, jobID string) *model.Job {
	t.Helper()
	var job *model.Job
	require.Eventually(t, func() bool {
		j, err := e.GetJob(jobID)
		if err != nil {
			return false
		}
		job = j
		return j.Status == model.JobStatusCompleted || j.Status == model.JobStatusFailed
	}, 2*time.Second, 5*time.Millisecond)
	return job
}
