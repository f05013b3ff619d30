package analytics

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-boggle-engine/config"
	"github.com/gcbaptista/go-boggle-engine/internal/board"
	internalErrors "github.com/gcbaptista/go-boggle-engine/internal/errors"
	"github.com/gcbaptista/go-boggle-engine/internal/referee"
	"github.com/gcbaptista/go-boggle-engine/model"
	"github.com/gcbaptista/go-boggle-engine/services"
)

// mockDictionaryManager is a simple mock for testing
type mockDictionaryManager struct {
	words map[string]int
}

func (m *mockDictionaryManager) CreateDictionary(_ config.SolverSettings) error { return nil }
func (m *mockDictionaryManager) GetDictionary(name string) (services.DictionaryAccessor, error) {
	count, ok := m.words[name]
	if !ok {
		return nil, internalErrors.NewDictionaryNotFoundError(name)
	}
	return &mockAccessor{name: name, words: count}, nil
}
func (m *mockDictionaryManager) GetSettings(_ string) (config.SolverSettings, error) {
	return config.SolverSettings{}, nil
}
func (m *mockDictionaryManager) UpdateSettings(_ string, _ config.SolverSettings) error { return nil }
func (m *mockDictionaryManager) RenameDictionary(_, _ string) error                     { return nil }
func (m *mockDictionaryManager) DeleteDictionary(_ string) error                        { return nil }
func (m *mockDictionaryManager) ListDictionaries() []string {
	names := make([]string, 0, len(m.words))
	for _, name := range []string{"dutch", "english"} {
		if _, ok := m.words[name]; ok {
			names = append(names, name)
		}
	}
	return names
}
func (m *mockDictionaryManager) AddWords(_ string, _ []string) (services.AddWordsResult, error) {
	return services.AddWordsResult{}, nil
}

type mockAccessor struct {
	name  string
	words int
}

func (a *mockAccessor) Solve(_ context.Context, _ board.Grid) (model.SolveResult, error) {
	return model.SolveResult{}, nil
}
func (a *mockAccessor) Score(_ board.Grid, _ []model.Word) referee.Report { return referee.Report{} }
func (a *mockAccessor) Settings() config.SolverSettings                   { return config.SolverSettings{Name: a.name} }
func (a *mockAccessor) Info() services.DictionaryInfo {
	return services.DictionaryInfo{Name: a.name, WordCount: a.words}
}

func newMockManager() *mockDictionaryManager {
	return &mockDictionaryManager{words: map[string]int{"english": 1000, "dutch": 50}}
}

func TestTrackSolveEvent(t *testing.T) {
	service := NewService(newMockManager(), "")

	service.TrackSolveEvent(model.SolveEvent{
		Dictionary:   "english",
		Board:        "CATS/XXXX/YYYY/ZZZZ",
		WordCount:    2,
		TopWord:      "CATS",
		TotalScore:   5,
		ResponseTime: 300 * time.Microsecond,
	})

	require.Len(t, service.events, 1)
	assert.False(t, service.events[0].Timestamp.IsZero(), "timestamp is set on tracking")
}

func TestEventsAreBounded(t *testing.T) {
	service := NewService(newMockManager(), "")
	for i := 0; i < maxEventsToKeep+10; i++ {
		service.TrackSolveEvent(model.SolveEvent{Dictionary: "english", WordCount: i})
	}

	assert.Len(t, service.events, maxEventsToKeep)
	assert.Equal(t, 10, service.events[0].WordCount, "oldest events are dropped first")
}

func TestEventFromResult(t *testing.T) {
	result := model.SolveResult{
		Words:      []model.Word{{Text: "CATS", Score: 4}, {Text: "CAT", Score: 1}},
		TotalScore: 5,
		Board:      []string{"CATS", "XXXX", "YYYY", "ZZZZ"},
		Dictionary: "english",
	}

	event := EventFromResult(result, 2*time.Millisecond)
	assert.Equal(t, "english", event.Dictionary)
	assert.Equal(t, "CATS/XXXX/YYYY/ZZZZ", event.Board)
	assert.Equal(t, 2, event.WordCount)
	assert.Equal(t, "CATS", event.TopWord)
	assert.Equal(t, 5, event.TotalScore)
	assert.Equal(t, 2*time.Millisecond, event.ResponseTime)

	empty := EventFromResult(model.SolveResult{Dictionary: "english"}, 0)
	assert.Empty(t, empty.TopWord)
}

func TestGetDashboardData(t *testing.T) {
	service := NewService(newMockManager(), "")

	events := []model.SolveEvent{
		{Dictionary: "english", TopWord: "QUEEN", WordCount: 10, TotalScore: 30, ResponseTime: 500 * time.Microsecond},
		{Dictionary: "english", TopWord: "QUEEN", WordCount: 20, TotalScore: 50, ResponseTime: 3 * time.Millisecond},
		{Dictionary: "english", TopWord: "CATS", WordCount: 0, TotalScore: 0, ResponseTime: 10 * time.Millisecond},
		{Dictionary: "dutch", TopWord: "", WordCount: 6, TotalScore: 4, ResponseTime: 50 * time.Millisecond},
		{Dictionary: "english", TopWord: "CATS", WordCount: 4, TotalScore: 6, ResponseTime: time.Millisecond, Timestamp: time.Now().Add(-48 * time.Hour)},
	}
	for _, e := range events {
		service.TrackSolveEvent(e)
	}

	dashboard := service.GetDashboardData()

	assert.Equal(t, 5, dashboard.TotalSolves)
	assert.Equal(t, 4, dashboard.SolvesLast24h)
	assert.Equal(t, 2, dashboard.ActiveDictionaries)
	assert.InDelta(t, 8.0, dashboard.AvgWordsPerSolve, 0.001)
	assert.InDelta(t, 18.0, dashboard.AvgScorePerSolve, 0.001)
	assert.Equal(t, int64(12900), dashboard.AvgResponseTimeMicro)

	require.Len(t, dashboard.PopularWords, 2)
	assert.Equal(t, model.PopularWord{Word: "CATS", Count: 2}, dashboard.PopularWords[0], "ties break alphabetically")
	assert.Equal(t, model.PopularWord{Word: "QUEEN", Count: 2}, dashboard.PopularWords[1])

	assert.Equal(t, []model.DictionaryStats{
		{Name: "dutch", WordCount: 50, SolveCount: 1},
		{Name: "english", WordCount: 1000, SolveCount: 4},
	}, dashboard.DictionaryUsage)

	assert.Equal(t, model.ResponseTimeDistribution{
		BucketUnder1ms: 1,
		Bucket1To5ms:   2,
		Bucket5To25ms:  1,
		Bucket25msPlus: 1,
	}, dashboard.ResponseTimeDistribution)
}

func TestEmptyDashboard(t *testing.T) {
	service := NewService(&mockDictionaryManager{words: map[string]int{}}, "")
	dashboard := service.GetDashboardData()

	assert.Equal(t, 0, dashboard.TotalSolves)
	assert.Equal(t, int64(0), dashboard.AvgResponseTimeMicro)
	assert.Empty(t, dashboard.PopularWords)
	assert.Empty(t, dashboard.DictionaryUsage)
}

func TestPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), DataFileName)

	service := NewService(newMockManager(), path)
	service.TrackSolveEvent(model.SolveEvent{Dictionary: "english", TopWord: "QUEEN", WordCount: 3})
	require.NoError(t, service.Flush())

	reloaded := NewService(newMockManager(), path)
	require.Len(t, reloaded.events, 1)
	assert.Equal(t, "QUEEN", reloaded.events[0].TopWord)
}

func TestStartStopFlushes(t *testing.T) {
	path := filepath.Join(t.TempDir(), DataFileName)

	service := NewService(newMockManager(), path)
	service.Start(time.Hour)
	service.TrackSolveEvent(model.SolveEvent{Dictionary: "dutch"})
	service.Stop()

	reloaded := NewService(newMockManager(), path)
	assert.Len(t, reloaded.events, 1)
}
