package analytics

import (
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gcbaptista/go-boggle-engine/internal/persistence"
	"github.com/gcbaptista/go-boggle-engine/model"
	"github.com/gcbaptista/go-boggle-engine/services"
)

const (
	// DataFileName is the analytics file inside the data directory.
	DataFileName    = "analytics.gob"
	maxEventsToKeep = 10000 // Keep last 10k events
	popularWordsTop = 5
)

// Service records solve events and turns them into dashboard figures.
// Events are kept in memory and flushed to a gob file when a path is configured.
type Service struct {
	mutex        sync.RWMutex
	events       []model.SolveEvent
	dirty        bool
	manager      services.DictionaryManager
	dataFilePath string

	saveMu sync.Mutex
	stop   chan struct{}
	done   chan struct{}
}

// NewService creates an analytics service. An empty dataFilePath disables persistence.
func NewService(manager services.DictionaryManager, dataFilePath string) *Service {
	service := &Service{
		events:       make([]model.SolveEvent, 0),
		manager:      manager,
		dataFilePath: dataFilePath,
	}

	if err := service.loadData(); err != nil {
		log.Printf("Warning: Failed to load analytics data: %v", err)
	}
	return service
}

// Start flushes events to disk every interval until Stop is called.
func (s *Service) Start(interval time.Duration) {
	if s.dataFilePath == "" || s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.Flush(); err != nil {
					log.Printf("Warning: Failed to save analytics data: %v", err)
				}
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop ends the flush loop and writes any pending events.
func (s *Service) Stop() {
	if s.stop != nil {
		close(s.stop)
		<-s.done
		s.stop = nil
	}
	if err := s.Flush(); err != nil {
		log.Printf("Warning: Failed to save analytics data: %v", err)
	}
}

// TrackSolveEvent records a new solve event
func (s *Service) TrackSolveEvent(event model.SolveEvent) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	s.events = append(s.events, event)

	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}
	s.dirty = true
}

// EventFromResult builds the analytics event for a finished solve.
func EventFromResult(result model.SolveResult, responseTime time.Duration) model.SolveEvent {
	event := model.SolveEvent{
		Dictionary:   result.Dictionary,
		Board:        strings.Join(result.Board, "/"),
		WordCount:    len(result.Words),
		TotalScore:   result.TotalScore,
		ResponseTime: responseTime,
	}
	if len(result.Words) > 0 {
		event.TopWord = result.Words[0].Text
	}
	return event
}

// GetDashboardData returns complete analytics dashboard data
func (s *Service) GetDashboardData() model.AnalyticsDashboard {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	yesterday := time.Now().Add(-24 * time.Hour)
	names := s.manager.ListDictionaries()

	dashboard := model.AnalyticsDashboard{
		TotalSolves:              len(s.events),
		ActiveDictionaries:       len(names),
		PopularWords:             s.popularWords(),
		DictionaryUsage:          s.dictionaryUsage(names),
		ResponseTimeDistribution: s.responseTimeDistribution(),
	}

	if len(s.events) == 0 {
		return dashboard
	}

	var totalTime time.Duration
	totalWords, totalScore := 0, 0
	for _, event := range s.events {
		if event.Timestamp.After(yesterday) {
			dashboard.SolvesLast24h++
		}
		totalTime += event.ResponseTime
		totalWords += event.WordCount
		totalScore += event.TotalScore
	}
	n := len(s.events)
	dashboard.AvgResponseTimeMicro = (totalTime / time.Duration(n)).Microseconds()
	dashboard.AvgWordsPerSolve = float64(totalWords) / float64(n)
	dashboard.AvgScorePerSolve = float64(totalScore) / float64(n)
	return dashboard
}

// popularWords returns the words that most often topped a result list.
func (s *Service) popularWords() []model.PopularWord {
	counts := make(map[string]int)
	for _, event := range s.events {
		if event.TopWord != "" {
			counts[event.TopWord]++
		}
	}

	popular := make([]model.PopularWord, 0, len(counts))
	for word, count := range counts {
		popular = append(popular, model.PopularWord{Word: word, Count: count})
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].Count != popular[j].Count {
			return popular[i].Count > popular[j].Count
		}
		return popular[i].Word < popular[j].Word
	})

	if len(popular) > popularWordsTop {
		popular = popular[:popularWordsTop]
	}
	return popular
}

// dictionaryUsage returns solve counts for every existing dictionary.
func (s *Service) dictionaryUsage(names []string) []model.DictionaryStats {
	solveCounts := make(map[string]int)
	for _, event := range s.events {
		solveCounts[event.Dictionary]++
	}

	usage := make([]model.DictionaryStats, 0, len(names))
	for _, name := range names {
		stats := model.DictionaryStats{Name: name, SolveCount: solveCounts[name]}
		if dict, err := s.manager.GetDictionary(name); err == nil {
			stats.WordCount = dict.Info().WordCount
		}
		usage = append(usage, stats)
	}
	return usage
}

func (s *Service) responseTimeDistribution() model.ResponseTimeDistribution {
	dist := model.ResponseTimeDistribution{}
	for _, event := range s.events {
		switch {
		case event.ResponseTime < time.Millisecond:
			dist.BucketUnder1ms++
		case event.ResponseTime < 5*time.Millisecond:
			dist.Bucket1To5ms++
		case event.ResponseTime < 25*time.Millisecond:
			dist.Bucket5To25ms++
		default:
			dist.Bucket25msPlus++
		}
	}
	return dist
}

// Flush writes the events to disk if anything changed since the last write.
func (s *Service) Flush() error {
	if s.dataFilePath == "" {
		return nil
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mutex.Lock()
	if !s.dirty {
		s.mutex.Unlock()
		return nil
	}
	snapshot := make([]model.SolveEvent, len(s.events))
	copy(snapshot, s.events)
	s.dirty = false
	s.mutex.Unlock()

	if err := persistence.SaveGob(s.dataFilePath, snapshot); err != nil {
		s.mutex.Lock()
		s.dirty = true
		s.mutex.Unlock()
		return err
	}
	return nil
}

func (s *Service) loadData() error {
	if s.dataFilePath == "" {
		return nil
	}

	var events []model.SolveEvent
	if err := persistence.LoadGob(s.dataFilePath, &events); err != nil {
		if err == os.ErrNotExist {
			return nil // first start
		}
		return err
	}

	if len(events) > maxEventsToKeep {
		events = events[len(events)-maxEventsToKeep:]
	}
	s.events = events
	log.Printf("Loaded %d analytics events from %s", len(events), s.dataFilePath)
	return nil
}
