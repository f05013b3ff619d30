package jobs

import (
	"sort"
	"sync"
	"time"

	"github.com/gcbaptista/go-boggle-engine/model"
)

// Snapshot is a copy of the job counters, safe to serialize.
type Snapshot struct {
	JobsCreated          int64                     `json:"jobs_created"`
	JobsCompleted        int64                     `json:"jobs_completed"`
	JobsFailed           int64                     `json:"jobs_failed"`
	JobsCancelled        int64                     `json:"jobs_cancelled"`
	AverageExecutionTime time.Duration             `json:"average_execution_time_ns"`
	SuccessRate          float64                   `json:"success_rate"`
	CurrentWorkload      int64                     `json:"current_workload"`
	JobsByType           map[model.JobType]int64   `json:"jobs_by_type"`
	JobsByStatus         map[model.JobStatus]int64 `json:"jobs_by_status"`
	LastUpdated          time.Time                 `json:"last_updated"`
}

// Stats aggregates job counters for the metrics endpoint.
type Stats struct {
	mu            sync.Mutex
	created       int64
	completed     int64
	failed        int64
	cancelled     int64
	totalExecTime time.Duration
	byType        map[model.JobType]int64
	byStatus      map[model.JobStatus]int64
	lastUpdated   time.Time
}

// NewStats creates empty counters.
func NewStats() *Stats {
	return &Stats{
		byType:      make(map[model.JobType]int64),
		byStatus:    make(map[model.JobStatus]int64),
		lastUpdated: time.Now(),
	}
}

func (s *Stats) recordCreated(jobType model.JobType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.created++
	s.byType[jobType]++
	s.byStatus[model.JobStatusPending]++
	s.lastUpdated = time.Now()
}

func (s *Stats) recordTransition(from, to model.JobStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if from != "" && s.byStatus[from] > 0 {
		s.byStatus[from]--
	}
	s.byStatus[to]++
	s.lastUpdated = time.Now()
}

func (s *Stats) recordFinished(_ model.JobType, status model.JobStatus, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch status {
	case model.JobStatusCompleted:
		s.completed++
		s.totalExecTime += elapsed
	case model.JobStatusFailed:
		s.failed++
	case model.JobStatusCancelled:
		s.cancelled++
	}
	s.lastUpdated = time.Now()
}

// Snapshot copies the counters.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		JobsCreated:     s.created,
		JobsCompleted:   s.completed,
		JobsFailed:      s.failed,
		JobsCancelled:   s.cancelled,
		SuccessRate:     1.0,
		CurrentWorkload: s.byStatus[model.JobStatusPending] + s.byStatus[model.JobStatusRunning],
		JobsByType:      make(map[model.JobType]int64, len(s.byType)),
		JobsByStatus:    make(map[model.JobStatus]int64, len(s.byStatus)),
		LastUpdated:     s.lastUpdated,
	}
	if s.completed > 0 {
		snap.AverageExecutionTime = s.totalExecTime / time.Duration(s.completed)
	}
	if finished := s.completed + s.failed; finished > 0 {
		snap.SuccessRate = float64(s.completed) / float64(finished)
	}
	for k, v := range s.byType {
		snap.JobsByType[k] = v
	}
	for k, v := range s.byStatus {
		snap.JobsByStatus[k] = v
	}
	return snap
}

func sortByCreation(jobs []*model.Job) {
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.Before(jobs[j].CreatedAt)
	})
}
