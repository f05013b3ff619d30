package jobs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-boggle-engine/internal/errors"
	"github.com/gcbaptista/go-boggle-engine/internal/telemetry"
	"github.com/gcbaptista/go-boggle-engine/model"
)

// ProgressFunc lets a running job publish how far along it is.
type ProgressFunc func(current, total int, message string)

// Func is the body of a background job.
type Func func(ctx context.Context, progress ProgressFunc) error

// Manager runs dictionary jobs on a bounded pool of workers and keeps their state
// for polling.
type Manager struct {
	mu      sync.RWMutex
	jobs    map[string]*model.Job
	workers chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	stats   *Stats
}

// NewManager creates a manager allowing maxWorkers concurrent jobs.
func NewManager(maxWorkers int) *Manager {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		jobs:    make(map[string]*model.Job),
		workers: make(chan struct{}, maxWorkers),
		ctx:     ctx,
		cancel:  cancel,
		stats:   NewStats(),
	}
}

// Start launches the periodic cleanup of finished jobs.
func (m *Manager) Start() {
	log.Printf("Job manager started with %d max workers", cap(m.workers))
	m.wg.Add(1)
	go m.cleanupRoutine()
}

// Stop cancels running jobs and waits for every worker to return.
func (m *Manager) Stop() {
	m.mu.Lock()
	for _, job := range m.jobs {
		if job.Status == model.JobStatusRunning {
			job.Status = model.JobStatusCancelling
			m.stats.recordTransition(model.JobStatusRunning, model.JobStatusCancelling)
		}
	}
	m.mu.Unlock()

	m.cancel()
	m.wg.Wait()
	log.Printf("Job manager stopped")
}

// Submit registers a pending job and schedules fn on the worker pool.
// The job ID is returned immediately.
func (m *Manager) Submit(jobType model.JobType, dictionary string, metadata map[string]string, fn Func) (string, error) {
	if m.ctx.Err() != nil {
		return "", fmt.Errorf("job manager is shutting down")
	}

	job := &model.Job{
		ID:             uuid.New().String(),
		Type:           jobType,
		Status:         model.JobStatusPending,
		DictionaryName: dictionary,
		CreatedAt:      time.Now(),
		Metadata:       metadata,
	}

	m.mu.Lock()
	m.jobs[job.ID] = job
	m.mu.Unlock()

	m.stats.recordCreated(jobType)
	log.Printf("Created job %s (type: %s) for dictionary '%s'", job.ID, job.Type, dictionary)

	m.wg.Add(1)
	go m.run(job.ID, jobType, fn)
	return job.ID, nil
}

func (m *Manager) run(jobID string, jobType model.JobType, fn Func) {
	defer m.wg.Done()

	select {
	case m.workers <- struct{}{}:
	case <-m.ctx.Done():
		m.finish(jobID, jobType, model.JobStatusCancelled, "job manager shutting down", 0)
		return
	}
	defer func() { <-m.workers }()

	m.setRunning(jobID)
	start := time.Now()

	err := fn(m.ctx, func(current, total int, message string) {
		m.updateProgress(jobID, current, total, message)
	})

	elapsed := time.Since(start)
	switch {
	case err != nil && m.ctx.Err() != nil:
		m.finish(jobID, jobType, model.JobStatusCancelled, err.Error(), elapsed)
		log.Printf("Job %s cancelled after %v", jobID, elapsed)
	case err != nil:
		m.finish(jobID, jobType, model.JobStatusFailed, err.Error(), elapsed)
		log.Printf("Job %s failed after %v: %v", jobID, elapsed, err)
	default:
		m.finish(jobID, jobType, model.JobStatusCompleted, "", elapsed)
		log.Printf("Job %s completed successfully in %v", jobID, elapsed)
	}
}

func (m *Manager) setRunning(jobID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return
	}
	now := time.Now()
	job.Status = model.JobStatusRunning
	job.StartedAt = &now
	m.stats.recordTransition(model.JobStatusPending, model.JobStatusRunning)
}

func (m *Manager) finish(jobID string, jobType model.JobType, status model.JobStatus, errMsg string, elapsed time.Duration) {
	m.mu.Lock()
	job, ok := m.jobs[jobID]
	if ok {
		old := job.Status
		now := time.Now()
		job.Status = status
		job.Error = errMsg
		job.CompletedAt = &now
		m.stats.recordTransition(old, status)
	}
	m.mu.Unlock()

	m.stats.recordFinished(jobType, status, elapsed)
	telemetry.JobsTotal.WithLabelValues(string(jobType), string(status)).Inc()
}

func (m *Manager) updateProgress(jobID string, current, total int, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return
	}
	if job.Progress == nil {
		job.Progress = &model.JobProgress{}
	}
	job.Progress.Current = current
	job.Progress.Total = total
	job.Progress.Message = message
}

// Get returns a copy of the job.
func (m *Manager) Get(jobID string) (*model.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return nil, errors.NewJobNotFoundError(jobID)
	}
	return copyJob(job), nil
}

// List returns copies of the dictionary's jobs, oldest first. A nil status matches every job.
func (m *Manager) List(dictionary string, status *model.JobStatus) []*model.Job {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.Job, 0)
	for _, job := range m.jobs {
		if job.DictionaryName != dictionary {
			continue
		}
		if status != nil && job.Status != *status {
			continue
		}
		result = append(result, copyJob(job))
	}
	sortByCreation(result)
	return result
}

func copyJob(job *model.Job) *model.Job {
	c := *job
	if job.Progress != nil {
		p := *job.Progress
		c.Progress = &p
	}
	if job.Metadata != nil {
		c.Metadata = make(map[string]string, len(job.Metadata))
		for k, v := range job.Metadata {
			c.Metadata[k] = v
		}
	}
	return &c
}

func (m *Manager) cleanupRoutine() {
	defer m.wg.Done()

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.CleanupOlderThan(24 * time.Hour)
		case <-m.ctx.Done():
			return
		}
	}
}

// CleanupOlderThan forgets finished jobs that completed before now-maxAge.
func (m *Manager) CleanupOlderThan(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	cleaned := 0
	for id, job := range m.jobs {
		if job.CompletedAt != nil && job.CompletedAt.Before(cutoff) {
			delete(m.jobs, id)
			cleaned++
		}
	}
	if cleaned > 0 {
		log.Printf("Cleaned up %d old jobs", cleaned)
	}
	return cleaned
}

// Metrics returns a snapshot of the job counters.
func (m *Manager) Metrics() Snapshot {
	return m.stats.Snapshot()
}
