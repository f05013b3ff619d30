package engine

import (
	"log"
	"sort"
	"sync"

	"github.com/gcbaptista/go-boggle-engine/config"
	"github.com/gcbaptista/go-boggle-engine/internal/errors"
	"github.com/gcbaptista/go-boggle-engine/internal/jobs"
	"github.com/gcbaptista/go-boggle-engine/internal/telemetry"
	"github.com/gcbaptista/go-boggle-engine/model"
	"github.com/gcbaptista/go-boggle-engine/services"
)

const defaultJobWorkers = 2

// Engine manages named dictionaries and the jobs that fill them.
// It implements services.AsyncDictionaryManager and services.JobManager.
type Engine struct {
	mu           sync.RWMutex
	dictionaries map[string]*DictionaryInstance
	jobManager   *jobs.Manager
}

// NewEngine creates an engine with no dictionaries and a started job manager.
func NewEngine() *Engine {
	jm := jobs.NewManager(defaultJobWorkers)
	jm.Start()
	return &Engine{
		dictionaries: make(map[string]*DictionaryInstance),
		jobManager:   jm,
	}
}

// Stop shuts down the job manager, cancelling running jobs.
func (e *Engine) Stop() {
	e.jobManager.Stop()
}

// CreateDictionary registers an empty dictionary.
func (e *Engine) CreateDictionary(settings config.SolverSettings) error {
	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		return errors.NewValidationError("settings", problems[0])
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.dictionaries[settings.Name]; exists {
		return errors.NewDictionaryAlreadyExistsError(settings.Name)
	}

	instance := NewDictionaryInstance(settings)
	e.dictionaries[settings.Name] = instance
	instance.publishGauges()
	log.Printf("Dictionary '%s' created (%s).", settings.Name, telemetry.Representation(settings.Compressed))
	return nil
}

// GetDictionary returns the named dictionary.
func (e *Engine) GetDictionary(name string) (services.DictionaryAccessor, error) {
	instance, err := e.instance(name)
	if err != nil {
		return nil, err
	}
	return instance, nil
}

func (e *Engine) instance(name string) (*DictionaryInstance, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.dictionaries[name]
	if !exists {
		return nil, errors.NewDictionaryNotFoundError(name)
	}
	return instance, nil
}

// GetSettings returns a copy of the dictionary's settings.
func (e *Engine) GetSettings(name string) (config.SolverSettings, error) {
	instance, err := e.instance(name)
	if err != nil {
		return config.SolverSettings{}, err
	}
	return instance.Settings(), nil
}

// RenameDictionary moves a dictionary to a new name.
func (e *Engine) RenameDictionary(oldName, newName string) error {
	if oldName == newName {
		return errors.NewSameNameError(oldName)
	}
	candidate := config.SolverSettings{Name: newName}
	candidate.ApplyDefaults()
	if problems := candidate.Validate(); len(problems) > 0 {
		return errors.NewValidationError("new_name", problems[0])
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	instance, exists := e.dictionaries[oldName]
	if !exists {
		return errors.NewDictionaryNotFoundError(oldName)
	}
	if _, exists := e.dictionaries[newName]; exists {
		return errors.NewDictionaryAlreadyExistsError(newName)
	}

	instance.rename(newName)
	e.dictionaries[newName] = instance
	delete(e.dictionaries, oldName)
	telemetry.DictionaryWords.DeleteLabelValues(oldName)
	telemetry.DictionaryNodes.DeletePartialMatch(map[string]string{"dictionary": oldName})
	instance.publishGauges()

	log.Printf("Dictionary '%s' renamed to '%s'.", oldName, newName)
	return nil
}

// DeleteDictionary removes a dictionary. Solves already running on it complete normally.
func (e *Engine) DeleteDictionary(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.dictionaries[name]; !exists {
		return errors.NewDictionaryNotFoundError(name)
	}
	delete(e.dictionaries, name)
	telemetry.DictionaryWords.DeleteLabelValues(name)
	telemetry.DictionaryNodes.DeletePartialMatch(map[string]string{"dictionary": name})

	log.Printf("Dictionary '%s' deleted.", name)
	return nil
}

// ListDictionaries returns the dictionary names in sorted order.
func (e *Engine) ListDictionaries() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.dictionaries))
	for name := range e.dictionaries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddWords normalizes and indexes words synchronously.
func (e *Engine) AddWords(name string, words []string) (services.AddWordsResult, error) {
	instance, err := e.instance(name)
	if err != nil {
		return services.AddWordsResult{}, err
	}
	result := instance.AddWords(words)
	log.Printf("Added %d words to dictionary '%s' (%d duplicates, %d rejected).", result.Added, name, result.Duplicates, result.Rejected)
	return result, nil
}

// GetJob returns a job by ID.
func (e *Engine) GetJob(jobID string) (*model.Job, error) {
	return e.jobManager.Get(jobID)
}

// ListJobs returns the jobs of a dictionary, optionally filtered by status.
func (e *Engine) ListJobs(dictionaryName string, status *model.JobStatus) []*model.Job {
	return e.jobManager.List(dictionaryName, status)
}

// JobMetrics returns the job counters.
func (e *Engine) JobMetrics() jobs.Snapshot {
	return e.jobManager.Metrics()
}
