package engine

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/gcbaptista/go-boggle-engine/internal/jobs"
	"github.com/gcbaptista/go-boggle-engine/model"
)

// addWordsBatch is how many words an async upload inserts per progress step.
const addWordsBatch = 5000

func (e *Engine) submit(jobType model.JobType, name string, metadata map[string]string, fn jobs.Func) (string, error) {
	jobID, err := e.jobManager.Submit(jobType, name, metadata, fn)
	if err != nil {
		return "", fmt.Errorf("failed to start %s job: %w", jobType, err)
	}
	return jobID, nil
}

// AddWordsAsync indexes words in a background job and returns its ID. The job inserts
// the words in batches and reports progress after each batch.
func (e *Engine) AddWordsAsync(name string, words []string) (string, error) {
	if _, err := e.instance(name); err != nil {
		return "", err
	}

	metadata := map[string]string{
		"operation":  "add_words",
		"word_count": strconv.Itoa(len(words)),
	}
	return e.submit(model.JobTypeAddWords, name, metadata, func(ctx context.Context, progress jobs.ProgressFunc) error {
		added := 0
		for startIdx := 0; startIdx < len(words); startIdx += addWordsBatch {
			if err := ctx.Err(); err != nil {
				return err
			}
			// The dictionary may have been deleted or renamed since submission.
			instance, err := e.instance(name)
			if err != nil {
				return err
			}
			endIdx := min(startIdx+addWordsBatch, len(words))
			added += instance.AddWords(words[startIdx:endIdx]).Added
			progress(endIdx, len(words), fmt.Sprintf("indexed %d of %d words", endIdx, len(words)))
		}
		log.Printf("Added %d words to dictionary '%s' (async).", added, name)
		return nil
	})
}
