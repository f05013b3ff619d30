// Package api provides the HTTP surface of the solver and its request validation.
package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-boggle-engine/config"
	"github.com/gcbaptista/go-boggle-engine/internal/board"
	"github.com/gcbaptista/go-boggle-engine/model"
)

// maxWordsPerRequest bounds a single word upload; larger lists should be split.
const maxWordsPerRequest = 500000

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateSettings applies defaults and validates settings for creation
func ValidateSettings(settings *config.SolverSettings) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if settings == nil {
		result.AddError("settings", "Dictionary settings are required")
		return result
	}

	settings.ApplyDefaults()
	for _, problem := range settings.Validate() {
		result.AddError("settings", problem)
	}
	return result
}

// ValidateSettingsUpdate checks the fields present in a partial settings update
func ValidateSettingsUpdate(req *SettingsUpdateRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if req.MaxResults == nil && req.MinWordLength == nil && req.Compressed == nil && req.ParallelStarts == nil {
		result.AddError("settings", "At least one setting must be provided")
	}
	if req.MaxResults != nil && *req.MaxResults <= 0 {
		result.AddError("max_results", "max_results must be positive")
	}
	if req.MinWordLength != nil && *req.MinWordLength < config.DefaultMinWordLength {
		result.AddError("min_word_length", fmt.Sprintf("min_word_length cannot be below %d", config.DefaultMinWordLength))
	}
	return result
}

// ValidateRenameRequest validates a rename dictionary request
func ValidateRenameRequest(oldName, newName string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if newName == "" {
		result.AddError("new_name", "New name is required and cannot be empty")
		return result
	}
	if strings.TrimSpace(newName) != newName {
		result.AddError("new_name", "New name cannot have leading or trailing whitespace")
	}
	if oldName == newName {
		result.AddError("new_name", "New name must be different from current name")
	}
	return result
}

// ValidateWords validates a word upload
func ValidateWords(words []string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(words) == 0 {
		result.AddError("words", "No words provided")
	} else if len(words) > maxWordsPerRequest {
		result.AddError("words", fmt.Sprintf("At most %d words per request, got %d", maxWordsPerRequest, len(words)))
	}
	return result
}

// ValidateSubmission validates the word list of a score request. Paths are checked by
// the referee, which reports them per word instead of rejecting the request.
func ValidateSubmission(words []model.Word) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for i, w := range words {
		if strings.TrimSpace(w.Text) == "" {
			result.AddError(fmt.Sprintf("words[%d].word", i), "Word cannot be empty")
		}
		if len(w.Path) > board.Cells {
			result.AddError(fmt.Sprintf("words[%d].path", i), fmt.Sprintf("Path cannot be longer than %d cells", board.Cells))
		}
	}
	return result
}

// ValidateJobStatus parses an optional status filter
func ValidateJobStatus(raw string) (*model.JobStatus, *ValidationResult) {
	result := &ValidationResult{Valid: true}
	if raw == "" {
		return nil, result
	}

	status := model.JobStatus(raw)
	switch status {
	case model.JobStatusPending, model.JobStatusRunning, model.JobStatusCompleted,
		model.JobStatusFailed, model.JobStatusCancelling, model.JobStatusCancelled:
		return &status, result
	}
	result.AddError("status", fmt.Sprintf("Unknown job status '%s'", raw))
	return nil, result
}

// ValidateJSONBinding validates JSON binding and returns a standardized error
func ValidateJSONBinding(c *gin.Context, target any) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if err := c.ShouldBindJSON(target); err != nil {
		result.AddError("request_body", "Invalid request body: "+err.Error())
	}

	return result
}
