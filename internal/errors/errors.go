package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrDictionaryNotFound is returned when a dictionary is not found
	ErrDictionaryNotFound = errors.New("dictionary not found")

	// ErrDictionaryAlreadyExists is returned when trying to create a dictionary that already exists
	ErrDictionaryAlreadyExists = errors.New("dictionary already exists")

	// ErrJobNotFound is returned when a job is not found
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidInput is returned when input validation fails (malformed board, bad settings)
	ErrInvalidInput = errors.New("invalid input")

	// ErrSameName is returned when trying to rename to the same name
	ErrSameName = errors.New("same name provided")
)

// DictionaryNotFoundError represents a dictionary not found error with context
type DictionaryNotFoundError struct {
	Name string
}

func (e *DictionaryNotFoundError) Error() string {
	return fmt.Sprintf("dictionary named '%s' not found", e.Name)
}

func (e *DictionaryNotFoundError) Is(target error) bool {
	return target == ErrDictionaryNotFound
}

// NewDictionaryNotFoundError creates a new DictionaryNotFoundError
func NewDictionaryNotFoundError(name string) *DictionaryNotFoundError {
	return &DictionaryNotFoundError{Name: name}
}

// DictionaryAlreadyExistsError represents a dictionary already exists error with context
type DictionaryAlreadyExistsError struct {
	Name string
}

func (e *DictionaryAlreadyExistsError) Error() string {
	return fmt.Sprintf("dictionary named '%s' already exists", e.Name)
}

func (e *DictionaryAlreadyExistsError) Is(target error) bool {
	return target == ErrDictionaryAlreadyExists
}

// NewDictionaryAlreadyExistsError creates a new DictionaryAlreadyExistsError
func NewDictionaryAlreadyExistsError(name string) *DictionaryAlreadyExistsError {
	return &DictionaryAlreadyExistsError{Name: name}
}

// JobNotFoundError represents a job not found error with context
type JobNotFoundError struct {
	JobID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job with ID '%s' not found", e.JobID)
}

func (e *JobNotFoundError) Is(target error) bool {
	return target == ErrJobNotFound
}

// NewJobNotFoundError creates a new JobNotFoundError
func NewJobNotFoundError(jobID string) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// SameNameError represents an error when trying to rename to the same name
type SameNameError struct {
	Name string
}

func (e *SameNameError) Error() string {
	return fmt.Sprintf("new name '%s' is the same as the current name", e.Name)
}

func (e *SameNameError) Is(target error) bool {
	return target == ErrSameName
}

// NewSameNameError creates a new SameNameError
func NewSameNameError(name string) *SameNameError {
	return &SameNameError{Name: name}
}
