package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/go-boggle-engine/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrorCodeDictionaryNotFound ErrorCode = "DICTIONARY_NOT_FOUND"
	ErrorCodeJobNotFound        ErrorCode = "JOB_NOT_FOUND"
	ErrorCodeDictionaryExists   ErrorCode = "DICTIONARY_ALREADY_EXISTS"
	ErrorCodeInvalidJSON        ErrorCode = "INVALID_JSON"
	ErrorCodeInvalidBoard       ErrorCode = "INVALID_BOARD"
	ErrorCodeSameName           ErrorCode = "SAME_NAME_PROVIDED"

	// Server Error Codes (5xx)
	ErrorCodeInternalError      ErrorCode = "INTERNAL_ERROR"
	ErrorCodeSolveFailed        ErrorCode = "SOLVE_FAILED"
	ErrorCodeJobExecutionFailed ErrorCode = "JOB_EXECUTION_FAILED"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	RequestID string        `json:"request_id,omitempty"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	errorResponse := APIErrorResponse(code, message, details...)

	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			errorResponse.RequestID = id
		}
	}

	c.JSON(statusCode, errorResponse)
}

// SendValidationError sends a validation error with one detail per problem
func SendValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}

	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendInvalidBoardError reports a board that is not four rows of four letters.
func SendInvalidBoardError(c *gin.Context, err error) {
	detail := ErrorDetail{Field: "board", Message: err.Error(), Code: "VALIDATION_ERROR"}
	var vErr *internalErrors.ValidationError
	if errors.As(err, &vErr) {
		detail.Message = vErr.Message
	}
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidBoard, "Board must be 4 rows of 4 letters A-Z", detail)
}

// SendDictionaryNotFoundError sends a standardized dictionary not found error
func SendDictionaryNotFoundError(c *gin.Context, name string) {
	SendError(c, http.StatusNotFound, ErrorCodeDictionaryNotFound,
		"Dictionary '"+name+"' not found")
}

// SendJobNotFoundError sends a standardized job not found error
func SendJobNotFoundError(c *gin.Context, jobID string) {
	SendError(c, http.StatusNotFound, ErrorCodeJobNotFound,
		"Job '"+jobID+"' not found")
}

// SendDictionaryExistsError sends a standardized dictionary already exists error
func SendDictionaryExistsError(c *gin.Context, name string) {
	SendError(c, http.StatusConflict, ErrorCodeDictionaryExists,
		"Dictionary '"+name+"' already exists")
}

// SendSameNameError sends a standardized same name error
func SendSameNameError(c *gin.Context, name string) {
	SendError(c, http.StatusBadRequest, ErrorCodeSameName,
		"New name '"+name+"' is the same as the current name")
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}

// SendSolveError sends a standardized solve error
func SendSolveError(c *gin.Context, name string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeSolveFailed,
		"Solve failed on dictionary '"+name+"': "+err.Error())
}

// SendJobExecutionError sends a standardized job execution error
func SendJobExecutionError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeJobExecutionFailed,
		"Failed to start "+operation+" job: "+err.Error())
}

// SendEngineError maps an engine error to its response. name is the dictionary the
// request addressed.
func SendEngineError(c *gin.Context, err error, name, operation string) {
	var vErr *internalErrors.ValidationError
	switch {
	case errors.Is(err, internalErrors.ErrDictionaryNotFound):
		var nf *internalErrors.DictionaryNotFoundError
		if errors.As(err, &nf) {
			name = nf.Name
		}
		SendDictionaryNotFoundError(c, name)
	case errors.Is(err, internalErrors.ErrDictionaryAlreadyExists):
		var ae *internalErrors.DictionaryAlreadyExistsError
		if errors.As(err, &ae) {
			name = ae.Name
		}
		SendDictionaryExistsError(c, name)
	case errors.Is(err, internalErrors.ErrSameName):
		SendSameNameError(c, name)
	case errors.Is(err, internalErrors.ErrJobNotFound):
		var jnf *internalErrors.JobNotFoundError
		jobID := ""
		if errors.As(err, &jnf) {
			jobID = jnf.JobID
		}
		SendJobNotFoundError(c, jobID)
	case errors.As(err, &vErr):
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed",
			ErrorDetail{Field: vErr.Field, Message: vErr.Message, Code: "VALIDATION_ERROR"})
	default:
		SendInternalError(c, operation, err)
	}
}
