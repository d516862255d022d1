package errors

import (
	"errors"
	"fmt"
)

// Error codes for the pipeline failure taxonomy.
const (
	CodeLoadFailed    = "LOAD_FAILED"
	CodeSaveFailed    = "SAVE_FAILED"
	CodeColumnSkipped = "COLUMN_SKIPPED"
)

// PipelineError is a coded error produced by the cleaning pipeline. The code
// lets callers branch on the failure class without string matching.
type PipelineError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// New creates a PipelineError with the given code and message.
func New(code, message string) *PipelineError {
	return &PipelineError{Code: code, Message: message}
}

// NewLoadError wraps a failure to load the input file. Fatal to the run.
func NewLoadError(path string, err error) *PipelineError {
	return &PipelineError{
		Code:    CodeLoadFailed,
		Message: fmt.Sprintf("failed to load %s", path),
		Err:     err,
	}
}

// NewSaveError wraps a failure to persist the cleaned table. The run still
// yields its in-memory result.
func NewSaveError(path string, err error) *PipelineError {
	return &PipelineError{
		Code:    CodeSaveFailed,
		Message: fmt.Sprintf("failed to save %s", path),
		Err:     err,
	}
}

// NewColumnSkipped wraps a per-column conversion failure. Recoverable; the
// column is left unmodified and the pipeline continues.
func NewColumnSkipped(column string, err error) *PipelineError {
	return &PipelineError{
		Code:    CodeColumnSkipped,
		Message: fmt.Sprintf("skipped column %s", column),
		Err:     err,
	}
}

// IsCode reports whether err is (or wraps) a PipelineError with the given
// code.
func IsCode(err error, code string) bool {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}
