// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrInvalidInput indicates the caller sent a malformed request.
	ErrInvalidInput = errors.New("invalid input")
)

// DatasetError represents a dataset load failure with its source path.
// Lookups against a failed dataset degrade to "no match"; the error is
// only surfaced in logs and the readiness probe, never to the resolvers.
type DatasetError struct {
	Path string
	Err  error
}

func (e *DatasetError) Error() string {
	return fmt.Sprintf("dataset error (path=%s): %v", e.Path, e.Err)
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}

// NewDatasetError creates a new dataset error.
func NewDatasetError(path string, err error) *DatasetError {
	return &DatasetError{
		Path: path,
		Err:  err,
	}
}
