// Package errors defines the engine's error taxonomy. Per-document read
// failures are recoverable (the document is skipped, the batch continues);
// encode and decode failures abort their operation and carry the path and
// cause so callers can diagnose without inspecting internals.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three failure classes
var (
	// ErrReadFailure is returned when a document's text could not be produced
	ErrReadFailure = errors.New("document read failure")

	// ErrEncodeFailure is returned when a built index could not be written
	ErrEncodeFailure = errors.New("index encode failure")

	// ErrDecodeFailure is returned when persisted index data is malformed
	ErrDecodeFailure = errors.New("index decode failure")
)

// ReadError represents a failure to read or extract text for one document
type ReadError struct {
	DocumentID string
	Err        error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read document '%s': %v", e.DocumentID, e.Err)
}

func (e *ReadError) Is(target error) bool {
	return target == ErrReadFailure
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError
func NewReadError(documentID string, err error) *ReadError {
	return &ReadError{DocumentID: documentID, Err: err}
}

// EncodeError represents a failure to persist an index to storage
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("could not encode index to '%s': %v", e.Path, e.Err)
}

func (e *EncodeError) Is(target error) bool {
	return target == ErrEncodeFailure
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// NewEncodeError creates a new EncodeError
func NewEncodeError(path string, err error) *EncodeError {
	return &EncodeError{Path: path, Err: err}
}

// DecodeError represents malformed or unparsable persisted index data
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode index from '%s': %v", e.Path, e.Err)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecodeFailure
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new DecodeError
func NewDecodeError(path string, err error) *DecodeError {
	return &DecodeError{Path: path, Err: err}
}
