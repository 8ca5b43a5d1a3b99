package ingestion

import (
	"errors"
	"fmt"
	types "go-storefront/internal/common/type"
)

var (
	ErrNoFiles            = errors.New("no files submitted")
	ErrTooManyFiles       = errors.New("too many files")
	ErrFileTooLarge       = errors.New("file too large")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// BatchRejection is returned by the Cleanup Coordinator when at least one
// file of the batch was rejected. Every temp file is gone by then.
type BatchRejection struct {
	// Errors holds one "<file>: <Reason>: <detail>" line per rejected file.
	Errors []string
	Files  []types.FileReport
}

func (e *BatchRejection) Error() string {
	return fmt.Sprintf("%d of %d files rejected", len(e.Errors), len(e.Files))
}

type TransformErrorKind string

const (
	DecodeFailure       TransformErrorKind = "DecodeFailure"
	EncodeFailure       TransformErrorKind = "EncodeFailure"
	StorageWriteFailure TransformErrorKind = "StorageWriteFailure"
)

// TransformError aborts the whole batch.
type TransformError struct {
	Kind TransformErrorKind
	File string
	Err  error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.File, e.Kind, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}
