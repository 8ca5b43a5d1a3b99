package types

import (
	"errors"
	"fmt"
	"go-storefront/internal/common/enum"
)

var ErrOutcomeAlreadySet = errors.New("validation outcome already set")

// UploadedFile is one multipart part parked on scratch storage. The pipeline
// owns TemporaryPath until the file is purged or promoted.
type UploadedFile struct {
	FieldName         string
	OriginalName      string
	DeclaredMediaType string
	TemporaryPath     string
	SizeBytes         int64

	Outcome  ValidationOutcome
	Metadata *DecodedImageMetadata
}

// SetOutcome records the file's terminal outcome. An outcome is immutable
// once set.
func (f *UploadedFile) SetOutcome(o ValidationOutcome) error {
	if f.Outcome.IsSet() {
		return fmt.Errorf("%s: %w", f.OriginalName, ErrOutcomeAlreadySet)
	}
	f.Outcome = o
	return nil
}

type OutcomeStatus int

const (
	OutcomePending OutcomeStatus = iota
	OutcomeAccepted
	OutcomeRejected
)

type ValidationOutcome struct {
	Status OutcomeStatus
	Reason enum.RejectionReasonEnum
	Detail string
}

func Accepted() ValidationOutcome {
	return ValidationOutcome{Status: OutcomeAccepted}
}

func Rejected(reason enum.RejectionReasonEnum, detail string) ValidationOutcome {
	return ValidationOutcome{Status: OutcomeRejected, Reason: reason, Detail: detail}
}

func (o ValidationOutcome) IsSet() bool      { return o.Status != OutcomePending }
func (o ValidationOutcome) IsAccepted() bool { return o.Status == OutcomeAccepted }
func (o ValidationOutcome) IsRejected() bool { return o.Status == OutcomeRejected }

// DecodedImageMetadata holds facts read from the encoded bytes, never from
// what the client declared.
type DecodedImageMetadata struct {
	TrueFormat      enum.ImageFormatEnum
	WidthPx         int
	HeightPx        int
	HasAlphaChannel bool
}

// TransformedAsset is handed over to the catalog; the pipeline never deletes
// these paths.
type TransformedAsset struct {
	Filename      string
	PrimaryPath   string
	PrimaryFormat string
	ThumbnailPath string
	WidthPx       int
	HeightPx      int
}

// UploadResult is the per-file record returned to the caller.
type UploadResult struct {
	FinalPath     string `json:"finalPath"`
	Filename      string `json:"filename"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	ThumbnailPath string `json:"thumbnailPath"`
}

// FileReport describes one file of a rejected batch.
type FileReport struct {
	Filename string `json:"filename"`
	Accepted bool   `json:"accepted"`
	Error    string `json:"error,omitempty"`
}
