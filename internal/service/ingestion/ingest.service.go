package ingestion

import (
	"context"
	"errors"
	"go-storefront/internal/common/enum"
	"go-storefront/internal/common/models"
	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/helper"
	"go-storefront/internal/pkg/logger"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const sideEffectTimeout = 5 * time.Second

// Ingest runs one batch through the pipeline: intake, per-file validation,
// the cleanup barrier, transformation and finalisation. Every exit path
// leaves no temp file of the batch behind.
func (s *Service) Ingest(ctx context.Context, mr *multipart.Reader, meta RequestMeta) *types.Response {
	batchID := uuid.NewString()

	start := time.Now()
	files, err := s.Intake(ctx, mr)
	s.metrics.ObserveStage("intake", start)
	if err != nil {
		s.metrics.IncBatch(enum.BATCH_FAILED.ToString())
		return intakeResponse(err)
	}

	start = time.Now()
	s.validateAll(ctx, files)
	s.metrics.ObserveStage("validate", start)
	s.countOutcomes(files)

	if rejection := s.Reconcile(files); rejection != nil {
		s.metrics.IncBatch(enum.BATCH_REJECTED.ToString())
		s.audit(ctx, batchID, meta, enum.BATCH_REJECTED, files, nil, rejection.Files, rejection)
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "One or more files failed validation",
			Errors:  rejection.Errors,
			Data:    rejection.Files,
		})
	}

	start = time.Now()
	assets, err := s.transformAll(ctx, files)
	s.metrics.ObserveStage("transform", start)
	if err != nil {
		s.metrics.IncBatch(enum.BATCH_FAILED.ToString())
		s.audit(ctx, batchID, meta, enum.BATCH_FAILED, files, nil, nil, err)
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process images",
			Error:   err,
		})
	}

	results := Finalize(assets)
	s.metrics.IncBatch(enum.BATCH_ACCEPTED.ToString())
	s.announce(ctx, batchID, meta, results)
	s.audit(ctx, batchID, meta, enum.BATCH_ACCEPTED, files, results, nil, nil)

	return helper.ParseResponse(&types.Response{
		Code: http.StatusCreated,
		Data: results,
		Raw:  true,
	})
}

func intakeResponse(err error) *types.Response {
	switch {
	case errors.Is(err, ErrNoFiles):
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "No files uploaded",
			Errors:  []string{"at least one file is required in field " + ImageField},
		})
	case errors.Is(err, ErrTooManyFiles), errors.Is(err, ErrFileTooLarge):
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Upload limits exceeded",
			Errors:  []string{err.Error()},
		})
	}
	return helper.ParseResponse(&types.Response{
		Code:    http.StatusInternalServerError,
		Message: "Failed to store uploaded files",
		Error:   err,
	})
}

// transformAll renders every accepted file on the pool. The first failure
// cancels the tasks not yet started and purges the temp files that remain.
// Derivatives already written are kept.
func (s *Service) transformAll(ctx context.Context, files []*types.UploadedFile) ([]types.TransformedAsset, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
		assets   = make([]types.TransformedAsset, len(files))
	)

	s.fanOut(len(files), func(i int) {
		if ctx.Err() != nil {
			return
		}
		defer func() {
			if r := recover(); r != nil {
				logger.Error.Printf("transform of %s panicked: %v", files[i].OriginalName, r)
				once.Do(func() {
					firstErr = &TransformError{Kind: EncodeFailure, File: files[i].OriginalName, Err: errors.New("renderer panic")}
					cancel()
				})
			}
		}()

		asset, err := s.transformer.Transform(ctx, files[i])
		if err != nil {
			once.Do(func() {
				firstErr = err
				cancel()
			})
			return
		}
		assets[i] = asset
	})

	if firstErr == nil {
		if err := ctx.Err(); err != nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		s.purge(files)
		return nil, firstErr
	}
	return assets, nil
}

func (s *Service) countOutcomes(files []*types.UploadedFile) {
	for _, f := range files {
		if f.Outcome.IsAccepted() {
			s.metrics.IncFile("accepted")
			continue
		}
		s.metrics.IncFile("rejected")
		s.metrics.IncRejection(f.Outcome.Reason.ToString())
	}
}

func (s *Service) announce(ctx context.Context, batchID string, meta RequestMeta, results []types.UploadResult) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()

	err := s.catalog.PublishIngested(ctx, IngestedEvent{
		BatchID:    batchID,
		UploadedBy: meta.UploadedBy,
		Assets:     results,
	})
	if err != nil {
		logger.Warning.Printf("failed to publish %s for batch %s: %v", IngestedEventPattern, batchID, err)
	}
}

func (s *Service) audit(
	ctx context.Context,
	batchID string,
	meta RequestMeta,
	status enum.BatchStatusEnum,
	files []*types.UploadedFile,
	results []types.UploadResult,
	reports []types.FileReport,
	cause error,
) {
	if s.rp.Ingestion == nil {
		return
	}

	record := &models.AssetIngestion{
		ID:         batchID,
		RequestID:  meta.RequestID,
		UploadedBy: meta.UploadedBy,
		Status:     status.ToString(),
		FileCount:  len(files),
	}
	for _, f := range files {
		if f.Outcome.IsAccepted() {
			record.AcceptedCount++
		}
	}
	if cause != nil {
		record.Error = cause.Error()
	}

	var err error
	if record.Results, err = models.NewJSONB(results); err != nil {
		logger.Warning.Printf("failed to encode results of batch %s: %v", batchID, err)
	}
	if record.Reports, err = models.NewJSONB(reports); err != nil {
		logger.Warning.Printf("failed to encode reports of batch %s: %v", batchID, err)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()
	if err := s.rp.Ingestion.Create(ctx, record); err != nil {
		logger.Warning.Printf("failed to record batch %s: %v", batchID, err)
	}
}
