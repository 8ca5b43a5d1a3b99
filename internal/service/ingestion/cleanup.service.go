package ingestion

import (
	"fmt"
	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/logger"

	"github.com/samber/lo"
)

// Reconcile is the batch barrier. It must only be called once every file has
// a terminal outcome. If any file was rejected, every temp file of the batch
// is purged and a BatchRejection describing each file is returned; otherwise
// the batch is left untouched and nil is returned.
func (s *Service) Reconcile(files []*types.UploadedFile) *BatchRejection {
	rejected := lo.Filter(files, func(f *types.UploadedFile, _ int) bool {
		return !f.Outcome.IsAccepted()
	})
	if len(rejected) == 0 {
		return nil
	}

	s.purge(files)

	return &BatchRejection{
		Errors: lo.Map(rejected, func(f *types.UploadedFile, _ int) string {
			return rejectionMessage(f)
		}),
		Files: lo.Map(files, func(f *types.UploadedFile, _ int) types.FileReport {
			if f.Outcome.IsAccepted() {
				return types.FileReport{Filename: f.OriginalName, Accepted: true}
			}
			return types.FileReport{Filename: f.OriginalName, Error: rejectionMessage(f)}
		}),
	}
}

func rejectionMessage(f *types.UploadedFile) string {
	if !f.Outcome.IsSet() {
		return fmt.Sprintf("%s: not validated", f.OriginalName)
	}
	return fmt.Sprintf("%s: %s: %s", f.OriginalName, f.Outcome.Reason, f.Outcome.Detail)
}

// purge deletes the temp files of files. Failures are logged and skipped.
func (s *Service) purge(files []*types.UploadedFile) {
	for _, f := range files {
		if f.TemporaryPath == "" {
			continue
		}
		if err := s.scratch.Delete(f.TemporaryPath); err != nil {
			logger.Warning.Printf("failed to delete temp file %s: %v", f.TemporaryPath, err)
		}
	}
}
