package ingestion

import (
	"context"
	"fmt"
	"go-storefront/internal/common/enum"
	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/antivirus"
	"go-storefront/internal/pkg/logger"
	"sync"
)

// fanOut runs task for 0..n-1 on the worker pool and waits for all of them.
func (s *Service) fanOut(n int, task func(i int)) {
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		job := func() {
			defer wg.Done()
			task(i)
		}
		if s.pool == nil {
			go job()
			continue
		}
		if err := s.pool.Submit(job); err != nil {
			logger.Warning.Printf("worker pool refused task, running inline: %v", err)
			job()
		}
	}
	wg.Wait()
}

// validateAll gives every file its terminal outcome. Files are judged
// independently so the caller gets the complete list of problems.
func (s *Service) validateAll(ctx context.Context, files []*types.UploadedFile) {
	s.fanOut(len(files), func(i int) {
		f := files[i]
		defer func() {
			if r := recover(); r != nil {
				logger.Error.Printf("validation of %s panicked: %v", f.OriginalName, r)
				_ = f.SetOutcome(types.Rejected(enum.FORMAT_NOT_DECODABLE, fmt.Sprintf("decoder panic: %v", r)))
			}
		}()

		outcome := s.validate(ctx, f)
		if err := f.SetOutcome(outcome); err != nil {
			logger.Warning.Println(err)
		}
	})
}

func (s *Service) validate(ctx context.Context, f *types.UploadedFile) types.ValidationOutcome {
	outcome := FilterType(*f)
	if outcome.IsRejected() {
		return outcome
	}

	outcome = s.validateContent(f)
	if outcome.IsRejected() {
		return outcome
	}

	return s.scan(ctx, f)
}

func (s *Service) scan(ctx context.Context, f *types.UploadedFile) types.ValidationOutcome {
	verdict, err := s.scanner.Scan(ctx, f.TemporaryPath)
	if err != nil {
		return types.Rejected(enum.SCAN_FAILED, err.Error())
	}
	if verdict != antivirus.Clean {
		return types.Rejected(enum.SCAN_INFECTED, fmt.Sprintf("scanner verdict %q", verdict))
	}
	return types.Accepted()
}
