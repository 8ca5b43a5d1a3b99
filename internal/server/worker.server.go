package serverApp

import (
	"fmt"
	"go-storefront/internal/pkg/logger"
	"time"

	"github.com/panjf2000/ants/v2"
)

// NewWorkerPool builds the pool per-file pipeline tasks run on. Submit
// blocks when every worker is busy so a large batch queues instead of
// failing.
func NewWorkerPool(size int) (*ants.Pool, error) {
	poolOpts := ants.Options{
		ExpiryDuration: time.Minute,
		PreAlloc:       false,
		Nonblocking:    false,
		PanicHandler: func(i interface{}) {
			logger.Error.Printf("Worker panic: %v\n", i)
		},
	}

	pool, err := ants.NewPool(size, ants.WithOptions(poolOpts))
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	return pool, nil
}
