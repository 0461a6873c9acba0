package service

import (
	"context"
	"sync"
	"time"
)

type clientReferenceJob struct {
	referenceService ReferenceService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientReferenceJob creates a clientReferenceJob that calls
// referenceService.Refresh on a ticker. The job is idle until Start is
// called.
func NewClientReferenceJob(referenceService ReferenceService) ReferenceJob {
	return &clientReferenceJob{referenceService: referenceService}
}

// Start implements ReferenceJob. It stops any previously running job, then
// launches a background goroutine that calls Refresh every interval. If
// interval is zero or negative it defaults to 30 minutes. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *clientReferenceJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.referenceService.Refresh(jobCtx)
			}
		}
	}()
}

// Stop implements ReferenceJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call
// when the job is not running (no-op in that case).
func (j *clientReferenceJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
