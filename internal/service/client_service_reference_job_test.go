package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logilink/logilink-client/models"
)

// countingReferenceService counts Refresh calls; the list methods are never
// exercised by the job.
type countingReferenceService struct {
	mu       sync.Mutex
	refreshs int
}

func (s *countingReferenceService) States(context.Context) ([]models.State, error) { return nil, nil }
func (s *countingReferenceService) Cities(context.Context) ([]models.City, error)  { return nil, nil }
func (s *countingReferenceService) CitiesOfState(context.Context, int64) ([]models.City, error) {
	return nil, nil
}

func (s *countingReferenceService) Refresh(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshs++
	return nil
}

func (s *countingReferenceService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshs
}

func TestClientReferenceJob_RefreshesOnTicker(t *testing.T) {
	svc := &countingReferenceService{}
	job := NewClientReferenceJob(svc)

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool { return svc.count() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestClientReferenceJob_StopTerminates(t *testing.T) {
	svc := &countingReferenceService{}
	job := NewClientReferenceJob(svc)

	job.Start(context.Background(), 5*time.Millisecond)
	require.Eventually(t, func() bool { return svc.count() >= 1 }, time.Second, time.Millisecond)

	job.Stop()
	after := svc.count()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, svc.count(), "no refreshes after Stop")
}

func TestClientReferenceJob_StopWithoutStartIsNoop(t *testing.T) {
	job := NewClientReferenceJob(&countingReferenceService{})
	job.Stop()
}

func TestClientReferenceJob_RestartReplacesJob(t *testing.T) {
	svc := &countingReferenceService{}
	job := NewClientReferenceJob(svc)

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool { return svc.count() >= 1 }, time.Second, time.Millisecond)
}

func TestClientReferenceJob_ContextCancelTerminates(t *testing.T) {
	svc := &countingReferenceService{}
	job := NewClientReferenceJob(svc)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 5*time.Millisecond)
	require.Eventually(t, func() bool { return svc.count() >= 1 }, time.Second, time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)
	after := svc.count()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, svc.count())
}
