package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ai_tool_directory/config"
	"ai_tool_directory/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecomputer struct {
	mu          sync.Mutex
	calls       int
	concurrency int
}

func (f *fakeRecomputer) GenerateRecommendationsForAllUsers(_ context.Context, concurrency int) (services.BatchSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.concurrency = concurrency
	return services.BatchSummary{Processed: 1, Completed: 1}, nil
}

type fakeReloader struct {
	calls int
	err   error
}

func (f *fakeReloader) Reload() error {
	f.calls++
	return f.err
}

func TestGetNextTimePoint(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC), getNextTimePoint(now, 11, 0))
	assert.Equal(t, time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC), getNextTimePoint(now, 3, 0))
	assert.Equal(t, now, getNextTimePoint(now, 10, 30))
}

func TestValidateHourMinute(t *testing.T) {
	h, m := validateHourMinute(25, -1)
	assert.Equal(t, 0, h)
	assert.Equal(t, 0, m)

	h, m = validateHourMinute(3, 15)
	assert.Equal(t, 3, h)
	assert.Equal(t, 15, m)
}

func TestCheckTask_RunsOnceAndReschedules(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cron.RecomputeHour = 3
	cfg.Cron.Concurrency = 4
	recomputer := &fakeRecomputer{}
	reloader := &fakeReloader{err: errors.New("bad yaml")}

	s := NewScheduler(cfg, recomputer, reloader)
	start := time.Date(2025, 6, 1, 1, 0, 0, 0, time.UTC)
	s.initTask(start)
	assert.Equal(t, time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC), s.Status().NextRun)

	ctx := context.Background()
	assert.False(t, s.checkTask(ctx, start.Add(time.Hour)), "not due yet")

	due := time.Date(2025, 6, 1, 3, 0, 30, 0, time.UTC)
	require.True(t, s.checkTask(ctx, due))
	s.Wait()

	assert.Equal(t, 1, recomputer.calls)
	assert.Equal(t, 4, recomputer.concurrency)
	assert.Equal(t, 1, reloader.calls, "reload failure does not block the recompute")

	status := s.Status()
	assert.False(t, status.IsRunning)
	assert.Equal(t, due, status.LastRun)
	assert.Equal(t, time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC), status.NextRun)

	assert.False(t, s.checkTask(ctx, due.Add(time.Minute)))
}

func TestStart_StopsWithContext(t *testing.T) {
	cfg := &config.Config{}
	cfg.Scheduler.CheckIntervalSec = 1
	s := NewScheduler(cfg, &fakeRecomputer{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()
	s.Wait()

	assert.False(t, s.Status().IsRunning)
	assert.Equal(t, 10, s.concurrency)
}
