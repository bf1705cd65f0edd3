package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_ImmediateRun(t *testing.T) {
	var runs atomic.Int32
	s := New(Job{
		Name:      "fetch",
		Interval:  time.Hour,
		Immediate: true,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_RepeatsUntilStopped(t *testing.T) {
	var runs atomic.Int32
	s := New(Job{
		Name:     "countdown",
		Interval: 5 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	require.NoError(t, s.Start(context.Background()))
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)

	s.Stop()
	assert.False(t, s.Running())

	stopped := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load())
}

func TestScheduler_StartTwice(t *testing.T) {
	s := New()
	require.NoError(t, s.Start(context.Background()))
	assert.ErrorIs(t, s.Start(context.Background()), ErrAlreadyRunning)

	s.Stop()
	s.Stop()
	assert.NoError(t, s.Start(context.Background()))
	s.Stop()
}

func TestScheduler_NoOverlap(t *testing.T) {
	var inFlight, maxInFlight, runs atomic.Int32
	s := New(Job{
		Name:      "slow",
		Interval:  time.Millisecond,
		Immediate: true,
		Run: func(ctx context.Context) error {
			current := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				seen := maxInFlight.Load()
				if current <= seen || maxInFlight.CompareAndSwap(seen, current) {
					break
				}
			}
			runs.Add(1)
			time.Sleep(10 * time.Millisecond)
			return nil
		},
	})

	require.NoError(t, s.Start(context.Background()))
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)
	s.Stop()

	assert.Equal(t, int32(1), maxInFlight.Load())
	assert.Equal(t, int32(0), inFlight.Load())
}

func TestScheduler_FailuresDoNotStopJobs(t *testing.T) {
	var runs atomic.Int32
	s := New(
		Job{
			Name:     "panics",
			Interval: 2 * time.Millisecond,
			Run: func(ctx context.Context) error {
				runs.Add(1)
				panic("boom")
			},
		},
		Job{
			Name:     "errors",
			Interval: 2 * time.Millisecond,
			Run: func(ctx context.Context) error {
				runs.Add(1)
				return errors.New("backend down")
			},
		},
	)

	require.NoError(t, s.Start(context.Background()))
	assert.Eventually(t, func() bool { return runs.Load() >= 6 }, time.Second, time.Millisecond)
	s.Stop()
}

func TestScheduler_StopWaitsForRunningJob(t *testing.T) {
	started := make(chan struct{})
	var finished atomic.Bool
	s := New(Job{
		Name:      "blocking",
		Interval:  time.Hour,
		Immediate: true,
		Run: func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			time.Sleep(5 * time.Millisecond)
			finished.Store(true)
			return ctx.Err()
		},
	})

	require.NoError(t, s.Start(context.Background()))
	<-started
	s.Stop()
	assert.True(t, finished.Load())
}

func TestScheduler_RejectsNonPositiveInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
	}{
		{name: "zero", interval: 0},
		{name: "negative", interval: -time.Second},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var runs atomic.Int32
			s := New(
				Job{Name: "countdown", Interval: time.Second, Immediate: true, Run: func(ctx context.Context) error {
					runs.Add(1)
					return nil
				}},
				Job{Name: "fetch", Interval: testCase.interval, Run: func(ctx context.Context) error { return nil }},
			)

			err := s.Start(context.Background())
			require.ErrorIs(t, err, ErrInvalidInterval)
			assert.Contains(t, err.Error(), "fetch")
			assert.False(t, s.Running())
			assert.Zero(t, runs.Load())
			s.Stop()
		})
	}
}
