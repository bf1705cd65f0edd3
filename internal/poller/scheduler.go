package poller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrAlreadyRunning  = errors.New("scheduler already running")
	ErrInvalidInterval = errors.New("job interval must be positive")
)

// Job is one periodic task. Run receives the scheduler context and should
// return promptly once it is cancelled.
type Job struct {
	Name      string
	Interval  time.Duration
	Immediate bool
	Run       func(ctx context.Context) error
}

// Scheduler runs a fixed set of jobs between Start and Stop. A job never
// overlaps itself: a tick that fires while the previous run is still going
// is dropped.
type Scheduler struct {
	jobs []Job

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

func New(jobs ...Job) *Scheduler {
	return &Scheduler{jobs: jobs}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrAlreadyRunning
	}
	for _, job := range s.jobs {
		if job.Interval <= 0 {
			return fmt.Errorf("%s: %w", job.Name, ErrInvalidInterval)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(ctx, job)
	}
	return nil
}

// Stop cancels every job and waits until all of them have returned.
// It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.cancel()
	s.running = false
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	defer s.wg.Done()

	var busy atomic.Bool
	if job.Immediate {
		s.trigger(ctx, job, &busy)
	}

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.trigger(ctx, job, &busy)
		}
	}
}

func (s *Scheduler) trigger(ctx context.Context, job Job, busy *atomic.Bool) {
	if ctx.Err() != nil {
		return
	}
	if !busy.CompareAndSwap(false, true) {
		log.Printf("[POLLER] %s still running, tick dropped", job.Name)
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer busy.Store(false)
		run(ctx, job)
	}()
}

func run(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: job %s panicked: %v", job.Name, r)
		}
	}()
	if err := job.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("ERROR: job %s failed: %v", job.Name, err)
	}
}
