// Package runner repeats a pipeline job on a fixed interval.
package runner

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/logging"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/metrics"
)

const (
	defaultInterval = time.Hour
	cycleJob        = "cycle"
)

// Job is one unit of work executed per cycle.
type Job func(ctx context.Context) error

// Runner executes a job immediately and then once per interval.
type Runner struct {
	job      Job
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	finished chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the run loop.
type Status struct {
	Cycles              int
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsHealthy reports whether the loop has succeeded and is not failing repeatedly.
func (s Status) IsHealthy() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Runner; a non-positive interval falls back to one hour.
func New(job Job, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Runner{
		job:      job,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// Start runs the loop in the background until ctx is cancelled or Stop is called.
func (r *Runner) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		defer close(r.finished)
		logging.Info(r.logger, "runner started", logging.FieldDurationMS, r.interval.Milliseconds())
		r.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.ticker.Stop()
				logging.Info(r.logger, "runner stopped")
				return
			case <-r.done:
				r.ticker.Stop()
				logging.Info(r.logger, "runner stopped")
				return
			case <-r.ticker.C:
				r.runOnce(ctx)
			}
		}
	}()
}

// Stop halts the loop and waits for an in-flight cycle to finish or ctx to expire.
func (r *Runner) Stop(ctx context.Context) error {
	r.stopOnce.Do(func() {
		close(r.done)
	})

	r.startMu.Lock()
	started := r.started
	r.startMu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-r.finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) runOnce(ctx context.Context) {
	start := r.now()
	r.recordAttempt(start)

	began := time.Now()
	err := r.job(ctx)
	elapsed := time.Since(began)
	r.metrics.RecordJobRun(cycleJob, elapsed, err)

	if err != nil {
		logging.Error(r.logger, "runner cycle failed", err, logging.FieldDurationMS, elapsed.Milliseconds())
		r.recordFailure(err, start)
		return
	}
	r.recordSuccess(start)
	logging.Info(r.logger, "runner cycle finished", logging.FieldDurationMS, elapsed.Milliseconds())
}

func (r *Runner) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.Cycles++
	r.status.LastAttempt = at
}

func (r *Runner) recordSuccess(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
}

func (r *Runner) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the loop's recent health.
func (r *Runner) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}
