// Package signals simulates the external systems the dashboard reports on:
// the hosting cloud's health and a stream of batch processing jobs.
//
// All state lives in a Service value guarded by a single mutex. Reads never
// mutate. The only path that starts jobs without an explicit request is
// MaybeSpawn, which PollJobs calls before listing.
package signals

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/amirasaad/bankdash/pkg/domain"
	"github.com/amirasaad/bankdash/pkg/metrics"
	"github.com/google/uuid"
)

// PollSize is how many jobs PollJobs returns.
const PollSize = 10

// Deps are the collaborators of Service. All fields are optional.
type Deps struct {
	Config  Config
	Rand    *rand.Rand
	Now     func() time.Time
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Service owns the cloud status record and the job list.
type Service struct {
	cfg     Config
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time

	mu     sync.Mutex
	rng    *rand.Rand // guarded by mu
	status CloudStatus
	jobs   []*Job
	closed bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService creates a Service. Call Shutdown to stop its job goroutines.
func NewService(deps Deps) *Service {
	s := &Service{
		cfg:     deps.Config.withDefaults(),
		metrics: deps.Metrics,
		logger:  deps.Logger,
		now:     deps.Now,
		rng:     deps.Rand,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("service", "signals")
	if s.now == nil {
		s.now = time.Now
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.status = CloudStatus{
		Status:    StatusActive,
		Region:    s.cfg.Region,
		Uptime:    99.98,
		LastCheck: s.now().UTC(),
	}
	return s
}

// CloudStatus resamples and returns the simulated cloud health.
func (s *Service) CloudStatus() CloudStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	// three in four checks report active
	if s.rng.IntN(4) < 3 {
		s.status.Status = StatusActive
	} else {
		s.status.Status = StatusWarning
	}
	s.status.Uptime = domain.Round2(99.5 + s.rng.Float64()*(99.99-99.5))
	s.status.LastCheck = s.now().UTC()
	return s.status
}

// Trigger starts a job named name, or a random catalog name when name is
// empty. Triggered jobs are not subject to MaxConcurrent.
func (s *Service) Trigger(ctx context.Context, name string) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Job{}, ErrShutdown
	}
	if name == "" {
		name = JobNames[s.rng.IntN(len(JobNames))]
	}
	job := s.startLocked(name, "trigger")
	return job.snapshot(), nil
}

// MaybeSpawn starts a randomly named job with probability SpawnProbability,
// provided fewer than MaxConcurrent jobs are running. It returns the new job
// or nil.
func (s *Service) MaybeSpawn() *Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.rng.Float64() >= s.cfg.SpawnProbability {
		return nil
	}
	if s.runningLocked() >= s.cfg.MaxConcurrent {
		return nil
	}
	job := s.startLocked(JobNames[s.rng.IntN(len(JobNames))], "poll")
	out := job.snapshot()
	return &out
}

// RecentJobs returns copies of the last n jobs in creation order.
func (s *Service) RecentJobs(n int) []Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 0 {
		n = 0
	}
	start := max(len(s.jobs)-n, 0)
	out := make([]Job, 0, len(s.jobs)-start)
	for _, j := range s.jobs[start:] {
		out = append(out, j.snapshot())
	}
	return out
}

// PollJobs is MaybeSpawn followed by RecentJobs(PollSize). It is not
// idempotent: each call may start a job.
func (s *Service) PollJobs() []Job {
	s.MaybeSpawn()
	return s.RecentJobs(PollSize)
}

// Running reports how many jobs are still running.
func (s *Service) Running() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runningLocked()
}

// Shutdown cancels every running job and waits for their goroutines, or for
// ctx to expire.
func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		s.logger.Info("signals service stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) runningLocked() int {
	n := 0
	for _, j := range s.jobs {
		if j.Status == JobRunning {
			n++
		}
	}
	return n
}

// startLocked appends a running job and launches its goroutine.
func (s *Service) startLocked(name, origin string) *Job {
	job := &Job{
		ID:        "job_" + uuid.NewString()[:8],
		Name:      name,
		Status:    JobRunning,
		StartedAt: s.now().UTC(),
	}
	s.jobs = append(s.jobs, job)
	s.pruneLocked()

	s.metrics.JobStarted(origin)
	s.logger.Info("job started", "job_id", job.ID, "job_name", name, "origin", origin)

	s.wg.Add(1)
	go s.run(job)
	return job
}

// pruneLocked drops the oldest finished jobs beyond JobHistory.
func (s *Service) pruneLocked() {
	excess := len(s.jobs) - s.cfg.JobHistory
	if excess <= 0 {
		return
	}
	kept := s.jobs[:0]
	for _, j := range s.jobs {
		if excess > 0 && j.Status != JobRunning {
			excess--
			continue
		}
		kept = append(kept, j)
	}
	clear(s.jobs[len(kept):])
	s.jobs = kept
}

func (s *Service) run(job *Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.StepDelay)
	defer ticker.Stop()

	for step := 1; step <= s.cfg.Steps; step++ {
		select {
		case <-s.ctx.Done():
			s.finish(job, JobCancelled)
			return
		case <-ticker.C:
			s.mu.Lock()
			job.Progress = min(100, float64(step)*100/float64(s.cfg.Steps))
			s.mu.Unlock()
		}
	}
	s.finish(job, JobCompleted)
}

func (s *Service) finish(job *Job, status string) {
	s.mu.Lock()
	job.Status = status
	if status == JobCompleted {
		d := (time.Duration(s.cfg.Steps) * s.cfg.StepDelay).Seconds()
		job.Duration = &d
	}
	s.mu.Unlock()

	s.metrics.JobFinished(status)
	s.logger.Debug("job finished", "job_id", job.ID, "status", status)
}
