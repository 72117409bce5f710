package signals

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, cfg Config) *Service {
	t.Helper()
	s := NewService(Deps{Config: cfg, Rand: rand.New(rand.NewPCG(1, 2))})
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})
	return s
}

func TestCloudStatus(t *testing.T) {
	s := newTestService(t, Config{Region: "eu-west-1"})

	seen := map[string]bool{}
	for range 200 {
		st := s.CloudStatus()
		seen[st.Status] = true
		assert.Equal(t, "eu-west-1", st.Region)
		assert.GreaterOrEqual(t, st.Uptime, 99.5)
		assert.LessOrEqual(t, st.Uptime, 99.99)
		assert.InDelta(t, st.Uptime, float64(int(st.Uptime*100+0.5))/100, 1e-9)
		assert.False(t, st.LastCheck.IsZero())
	}
	assert.True(t, seen[StatusActive])
	assert.True(t, seen[StatusWarning])
	assert.Len(t, seen, 2)
}

func TestTrigger_RunsToCompletion(t *testing.T) {
	s := newTestService(t, Config{Steps: 4, StepDelay: 5 * time.Millisecond})

	job, err := s.Trigger(context.Background(), "Nightly Rollup")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(job.ID, "job_"))
	assert.Len(t, job.ID, len("job_")+8)
	assert.Equal(t, "Nightly Rollup", job.Name)
	assert.Equal(t, JobRunning, job.Status)
	assert.Nil(t, job.Duration)

	require.Eventually(t, func() bool {
		jobs := s.RecentJobs(1)
		return len(jobs) == 1 && jobs[0].Status == JobCompleted
	}, 2*time.Second, 5*time.Millisecond)

	done := s.RecentJobs(1)[0]
	assert.Equal(t, job.ID, done.ID)
	assert.Equal(t, 100.0, done.Progress)
	require.NotNil(t, done.Duration)
	assert.InDelta(t, 0.02, *done.Duration, 1e-9)
	assert.Equal(t, 0, s.Running())
}

func TestTrigger_EmptyNameDrawsFromCatalog(t *testing.T) {
	s := newTestService(t, Config{StepDelay: time.Hour})

	job, err := s.Trigger(context.Background(), "")
	require.NoError(t, err)
	assert.Contains(t, JobNames, job.Name)
}

func TestMaybeSpawn_RespectsConcurrencyCap(t *testing.T) {
	s := newTestService(t, Config{SpawnProbability: 1, MaxConcurrent: 3, StepDelay: time.Hour})

	for range 3 {
		require.NotNil(t, s.MaybeSpawn())
	}
	assert.Nil(t, s.MaybeSpawn())
	assert.Equal(t, 3, s.Running())

	// explicit triggers are not capped
	_, err := s.Trigger(context.Background(), "manual")
	require.NoError(t, err)
	assert.Equal(t, 4, s.Running())
	assert.Nil(t, s.MaybeSpawn())
}

func TestPollJobs_ZeroProbabilityNeverSpawns(t *testing.T) {
	s := newTestService(t, Config{SpawnProbability: 0})

	for range 50 {
		assert.Empty(t, s.PollJobs())
	}
}

func TestRecentJobs_ReturnsLastInCreationOrder(t *testing.T) {
	s := newTestService(t, Config{StepDelay: time.Hour})
	ctx := context.Background()

	var ids []string
	for range 12 {
		job, err := s.Trigger(ctx, "job")
		require.NoError(t, err)
		ids = append(ids, job.ID)
	}

	recent := s.PollJobs()
	require.Len(t, recent, PollSize)
	for i, j := range recent {
		assert.Equal(t, ids[2+i], j.ID)
	}
	assert.Empty(t, s.RecentJobs(0))

	// snapshots are copies
	recent[0].Status = "tampered"
	assert.Equal(t, JobRunning, s.RecentJobs(PollSize)[0].Status)
}

func TestHistoryIsBounded(t *testing.T) {
	s := newTestService(t, Config{Steps: 1, StepDelay: time.Millisecond, JobHistory: 2})
	ctx := context.Background()

	for range 5 {
		_, err := s.Trigger(ctx, "short")
		require.NoError(t, err)
		require.Eventually(t, func() bool { return s.Running() == 0 }, time.Second, time.Millisecond)
	}
	_, err := s.Trigger(ctx, "last")
	require.NoError(t, err)

	jobs := s.RecentJobs(100)
	assert.Len(t, jobs, 2)
	assert.Equal(t, "last", jobs[1].Name)
}

func TestShutdown_CancelsRunningJobs(t *testing.T) {
	s := NewService(Deps{Config: Config{StepDelay: time.Hour}})
	ctx := context.Background()

	for range 3 {
		_, err := s.Trigger(ctx, "long")
		require.NoError(t, err)
	}

	sctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(sctx))

	for _, j := range s.RecentJobs(10) {
		assert.Equal(t, JobCancelled, j.Status)
		assert.Nil(t, j.Duration)
	}
	assert.Equal(t, 0, s.Running())

	_, err := s.Trigger(ctx, "late")
	assert.ErrorIs(t, err, ErrShutdown)
	assert.Nil(t, s.MaybeSpawn())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, 10, cfg.Steps)
	assert.Equal(t, time.Second, cfg.StepDelay)
	assert.Equal(t, 0.3, cfg.SpawnProbability)
	assert.Equal(t, 3, cfg.MaxConcurrent)
	assert.Equal(t, 100, cfg.JobHistory)

	filled := Config{}.withDefaults()
	assert.Equal(t, cfg.Region, filled.Region)
	assert.Equal(t, cfg.Steps, filled.Steps)
	assert.Equal(t, cfg.JobHistory, filled.JobHistory)
	assert.Zero(t, filled.SpawnProbability, "a zero probability disables spawning")
}
