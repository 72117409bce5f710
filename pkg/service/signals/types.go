package signals

import (
	"errors"
	"time"
)

// ErrShutdown is returned when a job is requested after Shutdown.
var ErrShutdown = errors.New("signals service is shut down")

// Cloud statuses.
const (
	StatusActive  = "active"
	StatusWarning = "warning"
)

// Job statuses.
const (
	JobRunning   = "running"
	JobCompleted = "completed"
	JobCancelled = "cancelled"
)

// JobNames are the names a spontaneously spawned job is drawn from.
var JobNames = []string{
	"Transaction Aggregation",
	"Fraud Detection",
	"Customer Segmentation",
	"Risk Analysis",
}

// CloudStatus is the simulated health of the hosting region.
type CloudStatus struct {
	Status    string    `json:"status"`
	Region    string    `json:"region"`
	Uptime    float64   `json:"uptime"`
	LastCheck time.Time `json:"last_check"`
}

// Job is a snapshot of one simulated batch job. Duration stays nil until
// the job completes.
type Job struct {
	ID        string    `json:"job_id"`
	Name      string    `json:"job_name"`
	Status    string    `json:"status"`
	Progress  float64   `json:"progress"`
	StartedAt time.Time `json:"started_at"`
	Duration  *float64  `json:"duration"`
}

func (j *Job) snapshot() Job {
	out := *j
	if j.Duration != nil {
		d := *j.Duration
		out.Duration = &d
	}
	return out
}

// Config tunes the simulation.
type Config struct {
	Region           string
	Steps            int
	StepDelay        time.Duration
	SpawnProbability float64
	MaxConcurrent    int
	JobHistory       int
}

// DefaultConfig mirrors the production defaults: ten one-second steps,
// a 30% spawn chance per poll and at most three running jobs.
func DefaultConfig() Config {
	return Config{
		Region:           "us-east-1",
		Steps:            10,
		StepDelay:        time.Second,
		SpawnProbability: 0.3,
		MaxConcurrent:    3,
		JobHistory:       100,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Region == "" {
		c.Region = def.Region
	}
	if c.Steps <= 0 {
		c.Steps = def.Steps
	}
	if c.StepDelay <= 0 {
		c.StepDelay = def.StepDelay
	}
	if c.SpawnProbability < 0 {
		c.SpawnProbability = 0
	}
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = def.MaxConcurrent
	}
	if c.JobHistory <= 0 {
		c.JobHistory = def.JobHistory
	}
	return c
}
