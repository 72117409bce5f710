package config

import (
	"time"
)

type DB struct {
	// Url is either a postgres URL or a sqlite file path.
	Url string `envconfig:"URL" default:"banking_data.db"`
}

type Redis struct {
	URL          string        `envconfig:"URL" default:""`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:"bankdash:"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Cors struct {
	Origins string `envconfig:"ORIGINS" default:"*"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[bankdash]"`
}

type Server struct {
	Scheme          string        `envconfig:"SCHEME" default:"http"`
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            int           `envconfig:"PORT" default:"8001"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Dataset sizes the generated population. A zero Seed draws a random one.
type Dataset struct {
	Customers    int    `envconfig:"CUSTOMERS" default:"500"`
	Transactions int    `envconfig:"TRANSACTIONS" default:"10000"`
	Seed         uint64 `envconfig:"SEED" default:"0"`
}

// Analytics tunes the aggregation service. A zero CacheTTL disables result caching.
type Analytics struct {
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"30s"`
}

type Signals struct {
	Region           string        `envconfig:"REGION" default:"us-east-1"`
	JobSteps         int           `envconfig:"JOB_STEPS" default:"10"`
	JobStepDelay     time.Duration `envconfig:"JOB_STEP_DELAY" default:"1s"`
	SpawnProbability float64       `envconfig:"SPAWN_PROBABILITY" default:"0.3"`
	MaxConcurrent    int           `envconfig:"MAX_CONCURRENT" default:"3"`
	JobHistory       int           `envconfig:"JOB_HISTORY" default:"100"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Redis     *Redis     `envconfig:"REDIS"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Cors      *Cors      `envconfig:"CORS"`
	Dataset   *Dataset   `envconfig:"DATASET"`
	Analytics *Analytics `envconfig:"ANALYTICS"`
	Signals   *Signals   `envconfig:"SIGNALS"`
}
