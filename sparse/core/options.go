package core

import "runtime"

// Config defines how a kernel spreads its rows over worker goroutines.
type Config struct {
	// Workers caps the number of concurrently processed row ranges.
	// Values <= 1 run the kernel on the calling goroutine.
	Workers int

	// Grain is the minimum number of rows handed to a single worker.
	Grain int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig uses every available CPU with ranges of at least 1024 rows,
// so small matrices stay on the calling goroutine.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.GOMAXPROCS(0),
		Grain:   1024,
	}
}

// WithWorkers sets the maximum number of workers.
func WithWorkers(workers int) Option {
	return func(cfg *Config) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithGrain sets the minimum number of rows per worker.
func WithGrain(grain int) Option {
	return func(cfg *Config) {
		if grain > 0 {
			cfg.Grain = grain
		}
	}
}

// Sequential forces single-goroutine execution.
func Sequential() Option {
	return func(cfg *Config) {
		cfg.Workers = 1
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
