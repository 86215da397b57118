package throughput

// Config defines a benchmark run.
type Config struct {
	Elements int // array length per input
	Trials   int // number of timed repetitions
	Threads  int // worker pool size
	Workload Workload
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default run parameters: 32742 elements,
// 1000 trials, a single worker, and the elementwise multiply workload.
func DefaultConfig() Config {
	return Config{
		Elements: 32742,
		Trials:   1000,
		Threads:  1,
	}
}

// WithElements sets the array element count.
func WithElements(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Elements = n
		}
	}
}

// WithTrials sets the number of timed trials.
func WithTrials(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Trials = n
		}
	}
}

// WithThreads sets the worker pool size.
func WithThreads(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Threads = n
		}
	}
}

// WithWorkload sets the kernel under measurement.
func WithWorkload(w Workload) Option {
	return func(cfg *Config) {
		if w != nil {
			cfg.Workload = w
		}
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
