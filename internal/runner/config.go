// Package runner solves batches of puzzle parts and checks their answers.
package runner

// Config defines the runner configuration.
type Config struct {
	// Workers is the maximum number of jobs solved at once.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the default runner configuration.
func DefaultConfig() *Config {
	return &Config{
		Workers: 1,
	}
}

// workerLimit returns the effective concurrency limit.
func (c *Config) workerLimit() int {
	if c.Workers < 1 {
		return 1
	}
	return c.Workers
}
