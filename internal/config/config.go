// Package config loads advent configuration from YAML, .env and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the file.
const (
	EnvInputDir = "ADVENT_INPUT_DIR"
	EnvDB       = "ADVENT_DB"
	EnvWorkers  = "ADVENT_WORKERS"
)

// Config holds runner configuration.
type Config struct {
	// InputDir holds day_<n>.txt input files.
	InputDir string `yaml:"input_dir"`
	// DBPath is the SQLite run history. A leading ~ expands to the home directory.
	DBPath string `yaml:"db_path"`
	// Workers bounds how many jobs run at once.
	Workers int `yaml:"workers"`
	// CacheSize is how many input files the loader keeps in memory.
	CacheSize int `yaml:"cache_size"`
	// Claims configures day 3.
	Claims ClaimsConfig `yaml:"claims"`
	// Answers are the expected answers per day.
	Answers map[int]Answers `yaml:"answers"`
}

// ClaimsConfig configures the fabric claim search.
type ClaimsConfig struct {
	// FindMode is "first" or "all".
	FindMode string `yaml:"find_mode"`
}

// Answers holds the expected answers for one day. Empty means unchecked.
type Answers struct {
	Part1 string `yaml:"part1,omitempty"`
	Part2 string `yaml:"part2,omitempty"`
}

// DefaultConfig returns the default configuration, carrying the answers for
// the bundled inputs.
func DefaultConfig() *Config {
	return &Config{
		InputDir:  "input",
		DBPath:    filepath.Join("~", ".advent", "advent.db"),
		Workers:   1,
		CacheSize: 16,
		Claims:    ClaimsConfig{FindMode: "first"},
		Answers: map[int]Answers{
			1: {Part1: "484", Part2: "367"},
			2: {Part1: "4980", Part2: "qysdtrkloagnfozuwujmhrbvx"},
			3: {Part1: "118539", Part2: "1270"},
			4: {Part1: "26281", Part2: "73001"},
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// DefaultPath returns ~/.advent/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".advent", "config.yaml")
	}
	return filepath.Join(home, ".advent", "config.yaml")
}

// Save writes cfg as YAML, creating parent directories if needed.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// LoadDotEnv loads a .env file from the working directory into the process
// environment. A missing file is not an error.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from ADVENT_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvInputDir)); v != "" {
		c.InputDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDB)); v != "" {
		c.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		c.Workers = n
	}
	return c.Validate()
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size cannot be negative")
	}
	if c.InputDir == "" {
		return fmt.Errorf("input_dir cannot be empty")
	}

	validModes := map[string]bool{
		"first": true,
		"all":   true,
	}
	if !validModes[c.Claims.FindMode] {
		return fmt.Errorf("invalid claims.find_mode %q, must be: first or all", c.Claims.FindMode)
	}

	return nil
}

// Expected returns the configured answer for a day and part.
func (c *Config) Expected(day, part int) (string, bool) {
	a, ok := c.Answers[day]
	if !ok {
		return "", false
	}
	var v string
	switch part {
	case 1:
		v = a.Part1
	case 2:
		v = a.Part2
	}
	return v, v != ""
}

// InputPath returns the input file for day.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("day_%d.txt", day))
}

// ResolvedDBPath expands a leading ~ in DBPath.
func (c *Config) ResolvedDBPath() string {
	return expandHome(c.DBPath)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
