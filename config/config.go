// Package config holds the simulator settings read from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mmonicaama/Cpu-simulator/cpu"
	"github.com/mmonicaama/Cpu-simulator/translate"
)

var f = translate.From

var (
	ErrMemorySize = errors.New(f("memory size must be positive"))
	ErrDump       = errors.New(f("dump must be one of none, plain or table"))
	ErrTimeout    = errors.New(f("timeout must not be negative"))
)

// Config is the simulator configuration.
type Config struct {
	MemorySize int           `yaml:"memory_size"` // Memory capacity, in cells.
	Trace      bool          `yaml:"trace"`       // Log every executed instruction.
	Dump       string        `yaml:"dump"`        // Memory dump style after a run.
	Timeout    time.Duration `yaml:"timeout"`     // Run time limit; zero for none.
	Language   string        `yaml:"language"`    // Message language tag; empty for the system locale.
}

// Default returns the default configuration.
func Default() (cfg *Config) {
	cfg = &Config{
		MemorySize: cpu.MEMORY_SIZE,
		Dump:       "plain",
	}
	return
}

// Load reads a configuration file over the defaults.
func Load(path string) (cfg *Config, err error) {
	cfg = Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	err = cfg.Validate()
	return
}

// Validate checks the configuration values.
func (cfg *Config) Validate() (err error) {
	var errs []error

	if cfg.MemorySize <= 0 {
		errs = append(errs, ErrMemorySize)
	}

	switch cfg.Dump {
	case "none", "plain", "table":
	default:
		errs = append(errs, ErrDump)
	}

	if cfg.Timeout < 0 {
		errs = append(errs, ErrTimeout)
	}

	return errors.Join(errs...)
}
