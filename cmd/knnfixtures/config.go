package main

import (
	"errors"

	"github.com/EPinzuti/IDTxl/metric"
)

// Config validation errors
var (
	ErrInvalidDBPath    = errors.New("db_path cannot be empty")
	ErrInvalidSetName   = errors.New("set_name cannot be empty")
	ErrInvalidK         = errors.New("k must be positive")
	ErrInvalidMetric    = errors.New("metric must be chebyshev, euclidean, or cosine")
	ErrInvalidTheiler   = errors.New("theiler must be >= 0")
	ErrInvalidWorkers   = errors.New("workers must be >= 1")
	ErrInvalidIndexBase = errors.New("index_base must be 0 or 1")
	ErrInvalidGenShape  = errors.New("gen_n and gen_dim must be positive when no input file is given")
	ErrInvalidNoise     = errors.New("noise_level must be >= 0")
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn, or error")
)

// Config holds the fixture generator settings. Defaults come from the
// environment (KNNFIX_ prefix) and are overridden by command-line flags.
type Config struct {
	DBPath    string `envconfig:"DB_PATH" default:"fixtures.sqlite"`
	SetName   string `envconfig:"SET_NAME" default:""`
	K         int    `envconfig:"K" default:"4"`
	Metric    string `envconfig:"METRIC" default:"chebyshev"`
	TheilerT  int    `envconfig:"THEILER" default:"0"`
	Workers   int    `envconfig:"WORKERS" default:"1"`
	IndexBase int    `envconfig:"INDEX_BASE" default:"0"`

	// Input selects a CSV file of points; when empty, a Gaussian point set
	// of GenN x GenDim is generated from Seed instead.
	Input  string `envconfig:"INPUT" default:""`
	GenN   int    `envconfig:"GEN_N" default:"100"`
	GenDim int    `envconfig:"GEN_DIM" default:"2"`
	Seed   int64  `envconfig:"SEED" default:"1"`

	Standardise bool    `envconfig:"STANDARDISE" default:"false"`
	NoiseLevel  float64 `envconfig:"NOISE_LEVEL" default:"0"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Validate checks the configuration and returns the first violation found.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return ErrInvalidDBPath
	}
	if c.SetName == "" {
		return ErrInvalidSetName
	}
	if c.K <= 0 {
		return ErrInvalidK
	}
	if metric.Metric(c.Metric).Func() == nil {
		return ErrInvalidMetric
	}
	if c.TheilerT < 0 {
		return ErrInvalidTheiler
	}
	if c.Workers < 1 {
		return ErrInvalidWorkers
	}
	if c.IndexBase != 0 && c.IndexBase != 1 {
		return ErrInvalidIndexBase
	}
	if c.Input == "" && (c.GenN <= 0 || c.GenDim <= 0) {
		return ErrInvalidGenShape
	}
	if c.NoiseLevel < 0 {
		return ErrInvalidNoise
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}
