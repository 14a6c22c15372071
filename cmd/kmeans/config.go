package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hupe1980/kmeans"
)

const defaultIter = 300

var (
	errInvalidK    = errors.New("Invalid number of clusters!")
	errInvalidIter = errors.New("Invalid maximum iteration!")
	errUsage       = errors.New("usage: kmeans [flags] k [iter] epsilon input1 input2")
)

type config struct {
	k       int
	iter    int
	epsilon float64
	inputs  []string

	// parse failures are reported after the inputs are loaded, together with
	// range violations
	badK    bool
	badIter bool

	seed          int64
	logLevel      slog.Level
	logFormat     string
	emptyCluster  kmeans.EmptyClusterPolicy
	ioLimit       int64
	memoryLimit   int64
	s3Region      string
	s3Endpoint    string
	minioEndpoint string
	minioSecure   bool
}

func parseConfig(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("kmeans", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), errUsage)
		fs.PrintDefaults()
	}

	cfg := &config{}
	var level, empty string
	fs.Int64Var(&cfg.seed, "seed", 1234, "seed for k-means++ initialization")
	fs.StringVar(&level, "log-level", "warn", "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format (text, json)")
	fs.StringVar(&empty, "empty-cluster", "fail", "empty cluster policy (fail, keep, reseed)")
	fs.Int64Var(&cfg.ioLimit, "io-limit", 0, "input read limit in bytes per second (0 = unlimited)")
	fs.Int64Var(&cfg.memoryLimit, "memory-limit", 0, "working memory limit in bytes (0 = unlimited)")
	fs.StringVar(&cfg.s3Region, "s3-region", "", "AWS region for s3:// inputs")
	fs.StringVar(&cfg.s3Endpoint, "s3-endpoint", "", "custom endpoint for s3:// inputs")
	fs.StringVar(&cfg.minioEndpoint, "minio-endpoint", "localhost:9000", "endpoint for minio:// inputs")
	fs.BoolVar(&cfg.minioSecure, "minio-secure", false, "use TLS for minio:// inputs")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.logLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log-level: %w", err)
	}
	switch cfg.logFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("log-format: unknown format %q", cfg.logFormat)
	}

	p, err := kmeans.ParseEmptyClusterPolicy(empty)
	if err != nil {
		return nil, fmt.Errorf("empty-cluster: %w", err)
	}
	cfg.emptyCluster = p

	pos := fs.Args()
	var kArg, iterArg, epsArg string
	switch len(pos) {
	case 4:
		kArg, epsArg, cfg.inputs = pos[0], pos[1], pos[2:]
		iterArg = strconv.Itoa(defaultIter)
	case 5:
		kArg, iterArg, epsArg, cfg.inputs = pos[0], pos[1], pos[2], pos[3:]
	default:
		return nil, errUsage
	}

	if cfg.k, err = strconv.Atoi(kArg); err != nil {
		cfg.badK = true
	}
	if cfg.iter, err = strconv.Atoi(iterArg); err != nil {
		cfg.badIter = true
	}
	if cfg.epsilon, err = strconv.ParseFloat(strings.TrimSpace(epsArg), 64); err != nil || cfg.epsilon < 0 {
		return nil, fmt.Errorf("invalid epsilon %q", epsArg)
	}

	return cfg, nil
}

// validate applies the range checks against the number of loaded points n.
// All violations are returned.
func (c *config) validate(n int) []error {
	var errs []error
	if c.badK || c.k <= 1 || c.k >= n-1 {
		errs = append(errs, errInvalidK)
	}
	if c.badIter || c.iter <= 1 || c.iter >= 1000 {
		errs = append(errs, errInvalidIter)
	}
	return errs
}
