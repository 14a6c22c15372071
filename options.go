package kmeans

import (
	"fmt"
	"runtime"

	"github.com/hupe1980/kmeans/internal/lloyd"
	"github.com/hupe1980/kmeans/resource"
)

const (
	// DefaultMaxIter is the iteration bound used when WithMaxIter is not given.
	DefaultMaxIter = 300
	// DefaultEpsilon is the convergence tolerance used when WithEpsilon is not given.
	DefaultEpsilon = 0.001
)

// EmptyClusterPolicy selects what Fit does when a cluster receives no points.
type EmptyClusterPolicy int

const (
	// EmptyClusterFail aborts the run with an *EmptyClusterError (default).
	EmptyClusterFail EmptyClusterPolicy = iota
	// EmptyClusterKeep leaves the centroid where it was in the previous iteration.
	EmptyClusterKeep
	// EmptyClusterReseed moves the centroid onto the point farthest from its
	// assigned centroid in the same iteration.
	EmptyClusterReseed
)

func (p EmptyClusterPolicy) String() string {
	switch p {
	case EmptyClusterFail:
		return "fail"
	case EmptyClusterKeep:
		return "keep"
	case EmptyClusterReseed:
		return "reseed"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// ParseEmptyClusterPolicy parses the names produced by String. "error" is
// accepted as an alias of "fail".
func ParseEmptyClusterPolicy(s string) (EmptyClusterPolicy, error) {
	switch s {
	case "fail", "error":
		return EmptyClusterFail, nil
	case "keep":
		return EmptyClusterKeep, nil
	case "reseed":
		return EmptyClusterReseed, nil
	default:
		return 0, fmt.Errorf("%w: unknown empty cluster policy %q", ErrInvalidArgument, s)
	}
}

func (p EmptyClusterPolicy) lloyd() lloyd.EmptyPolicy {
	switch p {
	case EmptyClusterKeep:
		return lloyd.EmptyKeep
	case EmptyClusterReseed:
		return lloyd.EmptyReseed
	default:
		return lloyd.EmptyError
	}
}

type options struct {
	maxIter          int
	epsilon          float64
	emptyCluster     EmptyClusterPolicy
	logger           *Logger
	metricsCollector MetricsCollector
	resources        *resource.Controller
	concurrency      int
}

func defaultOptions() options {
	return options{
		maxIter:          DefaultMaxIter,
		epsilon:          DefaultEpsilon,
		emptyCluster:     EmptyClusterFail,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		concurrency:      runtime.GOMAXPROCS(0),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Option configures Fit and FitAll.
type Option func(*options)

// WithMaxIter sets the maximum number of Lloyd iterations.
// Exhausting the bound is a normal outcome (StateExhausted), not an error.
func WithMaxIter(n int) Option {
	return func(o *options) {
		o.maxIter = n
	}
}

// WithEpsilon sets the convergence tolerance. A run converges once no
// centroid moved by epsilon or more in one iteration. With epsilon 0 only an
// iteration in which no centroid moved at all converges.
func WithEpsilon(epsilon float64) Option {
	return func(o *options) {
		o.epsilon = epsilon
	}
}

// WithEmptyClusterPolicy configures how clusters without members are handled.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyCluster = p
	}
}

// WithLogger configures structured logging.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kmeans.BasicMetricsCollector{}
//	res, err := kmeans.Fit(ctx, data, initial, kmeans.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResourceController reserves the working state of each run against the
// controller's memory budget and, in FitAll, limits concurrent runs to its
// worker slots.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

// WithConcurrency bounds how many jobs FitAll runs at once.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.concurrency = n
	}
}
