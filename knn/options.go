package knn

import "github.com/EPinzuti/IDTxl/metric"

// Options configures a neighbour query.
//   - Metric: distance metric (default Chebyshev).
//   - TheilerT: exclude candidates j with |i-j| <= TheilerT from point i's
//     neighbourhood. Zero keeps plain self-exclusion.
//   - Workers: number of goroutines searching query points concurrently;
//     values <= 1 run serially. Parallel and serial runs produce identical
//     results because the input is immutable and each point is independent.
type Options struct {
	Metric   metric.Metric
	TheilerT int
	Workers  int
}

// Option mutates query Options.
type Option func(*Options)

// WithMetric selects the distance metric.
func WithMetric(m metric.Metric) Option {
	return func(o *Options) { o.Metric = m }
}

// WithTheiler sets the Theiler window: candidates within t positions of the
// query point are excluded from its neighbourhood.
func WithTheiler(t int) Option {
	return func(o *Options) { o.TheilerT = t }
}

// WithWorkers sets the number of concurrent per-point searches.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func buildOptions(opts []Option) Options {
	o := Options{Metric: metric.Chebyshev}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
