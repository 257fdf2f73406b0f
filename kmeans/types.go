package kmeans

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/kyleyasumiishi/geocluster/cluster"
)

// Sentinel errors for k-means clustering.
var (
	// ErrInvalidK is returned when k < 1.
	ErrInvalidK = errors.New("kmeans: k must be positive")

	// ErrDegenerateInput is returned when k exceeds the number of input clusters.
	ErrDegenerateInput = errors.New("kmeans: k exceeds number of input clusters")

	// ErrInvalidIterations is returned when the iteration count is negative.
	ErrInvalidIterations = errors.New("kmeans: iterations must be non-negative")
)

// State is the complete iteration state threaded from one round to the next.
//   - Round:    number of completed rounds (0 before the first).
//   - Centers:  centre positions used by the next round.
//   - Clusters: accumulators produced by the last round; before the first
//     round, empty clusters at the seeds.
//   - Assign:   for each input cluster, the index of its accumulator in the
//     last round (nil before the first round).
type State struct {
	Round    int
	Centers  []r2.Vec
	Clusters []cluster.Cluster
	Assign   []int
}

// Option configures Cluster via functional arguments.
type Option func(*Options)

// Options holds hooks invoked during clustering.
type Options struct {
	// OnIteration is called with the state after every completed round.
	OnIteration func(State)
}

// DefaultOptions returns Options with a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnIteration: func(State) {},
	}
}

// WithOnIteration registers a hook fired after each round. nil keeps the no-op.
func WithOnIteration(fn func(State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}
