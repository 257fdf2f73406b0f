package hierarchical

import (
	"errors"

	"github.com/kyleyasumiishi/geocluster/closestpair"
	"github.com/kyleyasumiishi/geocluster/cluster"
)

// ErrInvalidK is returned when k is not within [1, len(clusters)].
var ErrInvalidK = errors.New("hierarchical: k out of range")

// MergeEvent describes one merge step.
//   - Step:   1-based merge counter.
//   - Dist:   centroid distance between Left and Right.
//   - Left:   the lower-indexed cluster of the closest pair.
//   - Right:  the higher-indexed cluster, removed from the list.
//   - Merged: the cluster that replaced Left.
type MergeEvent struct {
	Step   int
	Dist   float64
	Left   cluster.Cluster
	Right  cluster.Cluster
	Merged cluster.Cluster
}

// Option configures Cluster via functional arguments.
type Option func(*Options)

// Options holds the closest-pair strategy and the merge hook.
type Options struct {
	// Finder locates the closest pair on the sorted working list.
	Finder closestpair.Finder

	// OnMerge is called after every merge.
	OnMerge func(MergeEvent)
}

// DefaultOptions returns Options with closestpair.Fast and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Finder:  closestpair.Fast,
		OnMerge: func(MergeEvent) {},
	}
}

// WithFinder selects the closest-pair strategy. nil keeps the default.
func WithFinder(f closestpair.Finder) Option {
	return func(o *Options) {
		if f != nil {
			o.Finder = f
		}
	}
}

// WithOnMerge registers a hook fired after each merge. nil keeps the no-op.
func WithOnMerge(fn func(MergeEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}
