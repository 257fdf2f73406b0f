package closestpair

import (
	"errors"
	"fmt"
	"math"

	"github.com/kyleyasumiishi/geocluster/cluster"
)

// Sentinel errors for closest-pair searches.
var (
	// ErrTooFewClusters is returned when fewer than two clusters are supplied.
	ErrTooFewClusters = errors.New("closestpair: need at least two clusters")

	// ErrNotSorted is returned when Fast receives clusters that are not sorted
	// by ascending horizontal centre.
	ErrNotSorted = errors.New("closestpair: clusters must be sorted by horizontal centre")

	// ErrUnknownFinder is returned by FinderByName for an unrecognised name.
	ErrUnknownFinder = errors.New("closestpair: unknown finder")
)

// Pair is the result of a closest-pair search: the distance between the
// centroids of clusters I and J, with I < J.
type Pair struct {
	Dist float64
	I, J int
}

// none is the result for a range holding fewer than two clusters.
var none = Pair{Dist: math.Inf(1), I: -1, J: -1}

// Found reports whether p refers to an actual pair.
func (p Pair) Found() bool { return p.I >= 0 && p.J >= 0 }

// Less orders pairs by distance, then by I, then by J.
func (p Pair) Less(q Pair) bool {
	if p.Dist != q.Dist {
		return p.Dist < q.Dist
	}
	if p.I != q.I {
		return p.I < q.I
	}

	return p.J < q.J
}

// Finder is the signature shared by Slow and Fast.
type Finder func(clusters []cluster.Cluster) (Pair, error)

// Finder names accepted by FinderByName.
const (
	NameSlow = "slow"
	NameFast = "fast"
)

// FinderByName maps "slow" and "fast" to the corresponding Finder.
func FinderByName(name string) (Finder, error) {
	switch name {
	case NameSlow:
		return Slow, nil
	case NameFast:
		return Fast, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFinder, name)
	}
}
