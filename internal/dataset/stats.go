package dataset

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"

	"github.com/kyleyasumiishi/geocluster/cluster"
)

// Summary describes a point table at a glance.
//   - Count:      number of points.
//   - Population: total population.
//   - Min, Max:   corners of the bounding box.
//   - Centroid:   population-weighted mean position; the plain mean when
//     every population is zero.
type Summary struct {
	Count      int
	Population float64
	Min, Max   r2.Vec
	Centroid   r2.Vec
}

// Summarize computes the Summary of points. An empty table yields the zero
// Summary.
//
// Complexity: O(n).
func Summarize(points []cluster.Point) Summary {
	if len(points) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	weights := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i], weights[i] = p.Pos.X, p.Pos.Y, p.Population
	}

	total := floats.Sum(weights)
	if total == 0 {
		weights = nil
	}

	return Summary{
		Count:      len(points),
		Population: total,
		Min:        r2.Vec{X: floats.Min(xs), Y: floats.Min(ys)},
		Max:        r2.Vec{X: floats.Max(xs), Y: floats.Max(ys)},
		Centroid:   r2.Vec{X: stat.Mean(xs, weights), Y: stat.Mean(ys, weights)},
	}
}
