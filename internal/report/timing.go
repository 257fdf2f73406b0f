package report

import (
	"slices"
	"time"

	"github.com/rotisserie/eris"

	"github.com/kyleyasumiishi/geocluster/closestpair"
	"github.com/kyleyasumiishi/geocluster/cluster"
	"github.com/kyleyasumiishi/geocluster/internal/dataset"
)

// Timing measures each finder on random inputs of every size and returns one
// Series per finder, ordered by name, with running times in microseconds.
// Each size n uses the point set dataset.Random(n, seed+n) sorted by
// horizontal centre, so every finder sees the same input.
func Timing(sizes []int, seed int64, finders map[string]closestpair.Finder) ([]Series, error) {
	if len(finders) == 0 {
		return nil, eris.New("report: no finders to time")
	}
	for _, n := range sizes {
		if n < 2 {
			return nil, eris.Errorf("report: size %d is below 2", n)
		}
	}

	inputs := make([][]cluster.Cluster, len(sizes))
	for i, n := range sizes {
		inputs[i] = cluster.Singletons(dataset.Random(n, seed+int64(n)))
		cluster.SortByHoriz(inputs[i])
	}

	names := make([]string, 0, len(finders))
	for name := range finders {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]Series, 0, len(names))
	for _, name := range names {
		find := finders[name]
		s := Series{Name: name, X: make([]float64, len(sizes)), Y: make([]float64, len(sizes))}
		for i, in := range inputs {
			start := time.Now()
			if _, err := find(in); err != nil {
				return nil, eris.Wrapf(err, "report: %s finder on %d points", name, len(in))
			}
			s.X[i] = float64(len(in))
			s.Y[i] = float64(time.Since(start).Nanoseconds()) / 1e3
		}
		out = append(out, s)
	}

	return out, nil
}
