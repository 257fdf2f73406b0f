package dataset

import (
	"math/rand"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/kyleyasumiishi/geocluster/cluster"
)

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// gridSteps is the number of grid cells per unit length of the sampling square.
const gridSteps = 1000

// rngFromSeed returns a deterministic *rand.Rand; seed == 0 selects defaultSeed.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Random returns n points drawn uniformly from the square [-1, 1)² on a grid
// of 1/1000, with zero population and ids "r0".."r{n-1}". Equal seeds yield
// equal point sets; n <= 0 yields nil.
//
// Complexity: O(n).
func Random(n int, seed int64) []cluster.Point {
	if n <= 0 {
		return nil
	}

	rng := rngFromSeed(seed)
	points := make([]cluster.Point, n)
	for i := range points {
		points[i] = cluster.Point{
			ID:  "r" + strconv.Itoa(i),
			Pos: r2.Vec{X: gridCoord(rng), Y: gridCoord(rng)},
		}
	}

	return points
}

func gridCoord(rng *rand.Rand) float64 {
	return float64(rng.Intn(2*gridSteps)-gridSteps) / gridSteps
}
