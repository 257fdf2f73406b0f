package distortion_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/kyleyasumiishi/geocluster/cluster"
	"github.com/kyleyasumiishi/geocluster/distortion"
)

// ExampleSweep prints the hierarchical distortion curve of four points.
func ExampleSweep() {
	points := []cluster.Point{
		{ID: "a", Pos: r2.Vec{X: 0, Y: 0}, Population: 1},
		{ID: "b", Pos: r2.Vec{X: 0, Y: 1}, Population: 1},
		{ID: "c", Pos: r2.Vec{X: 10, Y: 0}, Population: 1},
		{ID: "d", Pos: r2.Vec{X: 10, Y: 1}, Population: 1},
	}
	tbl, err := cluster.NewTable(points)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	curve, err := distortion.Sweep(cluster.Singletons(points), tbl, 1, 4, distortion.Hierarchical())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range curve {
		fmt.Printf("k=%d distortion=%.2f\n", s.K, s.Distortion)
	}
	// Output:
	// k=1 distortion=101.00
	// k=2 distortion=1.00
	// k=3 distortion=0.50
	// k=4 distortion=0.00
}
