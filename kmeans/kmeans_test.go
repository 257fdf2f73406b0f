package kmeans_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/kyleyasumiishi/geocluster/cluster"
	"github.com/kyleyasumiishi/geocluster/kmeans"
)

func pt(id string, x, y, pop float64) cluster.Point {
	return cluster.Point{ID: id, Pos: r2.Vec{X: x, Y: y}, Population: pop}
}

func randomClusters(seed int64, n int) []cluster.Cluster {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]cluster.Point, n)
	for i := range pts {
		pts[i] = pt(strconv.Itoa(i), rng.Float64()*100, rng.Float64()*100, float64(1+rng.Intn(1000)))
	}

	return cluster.Singletons(pts)
}

func TestCluster_Errors(t *testing.T) {
	cs := randomClusters(1, 5)

	_, err := kmeans.Cluster(cs, 0, 1)
	assert.ErrorIs(t, err, kmeans.ErrInvalidK)

	_, err = kmeans.Cluster(cs, 6, 1)
	assert.ErrorIs(t, err, kmeans.ErrDegenerateInput)

	_, err = kmeans.Cluster(cs, 2, -1)
	assert.ErrorIs(t, err, kmeans.ErrInvalidIterations)

	_, err = kmeans.Seed(nil, 1)
	assert.ErrorIs(t, err, kmeans.ErrDegenerateInput)
}

func TestCluster_ZeroIterationsReturnsSeeds(t *testing.T) {
	cs := cluster.Singletons([]cluster.Point{
		pt("a", 1, 1, 10),
		pt("b", 2, 2, 30),
		pt("c", 3, 3, 20),
		pt("d", 4, 4, 30),
	})

	out, err := kmeans.Cluster(cs, 3, 0)
	require.NoError(t, err)
	require.Len(t, out, 3)

	// Descending population, ties in input order: b, d, c.
	want := []r2.Vec{{X: 2, Y: 2}, {X: 4, Y: 4}, {X: 3, Y: 3}}
	for j, c := range out {
		assert.Zero(t, c.Population())
		assert.Zero(t, c.Len())
		assert.Equal(t, want[j], c.Center())
	}
}

func TestCluster_SquareScenario_InputOrderSeeds(t *testing.T) {
	// Equal populations: the seeds are the first two points, (0,0) and (0,1),
	// which splits the square into its bottom and top edges.
	cs := cluster.Singletons([]cluster.Point{
		pt("a", 0, 0, 1), pt("b", 0, 1, 1), pt("c", 10, 0, 1), pt("d", 10, 1, 1),
	})

	out, err := kmeans.Cluster(cs, 2, 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"a", "c"}, out[0].MemberIDs())
	assert.Equal(t, []string{"b", "d"}, out[1].MemberIDs())
	assert.InDelta(t, 5.0, out[0].Horiz(), 1e-12)
	assert.InDelta(t, 0.0, out[0].Vert(), 1e-12)

	// Already a fixed point.
	again, err := kmeans.Cluster(cs, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, out[0].MemberIDs(), again[0].MemberIDs())
	assert.Equal(t, out[1].MemberIDs(), again[1].MemberIDs())
}

func TestCluster_SquareScenario_MatchesHierarchicalGrouping(t *testing.T) {
	// Seeds on opposite sides converge in one round to the vertical pairs.
	cs := cluster.Singletons([]cluster.Point{
		pt("a", 0, 0, 1), pt("c", 10, 0, 1), pt("b", 0, 1, 1), pt("d", 10, 1, 1),
	})

	out, err := kmeans.Cluster(cs, 2, 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"a", "b"}, out[0].MemberIDs())
	assert.Equal(t, []string{"c", "d"}, out[1].MemberIDs())
	assert.Equal(t, r2.Vec{X: 0, Y: 0.5}, out[0].Center())
	assert.Equal(t, r2.Vec{X: 10, Y: 0.5}, out[1].Center())
	assert.Equal(t, 2.0, out[0].Population())
}

func TestCluster_DoesNotMutateInput(t *testing.T) {
	cs := randomClusters(2, 50)
	before := cluster.CloneAll(cs)

	_, err := kmeans.Cluster(cs, 5, 3)
	require.NoError(t, err)
	for i := range cs {
		assert.Equal(t, before[i].MemberIDs(), cs[i].MemberIDs())
		assert.Equal(t, before[i].Center(), cs[i].Center())
		assert.Equal(t, before[i].Population(), cs[i].Population())
	}
}

func TestCluster_PartitionsAllMembers(t *testing.T) {
	cs := randomClusters(4, 80)

	out, err := kmeans.Cluster(cs, 6, 5)
	require.NoError(t, err)
	require.Len(t, out, 6)

	seen := map[string]int{}
	for _, c := range out {
		for _, id := range c.MemberIDs() {
			seen[id]++
		}
	}
	assert.Len(t, seen, 80)
	for id, n := range seen {
		assert.Equal(t, 1, n, "member %s", id)
	}
	assert.InDelta(t, cluster.TotalPopulation(cs), cluster.TotalPopulation(out), 1e-6)
}

func TestCluster_OnIterationHook(t *testing.T) {
	cs := randomClusters(6, 30)

	var rounds []int
	_, err := kmeans.Cluster(cs, 3, 4, kmeans.WithOnIteration(func(st kmeans.State) {
		rounds = append(rounds, st.Round)
		assert.Len(t, st.Centers, 3)
		assert.Len(t, st.Assign, 30)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, rounds)
}

func TestStep_IsPure(t *testing.T) {
	cs := randomClusters(8, 25)
	st, err := kmeans.Seed(cs, 4)
	require.NoError(t, err)
	centers := append([]r2.Vec(nil), st.Centers...)

	a := kmeans.Step(st, cs)
	b := kmeans.Step(st, cs)
	assert.Equal(t, centers, st.Centers)
	assert.Equal(t, 0, st.Round)
	assert.Equal(t, 1, a.Round)
	assert.Equal(t, a.Centers, b.Centers)
	assert.Equal(t, a.Assign, b.Assign)
}

func TestStep_EmptyAccumulatorMovesToOrigin(t *testing.T) {
	// Both seeds sit at (5,5); ties go to the first centre, so the second
	// accumulator never receives a point and keeps its starting position.
	cs := cluster.Singletons([]cluster.Point{
		pt("a", 5, 5, 5), pt("b", 5, 5, 4), pt("c", 10, 5, 1),
	})

	out, err := kmeans.Cluster(cs, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, out[0].MemberIDs())
	assert.True(t, out[1].IsEmpty())
	assert.Equal(t, r2.Vec{X: 0, Y: 0}, out[1].Center())

	st, err := kmeans.Seed(cs, 2)
	require.NoError(t, err)
	next := kmeans.Step(st, cs)
	assert.Equal(t, r2.Vec{X: 0, Y: 0}, next.Centers[1])
	assert.Equal(t, []int{0, 0, 0}, next.Assign)
}

func TestCluster_ZeroPopulationPointsUseEqualWeights(t *testing.T) {
	cs := cluster.Singletons([]cluster.Point{
		pt("a", 0, 0, 0), pt("b", 1, 0, 0), pt("c", 2, 0, 0), pt("d", 50, 0, 0),
	})

	out, err := kmeans.Cluster(cs, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, out[0].MemberIDs())
	// Pairwise midpoints in assignment order: (0+1)/2, then (0.5+2)/2.
	assert.InDelta(t, 1.25, out[0].Horiz(), 1e-12)
	assert.Equal(t, []string{"d"}, out[1].MemberIDs())
	assert.InDelta(t, 50.0, out[1].Horiz(), 1e-12)
}
