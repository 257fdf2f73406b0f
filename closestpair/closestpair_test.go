package closestpair_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/kyleyasumiishi/geocluster/closestpair"
	"github.com/kyleyasumiishi/geocluster/cluster"
)

// at builds a unit-population singleton cluster at (x, y).
func at(id string, x, y float64) cluster.Cluster {
	return cluster.New([]string{id}, r2.Vec{X: x, Y: y}, 1, 0)
}

// randomClusters returns n clusters uniform in [-1, 1)², sorted by horizontal centre.
func randomClusters(rng *rand.Rand, n int) []cluster.Cluster {
	cs := make([]cluster.Cluster, n)
	for i := range cs {
		cs[i] = at(strconv.Itoa(i), rng.Float64()*2-1, rng.Float64()*2-1)
	}
	cluster.SortByHoriz(cs)

	return cs
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   []cluster.Cluster
	}{
		{"nil", nil},
		{"one", []cluster.Cluster{at("a", 0, 0)}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := closestpair.Slow(tc.in)
			assert.ErrorIs(t, err, closestpair.ErrTooFewClusters)
			_, err = closestpair.Fast(tc.in)
			assert.ErrorIs(t, err, closestpair.ErrTooFewClusters)
		})
	}

	unsorted := []cluster.Cluster{at("a", 5, 0), at("b", 1, 0), at("c", 3, 0)}
	_, err := closestpair.Fast(unsorted)
	assert.ErrorIs(t, err, closestpair.ErrNotSorted)
}

func TestSquareScenario(t *testing.T) {
	cs := []cluster.Cluster{at("a", 0, 0), at("b", 0, 1), at("c", 10, 0), at("d", 10, 1)}
	want := closestpair.Pair{Dist: 1, I: 0, J: 1}

	got, err := closestpair.Slow(cs)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = closestpair.Fast(cs)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTwoClusters(t *testing.T) {
	cs := []cluster.Cluster{at("a", 0, 0), at("b", 3, 4)}
	for name, f := range map[string]closestpair.Finder{"slow": closestpair.Slow, "fast": closestpair.Fast} {
		p, err := f(cs)
		require.NoError(t, err, name)
		assert.Equal(t, closestpair.Pair{Dist: 5, I: 0, J: 1}, p, name)
	}
}

func TestIdenticalValuesAreDistinctClusters(t *testing.T) {
	// Same fields, different positions in the slice: still a valid pair.
	c := at("a", 2, 2)
	cs := []cluster.Cluster{at("x", 0, 0), c, c, at("y", 9, 9)}

	p, err := closestpair.Slow(cs)
	require.NoError(t, err)
	assert.Equal(t, closestpair.Pair{Dist: 0, I: 1, J: 2}, p)

	p, err = closestpair.Fast(cs)
	require.NoError(t, err)
	assert.Equal(t, closestpair.Pair{Dist: 0, I: 1, J: 2}, p)
}

func TestCrossingPairFoundInStrip(t *testing.T) {
	// The closest pair straddles the split between indices 2 and 3.
	cs := []cluster.Cluster{
		at("a", 0, 0),
		at("b", 1, 5),
		at("c", 4.9, 2),
		at("d", 5.1, 2.1),
		at("e", 8, 0),
		at("f", 9, 6),
	}
	p, err := closestpair.Fast(cs)
	require.NoError(t, err)
	assert.Equal(t, 2, p.I)
	assert.Equal(t, 3, p.J)
	assert.InDelta(t, math.Hypot(0.2, 0.1), p.Dist, 1e-12)
}

func TestFastMatchesSlow_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 2; n <= 200; n++ {
		cs := randomClusters(rng, n)

		slow, err := closestpair.Slow(cs)
		require.NoError(t, err)
		fast, err := closestpair.Fast(cs)
		require.NoError(t, err)

		assert.InDelta(t, slow.Dist, fast.Dist, 1e-12, "n=%d", n)
		assert.Less(t, fast.I, fast.J, "n=%d", n)
		assert.InDelta(t, cs[fast.I].Distance(cs[fast.J]), fast.Dist, 1e-12, "n=%d", n)
	}
}

func TestFastMatchesSlow_Collinear(t *testing.T) {
	// Every cluster on the same vertical line: all work happens in strips.
	cs := make([]cluster.Cluster, 0, 40)
	for i := 0; i < 40; i++ {
		cs = append(cs, at(strconv.Itoa(i), 0, float64(i*i)))
	}
	slow, err := closestpair.Slow(cs)
	require.NoError(t, err)
	fast, err := closestpair.Fast(cs)
	require.NoError(t, err)
	assert.Equal(t, slow, fast)
	assert.Equal(t, closestpair.Pair{Dist: 1, I: 0, J: 1}, fast)
}

func TestDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cs := randomClusters(rng, 150)

	first, err := closestpair.Fast(cs)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := closestpair.Fast(cs)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestStrip(t *testing.T) {
	cs := []cluster.Cluster{
		at("a", 0, 0),
		at("b", 4.5, 1),
		at("c", 5.5, 1.5),
		at("d", 10, 0),
	}

	p := closestpair.Strip(cs, 5, 1)
	require.True(t, p.Found())
	assert.Equal(t, 1, p.I)
	assert.Equal(t, 2, p.J)
	assert.InDelta(t, math.Hypot(1, 0.5), p.Dist, 1e-12)

	// A narrow strip holds a single cluster.
	p = closestpair.Strip(cs, 4.5, 0.1)
	assert.False(t, p.Found())
	assert.True(t, math.IsInf(p.Dist, 1))

	// Strip membership is strict.
	p = closestpair.Strip(cs, 5, 0.5)
	assert.False(t, p.Found())
}

func TestStrip_ReachesBeyondThreeSuccessors(t *testing.T) {
	for _, tc := range []struct {
		name string
		cs   []cluster.Cluster
		want closestpair.Pair
	}{
		{
			// Equal vertical centres keep index order, so the coincident
			// pair 0/5 has four clusters between it in the strip.
			name: "coincident",
			cs: []cluster.Cluster{
				at("a", 0, 0), at("b", -9, 0), at("c", 9, 0),
				at("d", -4, 0), at("e", 4, 0), at("f", 0, 0),
			},
			want: closestpair.Pair{Dist: 0, I: 0, J: 5},
		},
		{
			name: "stacked",
			cs: []cluster.Cluster{
				at("a", 0, 0), at("b", -9, 0.1), at("c", 9, 0.2),
				at("d", -4, 0.3), at("e", 4, 0.4), at("f", 0, 0.5),
			},
			want: closestpair.Pair{Dist: 0.5, I: 0, J: 5},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := closestpair.Strip(tc.cs, 0, 10)
			assert.Equal(t, tc.want, p)

			slow, err := closestpair.Slow(tc.cs)
			require.NoError(t, err)
			assert.Equal(t, slow, p)
		})
	}
}

func TestPairLess(t *testing.T) {
	a := closestpair.Pair{Dist: 1, I: 0, J: 3}
	b := closestpair.Pair{Dist: 1, I: 1, J: 2}
	c := closestpair.Pair{Dist: 0.5, I: 4, J: 5}
	d := closestpair.Pair{Dist: 1, I: 0, J: 4}

	assert.True(t, a.Less(b))
	assert.True(t, c.Less(a))
	assert.True(t, a.Less(d))
	assert.False(t, a.Less(a))
}

func TestFinderByName(t *testing.T) {
	cs := []cluster.Cluster{at("a", 0, 0), at("b", 1, 0)}
	for _, name := range []string{closestpair.NameSlow, closestpair.NameFast} {
		f, err := closestpair.FinderByName(name)
		require.NoError(t, err)
		p, err := f(cs)
		require.NoError(t, err)
		assert.Equal(t, 1.0, p.Dist)
	}

	_, err := closestpair.FinderByName("quantum")
	assert.ErrorIs(t, err, closestpair.ErrUnknownFinder)
}
