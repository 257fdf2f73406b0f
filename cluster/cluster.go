package cluster

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// Cluster is a weighted point with identity. The zero value is the empty
// cluster positioned at the origin.
//
// Cluster is a value type: copying it is cheap and safe because the member
// slice is never written after construction.
type Cluster struct {
	members    []string
	center     r2.Vec
	population float64
	err        float64
}

// New builds a cluster from its parts. ids are copied, sorted and deduplicated.
func New(ids []string, center r2.Vec, population, err float64) Cluster {
	members := slices.Clone(ids)
	slices.Sort(members)
	members = slices.Compact(members)

	return Cluster{
		members:    members,
		center:     center,
		population: population,
		err:        err,
	}
}

// FromPoint returns the singleton cluster for p. Its error is zero.
func FromPoint(p Point) Cluster {
	return Cluster{
		members:    []string{p.ID},
		center:     p.Pos,
		population: p.Population,
	}
}

// Singletons returns one singleton cluster per point, in input order.
func Singletons(points []Point) []Cluster {
	out := make([]Cluster, len(points))
	for i, p := range points {
		out[i] = FromPoint(p)
	}

	return out
}

// Empty returns a cluster with no members and no population at center.
// It is the identity element of Merge.
func Empty(center r2.Vec) Cluster {
	return Cluster{center: center}
}

// MemberIDs returns a sorted copy of the member IDs.
func (c Cluster) MemberIDs() []string { return slices.Clone(c.members) }

// Len reports the number of members.
func (c Cluster) Len() int { return len(c.members) }

// Has reports whether id is a member of c.
func (c Cluster) Has(id string) bool {
	_, ok := slices.BinarySearch(c.members, id)

	return ok
}

// Center returns the centroid.
func (c Cluster) Center() r2.Vec { return c.center }

// Horiz returns the horizontal coordinate of the centroid.
func (c Cluster) Horiz() float64 { return c.center.X }

// Vert returns the vertical coordinate of the centroid.
func (c Cluster) Vert() float64 { return c.center.Y }

// Population returns the total population.
func (c Cluster) Population() float64 { return c.population }

// Error returns the incrementally tracked squared error.
// See ClusterError for the authoritative value.
func (c Cluster) Error() float64 { return c.err }

// IsNull reports whether the cluster carries no population.
func (c Cluster) IsNull() bool { return c.population == 0 }

// IsEmpty reports whether the cluster has neither members nor population.
func (c Cluster) IsEmpty() bool { return len(c.members) == 0 && c.population == 0 }

// Clone returns a deep copy of c.
func (c Cluster) Clone() Cluster {
	c.members = slices.Clone(c.members)

	return c
}

// String renders a short summary, e.g. "Cluster{n=3 center=(1.0000, 2.5000) pop=120}".
func (c Cluster) String() string {
	return fmt.Sprintf("Cluster{n=%d center=(%.4f, %.4f) pop=%g}",
		len(c.members), c.center.X, c.center.Y, c.population)
}

// Distance returns the Euclidean distance between the centroids of c and other.
//
// Complexity: O(1).
func (c Cluster) Distance(other Cluster) float64 {
	return r2.Norm(r2.Sub(c.center, other.center))
}

// Merge returns the union of c and other. Neither operand is modified.
//
// Rules:
//   - Centroid: population-weighted average of both centroids. When both
//     populations are zero, the two centroids are averaged with equal
//     weights regardless of member counts.
//   - Population: sum of both populations.
//   - Members: sorted union.
//   - Error: e₁ + e₂ + p₁·|c′−c₁|² + p₂·|c′−c₂|², i.e. both parents' error
//     re-expressed around the new centroid c′.
//   - An empty operand (see IsEmpty) leaves the other operand unchanged.
//
// Complexity: O(|c| + |other|).
func (c Cluster) Merge(other Cluster) Cluster {
	if other.IsEmpty() {
		return c.Clone()
	}
	if c.IsEmpty() {
		return other.Clone()
	}

	total := c.population + other.population
	wSelf, wOther := mergeWeights(c, other, total)
	center := r2.Add(r2.Scale(wSelf, c.center), r2.Scale(wOther, other.center))

	shift := c.population*r2.Norm2(r2.Sub(center, c.center)) +
		other.population*r2.Norm2(r2.Sub(center, other.center))

	return Cluster{
		members:    unionSorted(c.members, other.members),
		center:     center,
		population: total,
		err:        c.err + other.err + shift,
	}
}

// mergeWeights returns the averaging weights of a and b. They always sum to 1.
// Without population both centroids count equally.
func mergeWeights(a, b Cluster, total float64) (float64, float64) {
	if total > 0 {
		return a.population / total, b.population / total
	}

	return 0.5, 0.5
}

// ClusterError returns Σ pᵢ·|xᵢ − center|² over every member, reading each
// member's position and population from tbl.
//
// Errors:
//   - ErrUnknownID: a member is missing from tbl.
//
// Complexity: O(|members|).
func (c Cluster) ClusterError(tbl *Table) (float64, error) {
	var total float64
	for _, id := range c.members {
		p, err := tbl.Lookup(id)
		if err != nil {
			return 0, err
		}
		total += p.Population * r2.Norm2(r2.Sub(p.Pos, c.center))
	}

	return total, nil
}

// unionSorted merges two sorted, duplicate-free slices into a new one.
func unionSorted(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}

// CloneAll returns a deep copy of clusters.
func CloneAll(clusters []Cluster) []Cluster {
	out := make([]Cluster, len(clusters))
	for i, c := range clusters {
		out[i] = c.Clone()
	}

	return out
}

// SortByHoriz stably sorts clusters by ascending horizontal centre.
//
// Complexity: O(n log n).
func SortByHoriz(clusters []Cluster) {
	slices.SortStableFunc(clusters, compareHoriz)
}

// IsSortedByHoriz reports whether clusters are in ascending horizontal order.
//
// Complexity: O(n).
func IsSortedByHoriz(clusters []Cluster) bool {
	return slices.IsSortedFunc(clusters, compareHoriz)
}

func compareHoriz(a, b Cluster) int { return cmp.Compare(a.center.X, b.center.X) }

// TotalPopulation returns the summed population of clusters.
func TotalPopulation(clusters []Cluster) float64 {
	var total float64
	for _, c := range clusters {
		total += c.population
	}

	return total
}
