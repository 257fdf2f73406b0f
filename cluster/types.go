package cluster

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for cluster and table operations.
var (
	// ErrUnknownID is returned when a member ID is absent from the point table.
	ErrUnknownID = errors.New("cluster: member id not found in point table")

	// ErrDuplicateID is returned when a point table is built with a repeated ID.
	ErrDuplicateID = errors.New("cluster: duplicate point id")

	// ErrEmptyID is returned when a point table is built with a blank ID.
	ErrEmptyID = errors.New("cluster: point id must be non-empty")
)

// Point is one input row: (id, horiz, vert, population, risk).
// Risk is carried through for reporting and never inspected by the engines.
type Point struct {
	ID         string
	Pos        r2.Vec
	Population float64
	Risk       float64
}

// Table is an immutable id → Point index over the original input rows.
type Table struct {
	points []Point
	index  map[string]int
}

// NewTable indexes points by ID. Input order is preserved by Points.
//
// Errors:
//   - ErrEmptyID:     a point has an empty ID.
//   - ErrDuplicateID: two points share an ID.
//
// Complexity: O(n) time and space.
func NewTable(points []Point) (*Table, error) {
	t := &Table{
		points: make([]Point, len(points)),
		index:  make(map[string]int, len(points)),
	}
	copy(t.points, points)

	for i, p := range t.points {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: row %d", ErrEmptyID, i)
		}
		if _, ok := t.index[p.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, p.ID)
		}
		t.index[p.ID] = i
	}

	return t, nil
}

// Lookup returns the point registered under id.
func (t *Table) Lookup(id string) (Point, error) {
	i, ok := t.index[id]
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrUnknownID, id)
	}

	return t.points[i], nil
}

// Len reports the number of points in the table.
func (t *Table) Len() int { return len(t.points) }

// Points returns a copy of the points in input order.
func (t *Table) Points() []Point {
	out := make([]Point, len(t.points))
	copy(out, t.points)

	return out
}
