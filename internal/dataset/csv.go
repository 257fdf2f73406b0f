package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/kyleyasumiishi/geocluster/cluster"
)

// csvHeader names the fields of a header-less row.
var csvHeader = []string{"id", "horiz", "vert", "population", "risk"}

type row struct {
	ID         string  `csv:"id"`
	Horiz      float64 `csv:"horiz"`
	Vert       float64 `csv:"vert"`
	Population float64 `csv:"population"`
	Risk       float64 `csv:"risk"`
}

// LoadCSV reads a point table from the file at path.
func LoadCSV(path string) ([]cluster.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	points, err := ReadCSV(f)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: load %s", path)
	}

	return points, nil
}

// ReadCSV decodes header-less id,horiz,vert,population,risk rows from r.
// Errors name the 1-based line that failed.
func ReadCSV(r io.Reader) ([]cluster.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	cr.TrimLeadingSpace = true

	dec, err := csvutil.NewDecoder(cr, csvHeader...)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: csv decoder")
	}

	var points []cluster.Point
	for line := 1; ; line++ {
		var rec row
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, eris.Wrapf(err, "dataset: line %d", line)
		}
		if rec.ID == "" {
			return nil, eris.Errorf("dataset: line %d: empty id", line)
		}
		points = append(points, cluster.Point{
			ID:         rec.ID,
			Pos:        r2.Vec{X: rec.Horiz, Y: rec.Vert},
			Population: rec.Population,
			Risk:       rec.Risk,
		})
	}

	return points, nil
}
