// Package track builds the merged time series out of a GPS recording
// and a heart-rate index, and rescales its distance against a trusted
// total.
package track

import (
	"errors"
	"time"

	"tcxfix/internal/geo"
	"tcxfix/internal/gpx"
	"tcxfix/internal/heartrate"
)

// ErrEmptyTrack reports that the GPS file parsed but yielded zero
// usable points. Terminal for the run.
var ErrEmptyTrack = errors.New("no usable track points found")

// Point is one entry of the merged series.
type Point struct {
	Time      time.Time
	Lat       float64
	Lon       float64
	Elevation float64

	// RawDistance is the cumulative great-circle distance up to this
	// point, before correction. Non-decreasing across the series.
	RawDistance float64

	// Distance is RawDistance scaled by the correction ratio. Filled by
	// Rescale, zero until then.
	Distance float64

	// HeartRate in bpm; 0 means no sample matched within tolerance.
	HeartRate int
}

// accumulator carries the traversal state between consecutive points.
type accumulator struct {
	prevLat float64
	prevLon float64
	hasPrev bool
	total   float64
}

// Build walks the GPS points in document order and produces the merged
// series. Points without a timestamp are dropped entirely; elevation
// defaults to 0 when absent. The first retained point contributes a
// step distance of 0, every later point the great-circle distance from
// its predecessor. Each retained point is matched against the
// heart-rate index. Returns ErrEmptyTrack when nothing is retained.
func Build(points []gpx.Point, samples []heartrate.Sample) ([]Point, error) {
	series := make([]Point, 0, len(points))
	acc := accumulator{}

	for _, pt := range points {
		if pt.Timestamp == "" {
			continue
		}

		t, err := gpx.ParseTime(pt.Timestamp)
		if err != nil {
			return nil, err
		}

		step := 0.0
		if acc.hasPrev {
			step = geo.Distance(acc.prevLon, acc.prevLat, pt.Lon, pt.Lat)
		}
		acc.total += step

		built := Point{
			Time:        t,
			Lat:         pt.Lat,
			Lon:         pt.Lon,
			Elevation:   pt.Elevation,
			RawDistance: acc.total,
		}

		if bpm, ok := heartrate.Closest(t, samples); ok {
			built.HeartRate = bpm
		}

		series = append(series, built)
		acc.prevLat, acc.prevLon, acc.hasPrev = pt.Lat, pt.Lon, true
	}

	if len(series) == 0 {
		return nil, ErrEmptyTrack
	}

	return series, nil
}
