package tcx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"time"

	"tcxfix/internal/track"
)

// Build assembles the output document from the corrected merged series.
// start is the series' first instant, totalSeconds the elapsed time
// between last and first point (0 for a single-point track), and
// totalMeters the total corrected distance reported in the lap.
func Build(points []track.Point, start time.Time, totalSeconds, totalMeters float64) *TrainingCenterDatabase {
	trackpoints := make([]Trackpoint, 0, len(points))
	for _, p := range points {
		tp := Trackpoint{
			Time: FormatTime(p.Time),
			Position: Position{
				LatitudeDegrees:  p.Lat,
				LongitudeDegrees: p.Lon,
			},
			AltitudeMeters: p.Elevation,
			DistanceMeters: roundedMeters(p.Distance),
		}
		if p.HeartRate > 0 {
			tp.HeartRateBpm = &HeartRateBpm{Value: p.HeartRate}
		}
		trackpoints = append(trackpoints, tp)
	}

	id := FormatTime(start)

	return &TrainingCenterDatabase{
		XMLNS: Namespace,
		Activities: Activities{
			Activity: Activity{
				Sport: "Running",
				ID:    id,
				Lap: Lap{
					StartTime:        id,
					TotalTimeSeconds: totalSeconds,
					DistanceMeters:   totalMeters,
					Intensity:        "Active",
					TriggerMethod:    "Manual",
					Track:            Track{Trackpoints: trackpoints},
				},
			},
		},
	}
}

// Write saves the document to a file. All-or-nothing to a single path:
// a partial file left behind by a failed write is not cleaned up, the
// run fails loudly and is expected to be rerun.
func (d *TrainingCenterDatabase) Write(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return d.WriteToWriter(file)
}

// WriteToWriter writes the document to an io.Writer
func (d *TrainingCenterDatabase) WriteToWriter(w io.Writer) error {
	// Write XML header
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")

	if err := encoder.Encode(d); err != nil {
		return fmt.Errorf("failed to encode TCX: %w", err)
	}

	return nil
}
