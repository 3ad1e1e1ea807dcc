// Package heartrate loads a sparse time-stamped heart-rate series from
// a GPX recording and answers closest-sample-in-time queries against it.
package heartrate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"tcxfix/internal/gpx"
)

// Sample is one heart-rate reading. Samples keep the order they were
// encountered in the source file; the index never re-sorts them.
type Sample struct {
	Time time.Time
	BPM  int
}

const (
	// maxTolerance bounds how far in time a sample may sit from a query
	// instant and still be considered a match.
	maxTolerance = 5 * time.Second

	// earlyExitThreshold stops the scan once a sample this close has
	// been seen.
	earlyExitThreshold = 500 * time.Millisecond
)

// Load reads heart-rate samples from a GPX file. A missing file is not
// an error: the run proceeds with zero heart-rate data and the output
// simply carries no heart-rate values. Entries without a timestamp are
// skipped; entries whose heart-rate value is absent or zero are skipped
// as well — a zero reading is treated as "no data" by policy.
func Load(path string) ([]Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	doc, err := gpx.ParseReader(file)
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, pt := range doc.FlattenPoints() {
		if pt.Timestamp == "" {
			continue
		}

		t, err := gpx.ParseTime(pt.Timestamp)
		if err != nil {
			return nil, err
		}

		bpm, ok := pt.HeartRate()
		if !ok || bpm <= 0 {
			continue
		}

		samples = append(samples, Sample{Time: t, BPM: bpm})
	}

	return samples, nil
}

// Closest returns the heart rate of the sample whose timestamp is
// nearest to target among those strictly within the 5-second tolerance,
// scanning samples in stored order. The scan stops as soon as any
// sample lands under half a second from the target and returns the
// best match seen so far — a deliberate "good enough, stop now"
// shortcut, not a true nearest-neighbor guarantee. Callers that need
// exact nearest-neighbor semantics must not rely on this.
func Closest(target time.Time, samples []Sample) (int, bool) {
	best := 0
	found := false
	minDiff := maxTolerance

	for _, s := range samples {
		diff := target.Sub(s.Time)
		if diff < 0 {
			diff = -diff
		}

		if diff < minDiff {
			minDiff = diff
			best = s.BPM
			found = true
		}

		if diff < earlyExitThreshold {
			break
		}
	}

	return best, found
}
