package track

// Rescale computes the correction ratio between the target total
// distance (meters) and the raw accumulated total, applies it uniformly
// to every point's Distance, and returns it. When the raw total is 0
// (single-point or fully coincident track) the ratio defaults to 1.0
// and every corrected distance stays 0 rather than dividing by zero.
// No other field is touched.
func Rescale(points []Point, targetMeters float64) float64 {
	if len(points) == 0 {
		return 1.0
	}

	rawTotal := points[len(points)-1].RawDistance

	ratio := 1.0
	if rawTotal > 0 {
		ratio = targetMeters / rawTotal
	}

	for i := range points {
		points[i].Distance = points[i].RawDistance * ratio
	}

	return ratio
}
