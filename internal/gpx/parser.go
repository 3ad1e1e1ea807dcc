package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Parse reads and parses a GPX file, preserving extension subtrees.
// A missing file surfaces as the wrapped os.Open error so callers can
// distinguish absence from malformed content.
func Parse(filename string) (*GPX, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader parses GPX from an io.Reader
func ParseReader(r io.Reader) (*GPX, error) {
	decoder := xml.NewDecoder(r)

	var gpxData GPX
	if err := decoder.Decode(&gpxData); err != nil {
		return nil, fmt.Errorf("failed to parse GPX: %w", err)
	}

	return &gpxData, nil
}

// FlattenPoints returns all points from all tracks and segments in document order
func (g *GPX) FlattenPoints() []Point {
	var points []Point

	for _, track := range g.Tracks {
		for _, segment := range track.Segments {
			points = append(points, segment.Points...)
		}
	}

	return points
}
