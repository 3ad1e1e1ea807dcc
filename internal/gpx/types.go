package gpx

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
)

// RawXML preserves nested extension blocks without re-parsing them.
// We store the inner XML bytes verbatim so we can inspect extensions
// emitted by other tools (Garmin, Strava, etc.) without modelling
// every vendor schema.
type RawXML []byte

func (r *RawXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	type inner struct {
		Content string `xml:",innerxml"`
	}

	var data inner
	if err := d.DecodeElement(&data, &start); err != nil {
		return err
	}

	if len(data.Content) == 0 {
		*r = nil
		return nil
	}

	*r = append((*r)[:0], data.Content...)
	return nil
}

// Point represents a GPS track point with all metadata.
// The time element is kept as raw text because recording devices emit
// timestamps in several ISO-8601 variants; ParseTime normalizes them.
type Point struct {
	Lat       float64 `xml:"lat,attr"`
	Lon       float64 `xml:"lon,attr"`
	Elevation float64 `xml:"ele,omitempty"`
	Timestamp string  `xml:"time,omitempty"`

	// Extensions (Garmin, Strava, etc.) - preserve as raw XML
	Extensions RawXML `xml:"extensions,omitempty"`
}

// HeartRate extracts a beats-per-minute value from the point's
// extensions subtree. It matches any element with local name "hr"
// regardless of namespace prefix. Returns false when the point carries
// no heart-rate extension or the value is not an integer.
func (p Point) HeartRate() (int, bool) {
	if len(p.Extensions) == 0 {
		return 0, false
	}

	decoder := xml.NewDecoder(bytes.NewReader(p.Extensions))
	for {
		tok, err := decoder.Token()
		if err != nil {
			return 0, false
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "hr" {
			continue
		}

		var value string
		if err := decoder.DecodeElement(&value, &start); err != nil {
			return 0, false
		}

		bpm, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, false
		}
		return bpm, true
	}
}

// Track represents a GPX track with segments
type Track struct {
	Name        string         `xml:"name,omitempty"`
	Description string         `xml:"desc,omitempty"`
	Segments    []TrackSegment `xml:"trkseg"`
	Extensions  RawXML         `xml:"extensions,omitempty"`
}

// TrackSegment represents a track segment
type TrackSegment struct {
	Points     []Point `xml:"trkpt"`
	Extensions RawXML  `xml:"extensions,omitempty"`
}

// GPX represents the full GPX file structure
type GPX struct {
	XMLName xml.Name `xml:"gpx"`
	Version string   `xml:"version,attr"`
	Creator string   `xml:"creator,attr"`

	Metadata   Metadata `xml:"metadata,omitempty"`
	Tracks     []Track  `xml:"trk"`
	Extensions RawXML   `xml:"extensions,omitempty"`
}

// Metadata represents GPX metadata
type Metadata struct {
	Name        string `xml:"name,omitempty"`
	Description string `xml:"desc,omitempty"`
	Author      string `xml:"author,omitempty"`
	Time        string `xml:"time,omitempty"`
	Extensions  RawXML `xml:"extensions,omitempty"`
}
