// Package tcx models the Garmin Training Center Database document and
// serializes the corrected merged series into it.
package tcx

import (
	"encoding/xml"
	"strconv"
	"time"
)

// Namespace is the TrainingCenterDatabase v2 schema namespace.
const Namespace = "http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2"

// timeLayout renders the date-time part; the millisecond field is fixed
// at .000 regardless of the input's sub-second precision.
const timeLayout = "2006-01-02T15:04:05"

// FormatTime renders an instant the way TCX consumers expect: UTC with
// a literal "Z" suffix and the millisecond field pinned to .000.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout) + ".000Z"
}

// roundedMeters marshals a distance with exactly two decimal digits.
type roundedMeters float64

func (m roundedMeters) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(strconv.FormatFloat(float64(m), 'f', 2, 64), start)
}

// TrainingCenterDatabase is the document root.
type TrainingCenterDatabase struct {
	XMLName    xml.Name   `xml:"TrainingCenterDatabase"`
	XMLNS      string     `xml:"xmlns,attr"`
	Activities Activities `xml:"Activities"`
}

// Activities wraps the single activity of the run.
type Activities struct {
	Activity Activity `xml:"Activity"`
}

// Activity carries one lap; multi-lap output is out of scope.
type Activity struct {
	Sport string `xml:"Sport,attr"`
	ID    string `xml:"Id"`
	Lap   Lap    `xml:"Lap"`
}

// Lap summarizes the whole activity and holds the track.
type Lap struct {
	StartTime        string  `xml:"StartTime,attr"`
	TotalTimeSeconds float64 `xml:"TotalTimeSeconds"`
	DistanceMeters   float64 `xml:"DistanceMeters"`
	Intensity        string  `xml:"Intensity"`
	TriggerMethod    string  `xml:"TriggerMethod"`
	Track            Track   `xml:"Track"`
}

// Track holds the trackpoints in series order.
type Track struct {
	Trackpoints []Trackpoint `xml:"Trackpoint"`
}

// Trackpoint is one emitted point. HeartRateBpm is omitted entirely
// when the point carries no heart rate; it is never zero-filled.
type Trackpoint struct {
	Time           string        `xml:"Time"`
	Position       Position      `xml:"Position"`
	AltitudeMeters float64       `xml:"AltitudeMeters"`
	DistanceMeters roundedMeters `xml:"DistanceMeters"`
	HeartRateBpm   *HeartRateBpm `xml:"HeartRateBpm,omitempty"`
}

// Position is a latitude/longitude pair in decimal degrees.
type Position struct {
	LatitudeDegrees  float64 `xml:"LatitudeDegrees"`
	LongitudeDegrees float64 `xml:"LongitudeDegrees"`
}

// HeartRateBpm wraps the beats-per-minute value.
type HeartRateBpm struct {
	Value int `xml:"Value"`
}
