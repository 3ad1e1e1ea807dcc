package tcx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tcxfix/internal/track"
)

func render(t *testing.T, doc *TrainingCenterDatabase) string {
	t.Helper()
	var buf strings.Builder
	if err := doc.WriteToWriter(&buf); err != nil {
		t.Fatalf("WriteToWriter failed: %v", err)
	}
	return buf.String()
}

func TestFormatTimePinsMilliseconds(t *testing.T) {
	instant := time.Date(2025, 1, 1, 10, 0, 0, 123456789, time.UTC)
	got := FormatTime(instant)
	want := "2025-01-01T10:00:00.000Z"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatTimeNormalizesToUTC(t *testing.T) {
	instant := time.Date(2025, 1, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	got := FormatTime(instant)
	want := "2025-01-01T10:00:00.000Z"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestBuildDocumentShape(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	points := []track.Point{
		{Time: start, Lat: 46.0, Lon: 7.0, Elevation: 1000, Distance: 0, HeartRate: 140},
		{Time: start.Add(time.Minute), Lat: 46.001, Lon: 7.0, Elevation: 1005, Distance: 111.25},
	}

	out := render(t, Build(points, start, 60, 222.5))

	for _, fragment := range []string{
		`<TrainingCenterDatabase xmlns="http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2">`,
		`<Activity Sport="Running">`,
		`<Id>2025-01-01T10:00:00.000Z</Id>`,
		`<Lap StartTime="2025-01-01T10:00:00.000Z">`,
		`<TotalTimeSeconds>60</TotalTimeSeconds>`,
		`<DistanceMeters>222.5</DistanceMeters>`,
		`<Intensity>Active</Intensity>`,
		`<TriggerMethod>Manual</TriggerMethod>`,
		`<Time>2025-01-01T10:01:00.000Z</Time>`,
		`<LatitudeDegrees>46.001</LatitudeDegrees>`,
		`<LongitudeDegrees>7</LongitudeDegrees>`,
		`<AltitudeMeters>1005</AltitudeMeters>`,
		`<DistanceMeters>111.25</DistanceMeters>`,
		`<HeartRateBpm>`,
		`<Value>140</Value>`,
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %q\n%s", fragment, out)
		}
	}

	if got := strings.Count(out, "<Trackpoint>"); got != 2 {
		t.Errorf("expected 2 trackpoints, got %d", got)
	}

	// Only the first point carries a heart rate.
	if got := strings.Count(out, "<HeartRateBpm>"); got != 1 {
		t.Errorf("expected 1 HeartRateBpm element, got %d", got)
	}
}

func TestBuildRoundsDistancesToTwoDecimals(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	points := []track.Point{
		{Time: start, Lat: 46.0, Lon: 7.0, Distance: 123.456789},
	}

	out := render(t, Build(points, start, 0, 123.456789))

	if !strings.Contains(out, `<DistanceMeters>123.46</DistanceMeters>`) {
		t.Errorf("expected per-point distance rounded to 2 decimals\n%s", out)
	}
}

func TestBuildDegenerateSinglePoint(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	points := []track.Point{
		{Time: start, Lat: 46.0, Lon: 7.0},
	}

	out := render(t, Build(points, start, 0, 5000))

	if !strings.Contains(out, `<TotalTimeSeconds>0</TotalTimeSeconds>`) {
		t.Errorf("expected zero elapsed time\n%s", out)
	}
	if !strings.Contains(out, `<DistanceMeters>0.00</DistanceMeters>`) {
		t.Errorf("expected per-point distance 0.00\n%s", out)
	}
	if got := strings.Count(out, "<Trackpoint>"); got != 1 {
		t.Errorf("expected 1 trackpoint, got %d", got)
	}
}

func TestBuildOmitsZeroHeartRate(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	points := []track.Point{
		{Time: start, Lat: 46.0, Lon: 7.0},
		{Time: start.Add(time.Second), Lat: 46.0001, Lon: 7.0},
	}

	out := render(t, Build(points, start, 1, 100))

	if strings.Contains(out, "HeartRateBpm") {
		t.Errorf("expected no HeartRateBpm elements\n%s", out)
	}
	if strings.Contains(out, "<Value>0</Value>") {
		t.Errorf("zero heart rate must never be emitted\n%s", out)
	}
}

func TestWriteCreatesFile(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	doc := Build([]track.Point{{Time: start, Lat: 46.0, Lon: 7.0}}, start, 0, 0)

	path := filepath.Join(t.TempDir(), "out.tcx")
	if err := doc.Write(path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(data), `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("expected XML header, got %q", string(data[:min(len(data), 60)]))
	}
}
