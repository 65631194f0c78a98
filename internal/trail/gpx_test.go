package trail

import "testing"

const trackGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <name>Morning Run</name>
    <trkseg>
      <trkpt lat="52.0" lon="5.0"></trkpt>
      <trkpt lat="52.0" lon="5.05"></trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="52.0" lon="5.1"></trkpt>
    </trkseg>
  </trk>
  <rte>
    <name>Ignored Route</name>
    <rtept lat="10.0" lon="10.0"></rtept>
  </rte>
</gpx>`

const routeGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <rte>
    <name>Gravel Loop</name>
    <rtept lat="46.0" lon="7.0"></rtept>
    <rtept lat="46.1" lon="7.0"></rtept>
  </rte>
</gpx>`

const emptyTrackGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <trkseg></trkseg>
  </trk>
  <rte>
    <rtept lat="46.0" lon="7.0"></rtept>
  </rte>
</gpx>`

func TestParseTracks(t *testing.T) {
	tr, err := Parse("run.gpx", []byte(trackGPX))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tr.Name != "Morning Run" {
		t.Fatalf("expected track name, got %q", tr.Name)
	}
	if len(tr.Points) != 3 {
		t.Fatalf("expected 3 track points, got %d", len(tr.Points))
	}
	if tr.Points[2] != (Point{Lat: 52.0, Lon: 5.1}) {
		t.Fatalf("unexpected last point: %+v", tr.Points[2])
	}
	if tr.Length <= 0 {
		t.Fatalf("expected positive length")
	}
}

func TestParseRoutesWhenNoTrackPoints(t *testing.T) {
	tr, err := Parse("loop.gpx", []byte(routeGPX))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tr.Name != "Gravel Loop" || len(tr.Points) != 2 {
		t.Fatalf("unexpected trail: %+v", tr)
	}
}

func TestParseFallsBackToRoutesForEmptyTrack(t *testing.T) {
	tr, err := Parse("upload.gpx", []byte(emptyTrackGPX))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tr.Name != "upload.gpx" {
		t.Fatalf("expected file name to be kept, got %q", tr.Name)
	}
	if len(tr.Points) != 1 || tr.Centre != (Point{Lat: 46.0, Lon: 7.0}) {
		t.Fatalf("expected route point, got %+v", tr.Points)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse("bad.gpx", []byte("<gpx><trk>")); err == nil {
		t.Fatalf("expected parse error")
	}
}
