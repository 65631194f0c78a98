package trail

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
)

func TestFeatureCollection(t *testing.T) {
	tr := New("pair", []Point{{Lat: 52.0, Lon: 5.0}, {Lat: 52.0, Lon: 5.1}})
	fc := tr.FeatureCollection()
	if len(fc.Features) != 3 {
		t.Fatalf("expected path and two markers, got %d features", len(fc.Features))
	}

	ls, ok := fc.Features[0].Geometry.(orb.LineString)
	if !ok || len(ls) != 2 {
		t.Fatalf("expected line string geometry")
	}
	if ls[0].Lon() != 5.0 || ls[0].Lat() != 52.0 {
		t.Fatalf("expected lon/lat order, got %v", ls[0])
	}
	if fc.Features[0].Properties["length_label"] != "6.9 km" {
		t.Fatalf("unexpected properties: %v", fc.Features[0].Properties)
	}
	if fc.Features[1].Properties["role"] != "start" || fc.Features[2].Properties["role"] != "end" {
		t.Fatalf("unexpected marker roles")
	}

	if _, err := json.Marshal(fc); err != nil {
		t.Fatalf("marshal: %v", err)
	}
}

func TestFeatureCollectionEmpty(t *testing.T) {
	fc := New("empty", nil).FeatureCollection()
	if len(fc.Features) != 1 {
		t.Fatalf("expected only the path feature, got %d", len(fc.Features))
	}
}
