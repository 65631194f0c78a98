package trail

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LineString returns the path in orb's lon/lat order.
func (t Trail) LineString() orb.LineString {
	ls := make(orb.LineString, 0, len(t.Points))
	for _, p := range t.Points {
		ls = append(ls, orb.Point{p.Lon, p.Lat})
	}
	return ls
}

// FeatureCollection renders the trail as a path feature plus start and end markers.
func (t Trail) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	path := geojson.NewFeature(t.LineString())
	path.Properties["name"] = t.Name
	path.Properties["length_m"] = t.Length
	path.Properties["length_label"] = t.LengthLabel()
	fc.Append(path)

	if start, ok := t.Start(); ok {
		fc.Append(marker(start, "start"))
	}
	if end, ok := t.End(); ok {
		fc.Append(marker(end, "end"))
	}
	return fc
}

func marker(p Point, role string) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{p.Lon, p.Lat})
	f.Properties["role"] = role
	return f
}
