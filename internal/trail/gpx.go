package trail

import (
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"
)

// Parse reads GPX data into a Trail. name is used unless a track or route
// carries its own. Route points are only read when no track point exists.
func Parse(name string, data []byte) (Trail, error) {
	doc, err := gpx.ParseBytes(data)
	if err != nil {
		return Trail{}, fmt.Errorf("parse %s: %w", name, err)
	}

	var points []Point
	foundTrackPoints := false
	for _, track := range doc.Tracks {
		if track.Name != "" {
			name = track.Name
		}
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				points = append(points, Point{Lat: p.GetLatitude(), Lon: p.GetLongitude()})
				foundTrackPoints = true
			}
		}
	}

	if !foundTrackPoints {
		for _, route := range doc.Routes {
			if route.Name != "" {
				name = route.Name
			}
			for _, p := range route.Points {
				points = append(points, Point{Lat: p.GetLatitude(), Lon: p.GetLongitude()})
			}
		}
	}

	return New(name, points), nil
}
