package trail

import (
	"math"
	"strconv"

	"trailviewer/internal/shared/geo"
)

// DefaultCentre is used to centre the map when a trail has no points.
var DefaultCentre = Point{Lat: 52.0, Lon: 5.0}

// New summarizes points into a Trail. The slice is copied.
func New(name string, points []Point) Trail {
	pts := make([]Point, len(points))
	copy(pts, points)
	return Trail{
		Name:   name,
		Points: pts,
		Centre: Centre(pts),
		Length: Length(pts),
	}
}

// Centre returns the unweighted mean latitude and longitude of points,
// or DefaultCentre when there are none.
func Centre(points []Point) Point {
	if len(points) == 0 {
		return DefaultCentre
	}
	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Lat
		sumLon += p.Lon
	}
	n := float64(len(points))
	return Point{Lat: sumLat / n, Lon: sumLon / n}
}

// Length sums the haversine distance in metres between consecutive points.
func Length(points []Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		total += geo.HaversineM(a.Lat, a.Lon, b.Lat, b.Lon)
	}
	return total
}

// LengthKm is the length in kilometres rounded to one decimal.
func (t Trail) LengthKm() float64 {
	return roundKm(t.Length)
}

func (t Trail) LengthLabel() string {
	return KmLabel(t.Length)
}

// KmLabel formats a distance in metres as "<km with one decimal> km".
func KmLabel(metres float64) string {
	return strconv.FormatFloat(roundKm(metres), 'f', 1, 64) + " km"
}

func roundKm(metres float64) float64 {
	return math.Round(metres/100) / 10
}

func (t Trail) Start() (Point, bool) {
	if len(t.Points) == 0 {
		return Point{}, false
	}
	return t.Points[0], true
}

func (t Trail) End() (Point, bool) {
	if len(t.Points) == 0 {
		return Point{}, false
	}
	return t.Points[len(t.Points)-1], true
}

func (t Trail) Summary() Summary {
	return Summary{
		Name:        t.Name,
		Centre:      t.Centre,
		LengthM:     t.Length,
		LengthLabel: t.LengthLabel(),
		PointCount:  len(t.Points),
	}
}
