package trail

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Trail is a named, ordered path with its derived centre and length.
// Build it with New so the derived fields match the points.
type Trail struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
	Centre Point   `json:"centre"`
	Length float64 `json:"length_m"`
}

// Summary is the point-free view of a trail served by the JSON endpoints.
type Summary struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Centre      Point   `json:"centre"`
	LengthM     float64 `json:"length_m"`
	LengthLabel string  `json:"length_label"`
	PointCount  int     `json:"point_count"`
}
