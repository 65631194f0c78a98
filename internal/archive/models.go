package archive

import (
	"time"

	"trailviewer/internal/trail"
)

// Record is an archived trail without its points.
type Record struct {
	trail.Summary
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}
