package render

import (
	"embed"
	"io/fs"
	"net/http"
	"strconv"

	"trailviewer/internal/trail"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

// Zoom is the initial zoom before the map is fit to the trail bounds.
const Zoom = 13

// Engine returns the fiber view engine over the embedded templates.
func Engine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}

// Card is one trail as the gallery template draws it. Coordinates are
// [lat, lon] pairs, the order Leaflet expects.
type Card struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	LengthLabel string       `json:"length_label"`
	Centre      [2]float64   `json:"centre"`
	Path        [][2]float64 `json:"path"`
	Start       *[2]float64  `json:"start,omitempty"`
	End         *[2]float64  `json:"end,omitempty"`
	Zoom        int          `json:"zoom"`
}

// Page is the gallery view model.
type Page struct {
	Title      string     `json:"title"`
	Tiles      Provider   `json:"tiles"`
	Providers  []Provider `json:"providers"`
	Cards      []Card     `json:"cards"`
	Uploaded   bool       `json:"uploaded"`
	Collection string     `json:"collection"`
}

func NewCard(i int, t trail.Trail) Card {
	card := Card{
		ID:          "trail-" + strconv.Itoa(i),
		Name:        t.Name,
		LengthLabel: t.LengthLabel(),
		Centre:      latLng(t.Centre),
		Path:        make([][2]float64, 0, len(t.Points)),
		Zoom:        Zoom,
	}
	for _, p := range t.Points {
		card.Path = append(card.Path, latLng(p))
	}
	if p, ok := t.Start(); ok {
		start := latLng(p)
		card.Start = &start
	}
	if p, ok := t.End(); ok {
		end := latLng(p)
		card.End = &end
	}
	return card
}

func NewPage(trails []trail.Trail, tiles Provider, catalog *Catalog) Page {
	page := Page{
		Title:      "Simple .gpx tracks viewer",
		Tiles:      tiles,
		Providers:  catalog.Providers(),
		Cards:      make([]Card, 0, len(trails)),
		Collection: "archive",
	}
	for i, t := range trails {
		page.Cards = append(page.Cards, NewCard(i, t))
	}
	return page
}

func latLng(p trail.Point) [2]float64 {
	return [2]float64{p.Lat, p.Lon}
}
