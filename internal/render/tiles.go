package render

import (
	"net/url"
	"strings"
)

const DefaultTiles = "Stadia Outdoors"

// Provider is a Leaflet tile layer definition.
type Provider struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
	Subdomains  string `json:"subdomains,omitempty"`
	MaxZoom     int    `json:"max_zoom"`
}

const (
	osmAttribution    = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
	cartoAttribution  = osmAttribution + ` &copy; <a href="https://carto.com/attributions">CARTO</a>`
	stadiaAttribution = `&copy; <a href="https://www.stadiamaps.com/">Stadia Maps</a> &copy; <a href="https://openmaptiles.org/">OpenMapTiles</a> ` + osmAttribution
)

var builtinProviders = []Provider{
	{
		Name:        "Cartodb Positron",
		URL:         "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png",
		Attribution: cartoAttribution,
		Subdomains:  "abcd",
		MaxZoom:     20,
	},
	{
		Name:        "CartoDB Voyager",
		URL:         "https://{s}.basemaps.cartocdn.com/rastertiles/voyager/{z}/{x}/{y}{r}.png",
		Attribution: cartoAttribution,
		Subdomains:  "abcd",
		MaxZoom:     20,
	},
	{
		Name:        "OpenStreetMap Mapnik",
		URL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: osmAttribution,
		MaxZoom:     19,
	},
	{
		Name:        "Stadia Outdoors",
		URL:         "https://tiles.stadiamaps.com/tiles/outdoors/{z}/{x}/{y}{r}.png",
		Attribution: stadiaAttribution,
		MaxZoom:     20,
	},
	{
		Name:        "Stadia StamenTerrain",
		URL:         "https://tiles.stadiamaps.com/tiles/stamen_terrain/{z}/{x}/{y}{r}.png",
		Attribution: `&copy; <a href="https://stamen.com/">Stamen Design</a> ` + stadiaAttribution,
		MaxZoom:     18,
	},
}

// Catalog is the set of map styles a viewer can pick from.
type Catalog struct {
	providers []Provider
	fallback  Provider
}

// NewCatalog builds the catalog. An unknown default falls back to DefaultTiles.
// A non-empty stadiaKey is appended to Stadia tile URLs.
func NewCatalog(defaultName, stadiaKey string) *Catalog {
	c := &Catalog{providers: make([]Provider, len(builtinProviders))}
	copy(c.providers, builtinProviders)
	if stadiaKey != "" {
		for i, p := range c.providers {
			if strings.HasPrefix(p.URL, "https://tiles.stadiamaps.com/") {
				c.providers[i].URL = p.URL + "?api_key=" + url.QueryEscape(stadiaKey)
			}
		}
	}

	c.fallback = c.find(DefaultTiles)
	if p, ok := c.lookup(defaultName); ok {
		c.fallback = p
	}
	return c
}

func (c *Catalog) Providers() []Provider {
	out := make([]Provider, len(c.providers))
	copy(out, c.providers)
	return out
}

func (c *Catalog) Default() Provider {
	return c.fallback
}

// Lookup finds a provider by case-insensitive name, or returns the default.
func (c *Catalog) Lookup(name string) Provider {
	if p, ok := c.lookup(name); ok {
		return p
	}
	return c.fallback
}

func (c *Catalog) lookup(name string) (Provider, bool) {
	name = strings.TrimSpace(name)
	for _, p := range c.providers {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Provider{}, false
}

func (c *Catalog) find(name string) Provider {
	p, _ := c.lookup(name)
	return p
}
