package main

import (
	"fmt"
	"strconv"
	"strings"
)

const tileSize = 256.0

// BaseLayer is a raster tile source selectable from the layer control.
type BaseLayer struct {
	Name            string `json:"name"`
	URLTemplate     string `json:"url_template"` // {s} {z} {x} {y} {r} placeholders
	Subdomains      string `json:"subdomains,omitempty"`
	MaxZoom         int    `json:"max_zoom"`
	Attribution     string `json:"attribution"`      // HTML
	AttributionText string `json:"attribution_text"` // Plain text for SVG output
	Background      string `json:"background"`       // Fill shown behind (and instead of) tiles
}

var baseLayers = []BaseLayer{
	{
		Name:            "Carto Voyager",
		URLTemplate:     "https://{s}.basemaps.cartocdn.com/rastertiles/voyager/{z}/{x}/{y}{r}.png",
		Subdomains:      "abcd",
		MaxZoom:         20,
		Attribution:     `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors &copy; <a href="https://carto.com/attributions">CARTO</a>`,
		AttributionText: "© OpenStreetMap contributors © CARTO",
		Background:      "#F2EFE9",
	},
	{
		Name:            "Carto Dark Matter",
		URLTemplate:     "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png",
		Subdomains:      "abcd",
		MaxZoom:         20,
		Attribution:     `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors &copy; <a href="https://carto.com/attributions">CARTO</a>`,
		AttributionText: "© OpenStreetMap contributors © CARTO",
		Background:      "#262626",
	},
	{
		Name:            "Esri World Imagery",
		URLTemplate:     "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
		MaxZoom:         19,
		Attribution:     "Tiles &copy; Esri &mdash; Source: Esri, i-cubed, USDA, USGS, AEX, GeoEye, Getmapping, Aerogrid, IGN, IGP, UPR-EGP, and the GIS User Community",
		AttributionText: "Tiles © Esri. Source: Esri, i-cubed, USDA, USGS, AEX, GeoEye, Getmapping, Aerogrid, IGN, IGP, UPR-EGP, and the GIS User Community",
		Background:      "#0B1F33",
	},
}

func defaultBaseLayer() BaseLayer {
	return baseLayers[0]
}

// findBaseLayer matches by name, ignoring case and surrounding spaces.
func findBaseLayer(name string) (BaseLayer, error) {
	want := strings.TrimSpace(name)
	for _, b := range baseLayers {
		if strings.EqualFold(b.Name, want) {
			return b, nil
		}
	}
	names := make([]string, len(baseLayers))
	for i, b := range baseLayers {
		names[i] = b.Name
	}
	return BaseLayer{}, fmt.Errorf("unknown base map '%s' (available: %s)", name, strings.Join(names, ", "))
}

// tileURL expands the template for tile (x, y) at zoom z. Subdomains rotate
// on x+y so neighbouring tiles spread across hosts.
func (b BaseLayer) tileURL(x, y, z int) string {
	sub := ""
	if n := len(b.Subdomains); n > 0 {
		i := (x + y) % n
		if i < 0 {
			i = -i
		}
		sub = string(b.Subdomains[i])
	}
	r := strings.NewReplacer(
		"{s}", sub,
		"{z}", strconv.Itoa(z),
		"{x}", strconv.Itoa(x),
		"{y}", strconv.Itoa(y),
		"{r}", "",
	)
	return r.Replace(b.URLTemplate)
}
