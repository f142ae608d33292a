// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package build

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Page pairs one source HTML file with the Word document it builds.
type Page struct {
	HTML string `yaml:"html"`
	Docx string `yaml:"docx"`
}

// DefaultManifest returns the built-in page table: the five subject pages
// plus the about page, in build order. index.html is the site home and is
// never converted.
func DefaultManifest() []Page {
	return []Page{
		{HTML: "maps-location-cartographers.html", Docx: "maps-location-cartographers.docx"},
		{HTML: "plate-tectonics-earthquakes-volcanoes.html", Docx: "plate-tectonics-earthquakes-volcanoes.docx"},
		{HTML: "weathering-mass-wasting-erosion.html", Docx: "weathering-mass-wasting-erosion.docx"},
		{HTML: "fluvial-processes-oceans-coastlines.html", Docx: "fluvial-processes-oceans-coastlines.docx"},
		{HTML: "climate-controls-biomes-climate-change.html", Docx: "climate-controls-biomes-climate-change.docx"},
		{HTML: "about.html", Docx: "about.docx"},
	}
}

// LoadManifest reads a YAML page list from path. Every entry must name both
// the source HTML file and the output document.
func LoadManifest(path string) ([]Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var pages []Page
	if err := yaml.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("manifest %s lists no pages", path)
	}
	for i, p := range pages {
		if p.HTML == "" || p.Docx == "" {
			return nil, fmt.Errorf("manifest %s entry %d: html and docx are both required", path, i)
		}
	}
	return pages, nil
}
